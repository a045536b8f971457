// Package session holds the client-side session state: a persisted copy of
// the last successfully authenticated user's public projection, and the gate
// that derives screen visibility from it.
//
// The server issues no token or cookie, so this cache is the only session
// state that exists anywhere. It must always come from a successful login or
// registration response — never from unverified input.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"

	"github.com/rs/zerolog/log"
)

const sessionKey = "user"

// Store persists the session projection across client restarts.
//
// Contract:
//   - Load: absent record and undecodable record both report (nil, nil) —
//     absence is an expected state, not an error.
//   - Save: rejects a nil projection without writing.
//   - Clear: idempotent; clearing an empty store succeeds.
type Store interface {
	Load(ctx context.Context) (*dto.UsuarioPublico, error)
	Save(ctx context.Context, user *dto.UsuarioPublico) error
	Clear(ctx context.Context) error
}

// SQLiteStore keeps the session in a single-row key/value table on local disk.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore prepares the backing table and returns the store.
// The caller owns the *sql.DB (driver registration included).
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sesion (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("session store: create table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*dto.UsuarioPublico, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM sesion WHERE key = ?`, sessionKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session store: load: %w", err)
	}

	var user dto.UsuarioPublico
	if err := json.Unmarshal(value, &user); err != nil {
		// A corrupt record is treated as "no session", same as absence.
		log.Warn().Err(err).Msg("session store: undecodable record — treating as absent")
		return nil, nil
	}
	return &user, nil
}

func (s *SQLiteStore) Save(ctx context.Context, user *dto.UsuarioPublico) error {
	if user == nil {
		return errors.New("session store: refusing to save nil user")
	}
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session store: marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sesion (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, sessionKey, value)
	if err != nil {
		return fmt.Errorf("session store: save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sesion WHERE key = ?`, sessionKey)
	if err != nil {
		return fmt.Errorf("session store: clear: %w", err)
	}
	return nil
}
