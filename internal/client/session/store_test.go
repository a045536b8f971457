package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T, db *sql.DB) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(db)
	require.NoError(t, err)
	return s
}

func TestStore_LoadSinRegistro(t *testing.T) {
	s := newTestStore(t, openTestDB(t, filepath.Join(t.TempDir(), "sesion.db")))

	user, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user, "an empty store reports absent, not an error")
}

func TestStore_RoundTripTrasReinicio(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sesion.db")

	s := newTestStore(t, openTestDB(t, path))
	saved := &dto.UsuarioPublico{ID: 3, Nombre: "Ana", Rol: "cliente"}
	require.NoError(t, s.Save(ctx, saved))

	// New connection over the same file simulates a process restart.
	s2 := newTestStore(t, openTestDB(t, path))
	loaded, err := s2.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, *saved, *loaded)
}

func TestStore_SaveSobreescribe(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, openTestDB(t, filepath.Join(t.TempDir(), "sesion.db")))

	require.NoError(t, s.Save(ctx, &dto.UsuarioPublico{ID: 1, Nombre: "Ana", Rol: "cliente"}))
	require.NoError(t, s.Save(ctx, &dto.UsuarioPublico{ID: 2, Nombre: "Luis", Rol: "cliente"}))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), loaded.ID)
}

func TestStore_SaveNilRechazado(t *testing.T) {
	s := newTestStore(t, openTestDB(t, filepath.Join(t.TempDir(), "sesion.db")))

	assert.Error(t, s.Save(context.Background(), nil))
}

func TestStore_ClearIdempotente(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, openTestDB(t, filepath.Join(t.TempDir(), "sesion.db")))

	require.NoError(t, s.Save(ctx, &dto.UsuarioPublico{ID: 1, Nombre: "Ana", Rol: "cliente"}))
	require.NoError(t, s.Clear(ctx))

	user, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	// Clearing an already-empty store is safe
	assert.NoError(t, s.Clear(ctx))
}

func TestStore_RegistroCorruptoEsAusente(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, filepath.Join(t.TempDir(), "sesion.db"))
	s := newTestStore(t, db)

	_, err := db.Exec(`INSERT INTO sesion (key, value) VALUES (?, ?)`, "user", []byte("{no es json"))
	require.NoError(t, err)

	user, err := s.Load(ctx)
	require.NoError(t, err, "a corrupt record is not an error")
	assert.Nil(t, user)
}
