package repository

import (
	"context"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	// Create inserts a new account. A duplicate email surfaces as
	// gorm.ErrDuplicatedKey (GORM error translation) — callers rely on this
	// as the authoritative conflict signal, not on a prior existence check.
	Create(ctx context.Context, u *model.Usuario) error
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	// Case-sensitive match, as stored. EstaActivo is deliberately not part of
	// the lookup: login does not filter inactive accounts (see auth_service).
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
