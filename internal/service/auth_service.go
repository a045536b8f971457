package service

import (
	"context"
	"errors"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/apierror"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/model"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/repository"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/worker"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the cost the original accounts were hashed with; changing
// it would invalidate no hashes (bcrypt embeds the cost) but is a deliberate
// operational decision.
const bcryptCost = 10

type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioPublico, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioPublico, error)
}

type authService struct {
	repo       repository.UsuarioRepository
	dispatcher *worker.Dispatcher // nil when Redis is unavailable
}

func NewAuthService(repo repository.UsuarioRepository, dispatcher *worker.Dispatcher) AuthService {
	return &authService{repo: repo, dispatcher: dispatcher}
}

// Registrar creates an account with Rol "cliente" and returns its public
// projection. Two concurrent registrations for the same email are not
// serialized here: the pre-check below is an optimization for the common case,
// and the unique index on usuario.email is what actually decides the loser,
// whose constraint violation is mapped to ErrEmailRegistrado.
func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioPublico, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.ErrEmailRegistrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Email:        req.Email,
		PasswordHash: string(hash),
		Nombre:       req.Nombre,
		Rol:          "cliente",
		EstaActivo:   true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.ErrEmailRegistrado
		}
		return nil, err
	}

	// Welcome email is fire-and-forget: a queue failure must never fail the
	// registration that already committed.
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: user.Email,
			Subject: "Bienvenido a Seguimiento de Pedidos",
			Body:    "Hola " + user.Nombre + ", tu cuenta fue creada correctamente.",
		}); err != nil {
			log.Error().Err(err).Str("email", user.Email).Msg("failed to enqueue welcome email")
		}
	}

	return &dto.UsuarioPublico{ID: user.ID, Nombre: user.Nombre, Rol: user.Rol}, nil
}

// Login verifies the credentials and returns the public projection. No token
// or server-side session is issued: the result of this one-shot verification
// is all the client gets.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioPublico, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrCuentaNoExiste
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.ErrPasswordIncorrecta
	}

	// TODO: decidir si el login debe rechazar cuentas con esta_activo = false;
	// hoy una cuenta desactivada sigue pudiendo iniciar sesión.
	return &dto.UsuarioPublico{ID: user.ID, Nombre: user.Nombre, Rol: user.Rol}, nil
}
