package service

import (
	"context"
	"testing"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/apierror"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users  map[string]*model.Usuario
	nextID uint
}

func newStubRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario), nextID: 1}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if _, exists := r.users[u.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Email] = u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// raceRepo simulates losing the register race: the pre-check sees no account,
// but the insert hits the unique constraint anyway.
type raceRepo struct{ stubUsuarioRepo }

func (r *raceRepo) FindByEmail(_ context.Context, _ string) (*model.Usuario, error) {
	return nil, gorm.ErrRecordNotFound
}

// ── Tests: Registrar ─────────────────────────────────────────────────────────

func TestRegistrarYLogin_RoundTrip(t *testing.T) {
	repo := newStubRepo()
	svc := NewAuthService(repo, nil)

	reg, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Email: "a@b.com", Password: "secret1", Nombre: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), reg.ID)
	assert.Equal(t, "Ana", reg.Nombre)
	assert.Equal(t, "cliente", reg.Rol)

	logged, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "a@b.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, logged.ID, "login must return the id assigned at registration")
}

func TestRegistrar_NoPersisteElPasswordEnClaro(t *testing.T) {
	repo := newStubRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Email: "a@b.com", Password: "secret1", Nombre: "Ana",
	})
	require.NoError(t, err)

	stored := repo.users["a@b.com"]
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	repo := newStubRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Email: "a@b.com", Password: "secret1", Nombre: "Ana",
	})
	require.NoError(t, err)

	// Different password and nombre — still a duplicate
	_, err = svc.Registrar(context.Background(), dto.RegistroRequest{
		Email: "a@b.com", Password: "otra123", Nombre: "Otra",
	})
	assert.ErrorIs(t, err, apierror.ErrEmailRegistrado)
}

func TestRegistrar_DuplicadoPorConstraint(t *testing.T) {
	// The pre-check is only an optimization: when it misses a concurrent
	// insert, the constraint violation must still map to the duplicate error.
	repo := &raceRepo{stubUsuarioRepo: *newStubRepo()}
	repo.users["a@b.com"] = &model.Usuario{ID: 1, Email: "a@b.com"}
	svc := NewAuthService(repo, nil)

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Email: "a@b.com", Password: "secret1", Nombre: "Ana",
	})
	assert.ErrorIs(t, err, apierror.ErrEmailRegistrado)
}

// ── Tests: Login ─────────────────────────────────────────────────────────────

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newStubRepo()
	svc := NewAuthService(repo, nil)

	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Email: "a@b.com", Password: "secret1", Nombre: "Ana",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, apierror.ErrPasswordIncorrecta)
}

func TestLogin_CuentaNoExiste(t *testing.T) {
	svc := NewAuthService(newStubRepo(), nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@b.com", Password: "loquesea"})
	assert.ErrorIs(t, err, apierror.ErrCuentaNoExiste)
}

func TestLogin_CuentaInactivaAunPuedeEntrar(t *testing.T) {
	// Documents current behavior: esta_activo is not checked during login.
	repo := newStubRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcryptCost)
	require.NoError(t, err)
	repo.users["baja@b.com"] = &model.Usuario{
		ID: 7, Email: "baja@b.com", PasswordHash: string(hash),
		Nombre: "Baja", Rol: "cliente", EstaActivo: false,
	}
	svc := NewAuthService(repo, nil)

	logged, err := svc.Login(context.Background(), dto.LoginRequest{Email: "baja@b.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), logged.ID)
}
