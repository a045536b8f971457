package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistroRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Nombre   string `json:"nombre"   validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioPublico is the public projection of an account: never carries the
// password hash nor the email.
type UsuarioPublico struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// AuthResponse is the 200 envelope for register and login.
type AuthResponse struct {
	Msg  string         `json:"msg"`
	User UsuarioPublico `json:"user"`
}
