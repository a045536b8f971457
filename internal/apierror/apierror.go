// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Msg string `json:"msg"`
}

func New(msg string) *APIError {
	return &APIError{Msg: msg}
}

// ── Domain errors ────────────────────────────────────────────────────────────
// Sentinel errors raised by the service layer. Handlers map them to status
// codes and user-facing messages; anything not in this list is an
// infrastructure failure and collapses to a generic 500.

var (
	// ErrEmailRegistrado: registration conflict — the email already has an account.
	ErrEmailRegistrado = errors.New("este correo ya está registrado")

	// ErrCuentaNoExiste: login with an email that has no account.
	ErrCuentaNoExiste = errors.New("no existe una cuenta con ese correo electrónico")

	// ErrPasswordIncorrecta: login with a wrong password for an existing account.
	ErrPasswordIncorrecta = errors.New("contraseña incorrecta")

	// ErrPedidoNoEncontrado: pedido lookup by id found nothing.
	ErrPedidoNoEncontrado = errors.New("pedido no encontrado")
)

// ValidationError reports the first request field that failed validation.
// It serializes to the same {msg} envelope; the field name is for logs only.
type ValidationError struct {
	Field string `json:"-"`
	Msg   string `json:"msg"`
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}
