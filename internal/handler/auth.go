package handler

import (
	"errors"
	"net/http"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/apierror"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Validation messages mirror the originals shown by the mobile client.
var (
	registroMensajes = map[string]string{
		"Email":    "Debe ser un email válido.",
		"Password": "La contraseña debe tener al menos 6 caracteres.",
		"Nombre":   "El nombre es obligatorio.",
	}
	loginMensajes = map[string]string{
		"Email":    "Debe ser un email válido.",
		"Password": "La contraseña es obligatoria.",
	}
)

// Registrar godoc
// @Summary Registro de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistroRequest true "Datos de registro"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/auth/register [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req, registroMensajes) {
		return
	}

	user, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apierror.ErrEmailRegistrado) {
			c.JSON(http.StatusBadRequest, apierror.New("Este correo ya está registrado."))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error del servidor. Inténtalo más tarde."))
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Msg:  "Usuario registrado correctamente ✅",
		User: *user,
	})
}

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req, loginMensajes) {
		return
	}

	user, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apierror.ErrCuentaNoExiste):
			c.JSON(http.StatusBadRequest, apierror.New("No existe una cuenta con ese correo electrónico."))
		case errors.Is(err, apierror.ErrPasswordIncorrecta):
			// Distinct from the not-found message above; confirms account
			// existence to the caller. Known information leak, kept until the
			// messages are merged product-side.
			c.JSON(http.StatusBadRequest, apierror.New("Contraseña incorrecta. Intenta de nuevo."))
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, apierror.New("Error en el servidor."))
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Msg:  "Login exitoso ✅",
		User: *user,
	})
}
