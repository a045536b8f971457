package handler

import (
	"net/http"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// On failure it answers 400 with the message for the FIRST failing field
// (struct order), looked up in mensajes, and returns false — the caller must
// return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}, mensajes map[string]string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido."))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fe := err.(validator.ValidationErrors)[0]
		msg, ok := mensajes[fe.Field()]
		if !ok {
			msg = "Datos inválidos."
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fe.Field(), msg))
		return false
	}
	return true
}
