package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/apierror"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Listar godoc
// @Summary Lista todos los pedidos con el nombre del cliente
// @Tags pedidos
// @Produce json
// @Success 200 {array} dto.PedidoResponse
// @Failure 500 {object} apierror.APIError
// @Router /api/pedidos [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	pedidos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error obteniendo pedidos"))
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// Obtener godoc
// @Summary Obtiene un pedido por id
// @Tags pedidos
// @Produce json
// @Param id path int true "ID del pedido"
// @Success 200 {object} dto.PedidoResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/pedidos/{id} [get]
func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}

	pedido, err := h.svc.Obtener(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, apierror.ErrPedidoNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error obteniendo pedido"))
		return
	}
	c.JSON(http.StatusOK, pedido)
}
