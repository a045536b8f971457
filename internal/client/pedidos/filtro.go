// Package pedidos holds the client-side view logic for the order list.
package pedidos

import (
	"strings"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"
)

// EstadoTodos is the filter value that disables filtering.
const EstadoTodos = "Todos"

// Estados are the selectable filter chips, in display order.
var Estados = []string{EstadoTodos, "pendiente", "en_proceso", "enviado", "entregado", "cancelado"}

// FiltrarPorEstado filters the already-fetched list locally, matching
// estado_actual case-insensitively. The server is not re-queried.
func FiltrarPorEstado(lista []dto.PedidoResponse, estado string) []dto.PedidoResponse {
	if estado == EstadoTodos {
		return lista
	}
	filtrados := make([]dto.PedidoResponse, 0, len(lista))
	for _, p := range lista {
		if strings.EqualFold(p.EstadoActual, estado) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}
