package dto

import "time"

// PedidoResponse is a pedido joined with the owning customer's display name.
type PedidoResponse struct {
	ID           uint      `json:"id"`
	Titulo       string    `json:"titulo"`
	Descripcion  string    `json:"descripcion"`
	EstadoActual string    `json:"estado_actual"`
	FechaPromesa time.Time `json:"fecha_promesa"`
	CreadoEn     time.Time `json:"creado_en"`
	Cliente      string    `json:"cliente"`
}
