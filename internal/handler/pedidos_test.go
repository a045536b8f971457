package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubPedidoRepo struct {
	pedidos []dto.PedidoResponse
}

func (r *stubPedidoRepo) List(_ context.Context) ([]dto.PedidoResponse, error) {
	out := make([]dto.PedidoResponse, 0, len(r.pedidos))
	return append(out, r.pedidos...), nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uint) (*dto.PedidoResponse, error) {
	for _, p := range r.pedidos {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func pedidosTestRouter(repo *stubPedidoRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPedidosHandler(service.NewPedidoService(repo))
	r := gin.New()
	r.GET("/api/pedidos", h.Listar)
	r.GET("/api/pedidos/:id", h.Obtener)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	return w
}

func TestListarPedidos_TablaVacia(t *testing.T) {
	r := pedidosTestRouter(&stubPedidoRepo{})

	w := getJSON(t, r, "/api/pedidos")
	require.Equal(t, http.StatusOK, w.Code)
	// Empty sequence, not null and not an error
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListarPedidos_IncluyeCliente(t *testing.T) {
	repo := &stubPedidoRepo{pedidos: []dto.PedidoResponse{
		{ID: 2, Titulo: "Mesa de roble", EstadoActual: "en_proceso",
			FechaPromesa: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Cliente: "Ana"},
		{ID: 1, Titulo: "Silla tapizada", EstadoActual: "entregado",
			FechaPromesa: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Cliente: "Luis"},
	}}
	r := pedidosTestRouter(repo)

	w := getJSON(t, r, "/api/pedidos")
	require.Equal(t, http.StatusOK, w.Code)

	var lista []dto.PedidoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 2)
	assert.Equal(t, "Ana", lista[0].Cliente)
	assert.Equal(t, "en_proceso", lista[0].EstadoActual)
}

func TestObtenerPedido_PorID(t *testing.T) {
	repo := &stubPedidoRepo{pedidos: []dto.PedidoResponse{
		{ID: 5, Titulo: "Ropero", EstadoActual: "pendiente", Cliente: "Ana"},
	}}
	r := pedidosTestRouter(repo)

	w := getJSON(t, r, "/api/pedidos/5")
	require.Equal(t, http.StatusOK, w.Code)
	var p dto.PedidoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Ropero", p.Titulo)
}

func TestObtenerPedido_NoEncontrado(t *testing.T) {
	r := pedidosTestRouter(&stubPedidoRepo{})

	w := getJSON(t, r, "/api/pedidos/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pedido no encontrado", msgDe(t, w))
}

func TestObtenerPedido_IDInvalido(t *testing.T) {
	r := pedidosTestRouter(&stubPedidoRepo{})

	w := getJSON(t, r, "/api/pedidos/abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
