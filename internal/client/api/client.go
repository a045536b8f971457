// Package api is the thin HTTP client the CLI uses against the backend.
// Requests are unauthenticated at the transport level — the server issues no
// token — so the caller's own session state decides what it asks for.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"
)

// Error is a structured API failure decoded from the server's {msg} envelope.
type Error struct {
	StatusCode int
	Msg        string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Msg)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Registrar creates an account and returns its public projection.
func (c *Client) Registrar(ctx context.Context, email, password, nombre string) (*dto.UsuarioPublico, error) {
	body := dto.RegistroRequest{Email: email, Password: password, Nombre: nombre}
	var resp dto.AuthResponse
	if err := c.post(ctx, "/api/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login verifies credentials and returns the public projection.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.UsuarioPublico, error) {
	body := dto.LoginRequest{Email: email, Password: password}
	var resp dto.AuthResponse
	if err := c.post(ctx, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) ListarPedidos(ctx context.Context) ([]dto.PedidoResponse, error) {
	var pedidos []dto.PedidoResponse
	if err := c.get(ctx, "/api/pedidos", &pedidos); err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (c *Client) ObtenerPedido(ctx context.Context, id uint) (*dto.PedidoResponse, error) {
	var pedido dto.PedidoResponse
	if err := c.get(ctx, fmt.Sprintf("/api/pedidos/%d", id), &pedido); err != nil {
		return nil, err
	}
	return &pedido, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var envelope struct {
			Msg string `json:"msg"`
		}
		if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil || envelope.Msg == "" {
			envelope.Msg = http.StatusText(res.StatusCode)
		}
		return &Error{StatusCode: res.StatusCode, Msg: envelope.Msg}
	}

	return json.NewDecoder(res.Body).Decode(out)
}
