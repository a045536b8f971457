package service

import (
	"context"
	"errors"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/apierror"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/repository"

	"gorm.io/gorm"
)

// PedidoService is read-only: pedidos are created elsewhere.
// No authorization check is applied — any caller can list every pedido.
// This mirrors the current product behavior; tightening it is pending a
// requirements decision, not an implementation one.
type PedidoService interface {
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	repo repository.PedidoRepository
}

func NewPedidoService(repo repository.PedidoRepository) PedidoService {
	return &pedidoService{repo: repo}
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	return s.repo.List(ctx)
}

func (s *pedidoService) Obtener(ctx context.Context, id uint) (*dto.PedidoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrPedidoNoEncontrado
		}
		return nil, err
	}
	return p, nil
}
