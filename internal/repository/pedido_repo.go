package repository

import (
	"context"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/dto"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	// List returns every pedido joined with the customer name, newest first.
	// An empty table yields an empty slice, never an error.
	List(ctx context.Context) ([]dto.PedidoResponse, error)
	FindByID(ctx context.Context, id uint) (*dto.PedidoResponse, error)
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

const pedidoSelect = `pedido.id, pedido.titulo, pedido.descripcion, pedido.estado_actual,
	pedido.fecha_promesa, pedido.creado_en, usuario.nombre AS cliente`

func (r *pedidoRepo) List(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos := make([]dto.PedidoResponse, 0)
	err := r.db.WithContext(ctx).
		Table("pedido").
		Select(pedidoSelect).
		Joins("JOIN usuario ON usuario.id = pedido.usuario_id").
		Order("pedido.creado_en DESC").
		Scan(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uint) (*dto.PedidoResponse, error) {
	var p dto.PedidoResponse
	res := r.db.WithContext(ctx).
		Table("pedido").
		Select(pedidoSelect).
		Joins("JOIN usuario ON usuario.id = pedido.usuario_id").
		Where("pedido.id = ?", id).
		Limit(1).
		Scan(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}
