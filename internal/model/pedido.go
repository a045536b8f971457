package model

import "time"

// Pedido is an order tracked by the system. Orders are created outside this
// API (seed tooling, back office); the server only reads them.
// EstadoActual: "pendiente" | "en_proceso" | "enviado" | "entregado" | "cancelado"
type Pedido struct {
	ID           uint   `gorm:"primaryKey"`
	Titulo       string `gorm:"not null"`
	Descripcion  string
	EstadoActual string    `gorm:"type:varchar(30);not null;default:pendiente"`
	FechaPromesa time.Time
	CreadoEn     time.Time `gorm:"autoCreateTime"`
	UsuarioID    uint      `gorm:"not null;index"`
	Usuario      Usuario   `gorm:"foreignKey:UsuarioID"`
}

func (Pedido) TableName() string { return "pedido" }
