package model

import "time"

// Usuario stores registered accounts.
// Registration always assigns Rol = "cliente"; no other role is created here.
type Usuario struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Nombre       string    `gorm:"not null"`
	Rol          string    `gorm:"type:varchar(20);not null;default:cliente"`
	EstaActivo   bool      `gorm:"not null;default:true"`
	CreadoEn     time.Time `gorm:"autoCreateTime"`
}

// TableName keeps the singular table name used by the original schema.
func (Usuario) TableName() string { return "usuario" }
