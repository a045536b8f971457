// cmd/seeduser/main.go — Crea/actualiza un usuario de demo y pedidos de ejemplo.
// Uso: go run cmd/seeduser/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/config"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/infra"
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	email := "demo@pedidos.com"
	password := "demo123"
	nombre := "Cliente Demo"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DSN())
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx := context.Background()
	user := model.Usuario{
		Email:        email,
		PasswordHash: string(hash),
		Nombre:       nombre,
		Rol:          "cliente",
		EstaActivo:   true,
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "nombre", "esta_activo"}),
		}).
		Create(&user).Error; err != nil {
		log.Fatalf("insert usuario error: %v", err)
	}

	estados := []string{"pendiente", "en_proceso", "enviado", "entregado", "cancelado"}
	for i, estado := range estados {
		p := model.Pedido{
			Titulo:       fmt.Sprintf("Pedido de prueba %d", i+1),
			Descripcion:  fmt.Sprintf("Pedido generado por seeduser (%s)", estado),
			EstadoActual: estado,
			FechaPromesa: time.Now().AddDate(0, 0, 7+i),
			UsuarioID:    user.ID,
		}
		if err := db.WithContext(ctx).Create(&p).Error; err != nil {
			log.Fatalf("insert pedido error: %v", err)
		}
	}

	fmt.Printf("✅ Usuario '%s' creado/actualizado con password '%s' y %d pedidos\n",
		email, password, len(estados))
}
