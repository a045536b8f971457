package infra

import (
	"github.com/velazquezalberto926-arch/seguimientoPedidos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for the two tables. TranslateError is on so a unique-constraint violation
// surfaces as gorm.ErrDuplicatedKey — the registration flow depends on that
// to resolve concurrent duplicate signups.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Bounded pool; checkouts beyond capacity wait, they do not fail.
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(&model.Usuario{}, &model.Pedido{}); err != nil {
		return nil, err
	}

	return db, nil
}
