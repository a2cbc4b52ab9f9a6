package postgres

import (
	"fmt"

	"distributor/internal/adapters/out/postgres/customerrepo"
	"distributor/internal/adapters/out/postgres/deliveryrepo"
	"distributor/internal/adapters/out/postgres/driverrepo"
	"distributor/internal/adapters/out/postgres/paymentrepo"
	"distributor/internal/adapters/out/postgres/productrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. TranslateError is on so that unique violations surface as
// gorm.ErrDuplicatedKey in the repositories.
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Models lists every persisted DTO in foreign key order.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&driverrepo.DriverDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.LineItemDTO{},
		&paymentrepo.PaymentDTO{},
	}
}

// Tables lists the table names of Models in the same order.
func Tables() []string {
	return []string{
		customerrepo.CustomerDTO{}.TableName(),
		productrepo.ProductDTO{}.TableName(),
		driverrepo.DriverDTO{}.TableName(),
		deliveryrepo.DeliveryDTO{}.TableName(),
		deliveryrepo.LineItemDTO{}.TableName(),
		paymentrepo.PaymentDTO{}.TableName(),
	}
}

// Migrate creates or alters the schema, including foreign keys and check constraints.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
