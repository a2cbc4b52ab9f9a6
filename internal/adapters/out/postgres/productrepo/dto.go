// Package productrepo persists product aggregates in the products table.
package productrepo

import (
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the products row. Price is numeric(10,2) and stock can never go negative.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Description string          `gorm:"type:text;not null;default:''"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Stock       int             `gorm:"type:integer;not null;check:chk_products_stock_non_negative,stock >= 0"`
	CreatedAt   time.Time       `gorm:"type:timestamptz;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Value(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Stock:       p.Stock(),
		CreatedAt:   p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, dto.Name, dto.Description, price, dto.Stock, dto.CreatedAt)
}
