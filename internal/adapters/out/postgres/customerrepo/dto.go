// Package customerrepo persists customer aggregates in the customers table.
package customerrepo

import (
	"time"

	"distributor/internal/core/domain/model/customer"
	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers row. Email is unique.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Address      string    `gorm:"type:text;not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	RegisteredAt time.Time `gorm:"type:timestamptz;not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Value(),
		Name:         c.Name(),
		Address:      c.Address(),
		Phone:        c.Phone(),
		Email:        c.Email(),
		RegisteredAt: c.RegisteredAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Address, dto.Phone, dto.Email, dto.RegisteredAt)
}
