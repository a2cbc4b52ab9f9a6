// Package driverrepo persists driver aggregates in the drivers table.
package driverrepo

import (
	"distributor/internal/core/domain/model/driver"
	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null;index"`
	Phone   string    `gorm:"type:varchar(20);not null"`
	Vehicle string    `gorm:"type:varchar(100);not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:      d.ID().Value(),
		Name:    d.Name(),
		Phone:   d.Phone(),
		Vehicle: d.Vehicle(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(id, dto.Name, dto.Phone, dto.Vehicle)
}
