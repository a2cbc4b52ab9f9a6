// Package deliveryrepo persists delivery aggregates in the deliveries and
// delivery_line_items tables.
package deliveryrepo

import (
	"time"

	"distributor/internal/adapters/out/postgres/customerrepo"
	"distributor/internal/adapters/out/postgres/driverrepo"
	"distributor/internal/adapters/out/postgres/productrepo"
	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the deliveries row. Deleting the customer deletes the delivery;
// deleting the driver only clears driver_id.
type DeliveryDTO struct {
	ID                 uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Customer           *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	DriverID           *uuid.UUID                `gorm:"type:uuid;index"`
	Driver             *driverrepo.DriverDTO     `gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	OrderedAt          time.Time                 `gorm:"type:timestamptz;not null;index"`
	ExpectedDeliveryAt time.Time                 `gorm:"type:timestamptz;not null;index"`
	Status             int16                     `gorm:"type:smallint;not null;index"`
	Address            string                    `gorm:"type:text;not null"`
	LineItems          []LineItemDTO             `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// LineItemDTO is the delivery_line_items row. A product appears at most once per delivery.
type LineItemDTO struct {
	ID         uuid.UUID               `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_line_items_delivery_product"`
	ProductID  uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_line_items_delivery_product;index"`
	Product    *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity   int                     `gorm:"type:integer;not null;check:chk_line_items_quantity_positive,quantity > 0"`
	Position   int                     `gorm:"type:integer;not null;default:0"`
}

func (LineItemDTO) TableName() string {
	return "delivery_line_items"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:                 d.ID().Value(),
		CustomerID:         d.CustomerID().Value(),
		OrderedAt:          d.OrderedAt(),
		ExpectedDeliveryAt: d.ExpectedDeliveryAt(),
		Status:             int16(d.Status()),
		Address:            d.Address(),
	}
	if driverID := d.DriverID(); driverID != nil {
		raw := driverID.Value()
		dto.DriverID = &raw
	}

	lineItems := d.LineItems()
	dto.LineItems = make([]LineItemDTO, 0, len(lineItems))
	for i, li := range lineItems {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			ID:         li.ID().Value(),
			DeliveryID: dto.ID,
			ProductID:  li.ProductID().Value(),
			Quantity:   li.Quantity(),
			Position:   i,
		})
	}

	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		v, err := kernel.UUIDFrom(*dto.DriverID)
		if err != nil {
			return nil, err
		}
		driverID = &v
	}

	lineItems := make([]delivery.LineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		liID, err := kernel.UUIDFrom(liDTO.ID)
		if err != nil {
			return nil, err
		}
		productID, err := kernel.UUIDFrom(liDTO.ProductID)
		if err != nil {
			return nil, err
		}
		li, err := delivery.NewLineItem(liID, productID, liDTO.Quantity)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}

	return delivery.RestoreDelivery(
		id,
		customerID,
		driverID,
		dto.OrderedAt,
		dto.ExpectedDeliveryAt,
		delivery.Status(dto.Status),
		dto.Address,
		lineItems,
	)
}
