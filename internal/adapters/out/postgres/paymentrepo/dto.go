// Package paymentrepo persists payment aggregates in the payments table.
package paymentrepo

import (
	"time"

	"distributor/internal/adapters/out/postgres/deliveryrepo"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is the payments row. delivery_id is unique; the row goes away with its delivery.
type PaymentDTO struct {
	ID         uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex"`
	Delivery   *deliveryrepo.DeliveryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	Amount     decimal.Decimal           `gorm:"type:numeric(10,2);not null"`
	Method     int16                     `gorm:"type:smallint;not null"`
	Status     int16                     `gorm:"type:smallint;not null;index"`
	PaidAt     *time.Time                `gorm:"type:timestamptz;index"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         p.ID().Value(),
		DeliveryID: p.DeliveryID().Value(),
		Amount:     p.Amount().Decimal(),
		Method:     int16(p.Method()),
		Status:     int16(p.Status()),
		PaidAt:     p.PaidAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	deliveryID, err := kernel.UUIDFrom(dto.DeliveryID)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}
	return payment.RestorePayment(id, deliveryID, amount, payment.Method(dto.Method), payment.Status(dto.Status), dto.PaidAt)
}
