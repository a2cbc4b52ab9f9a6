package deliveryrepo

import (
	"context"
	"errors"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db, tracker: tracker}
}

// Add inserts the delivery and its line items in one statement batch.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the header columns. Line items are never rewritten.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver_id":            dto.DriverID,
			"expected_delivery_at": dto.ExpectedDeliveryAt,
			"status":               dto.Status,
			"address":              dto.Address,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate locks the deliveries row; line items are read without a lock since they never change.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// Delete removes the delivery; the database cascades to its line items and payment.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	return nil
}

func (r *GormDeliveryRepository) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("customer_id = ?", customerID.Value()).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormDeliveryRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	lineItems, err := r.lineItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	dto.LineItems = lineItems

	return toDomain(dto)
}

func (r *GormDeliveryRepository) lineItems(ctx context.Context, deliveryID uuid.UUID) ([]LineItemDTO, error) {
	var lineItems []LineItemDTO
	if err := r.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("position, id").
		Find(&lineItems).Error; err != nil {
		return nil, err
	}
	return lineItems, nil
}
