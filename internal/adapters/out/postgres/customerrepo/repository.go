package customerrepo

import (
	"context"
	"errors"
	"strings"

	"distributor/internal/core/domain/model/customer"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{db: db, tracker: tracker}
}

// Add inserts a customer. A taken email is reported as customer.ErrEmailIsAlreadyRegistered;
// this needs the connection opened with gorm.Config.TranslateError.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return customer.ErrEmailIsAlreadyRegistered
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the contact columns. The registration time is never rewritten.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", aggregate.ID().Value()).
		Updates(map[string]any{
			"name":    aggregate.Name(),
			"address": aggregate.Address(),
			"phone":   aggregate.Phone(),
			"email":   aggregate.Email(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return customer.ErrEmailIsAlreadyRegistered
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "customer", id.String(), "id = ?", id.Value())
}

func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.first(ctx, "customer", email, "email = ?", email)
}

// Delete removes the customer; the database cascades to deliveries, line items and payments.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id.String())
	}
	return nil
}

func (r *GormCustomerRepository) first(ctx context.Context, param string, key any, query string, args ...any) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, err
	}
	return toDomain(dto)
}
