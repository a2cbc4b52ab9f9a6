package productrepo

import (
	"context"
	"errors"
	"slices"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/product"
	"distributor/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update writes every mutable column. The creation time is never rewritten.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", aggregate.ID().Value()).
		Updates(map[string]any{
			"name":        aggregate.Name(),
			"description": aggregate.Description(),
			"price":       aggregate.Price().Decimal(),
			"stock":       aggregate.Stock(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName returns the oldest product with this exact name.
func (r *GormProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("created_at, id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate runs SELECT ... ORDER BY id FOR UPDATE. Postgres locks rows in the order it
// returns them, so every caller acquires product locks in the same order.
func (r *GormProductRepository) GetForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	unique := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if !slices.ContainsFunc(unique, id.IsEqual) {
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return []*product.Product{}, nil
	}
	slices.SortFunc(unique, kernel.UUID.Compare)

	raw := make([]uuid.UUID, 0, len(unique))
	for _, id := range unique {
		raw = append(raw, id.Value())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for i, id := range unique {
		if i >= len(dtos) || dtos[i].ID != id.Value() {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		p, err := toDomain(dtos[i])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// Delete removes the product; the database cascades to its line items.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return nil
}
