package queries

import (
	"context"
	"time"

	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, price, stock, created_at
		FROM products
		WHERE name ILIKE @q OR description ILIKE @q
		ORDER BY `+orderBy(query.sort, productSortColumns, "name"),
		map[string]any{"q": likePattern(query.search)},
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ListProductsQueryResponse, 0)
	for rows.Next() {
		var (
			resp      ListProductsQueryResponse
			id        uuid.UUID
			price     decimal.Decimal
			createdAt time.Time
		)
		if err := rows.Scan(&id, &resp.Name, &resp.Description, &price, &resp.Stock, &createdAt); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		resp.PriceLabel = resp.Price.Format()
		resp.DescriptionSummary = summarize(resp.Description)
		resp.CreatedAt = createdAt.UTC()
		products = append(products, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
