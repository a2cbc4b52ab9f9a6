package queries

import (
	"context"
	"database/sql"
	"time"

	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var customerSortColumns = map[string]string{
	"name":          "name",
	"email":         "email",
	"registered_at": "registered_at",
}

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) ([]ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.filter
	args := map[string]any{
		"q":    likePattern(filter.Search),
		"from": sql.NullTime{},
		"to":   sql.NullTime{},
	}
	if filter.RegisteredFrom != nil {
		args["from"] = sql.NullTime{Time: *filter.RegisteredFrom, Valid: true}
	}
	if filter.RegisteredTo != nil {
		args["to"] = sql.NullTime{Time: *filter.RegisteredTo, Valid: true}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, email, address, registered_at
		FROM customers
		WHERE (name ILIKE @q OR phone ILIKE @q OR email ILIKE @q OR address ILIKE @q)
			AND (@from::timestamptz IS NULL OR registered_at >= @from::timestamptz)
			AND (@to::timestamptz IS NULL OR registered_at <= @to::timestamptz)
		ORDER BY `+orderBy(filter.Sort, customerSortColumns, "name"),
		args,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]ListCustomersQueryResponse, 0)
	for rows.Next() {
		var (
			resp         ListCustomersQueryResponse
			id           uuid.UUID
			registeredAt time.Time
		)
		if err := rows.Scan(&id, &resp.Name, &resp.Phone, &resp.Email, &resp.Address, &registeredAt); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		resp.AddressSummary = summarize(resp.Address)
		resp.RegisteredAt = registeredAt.UTC()
		customers = append(customers, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
