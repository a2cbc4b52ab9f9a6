package queries

import (
	"context"

	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]ListDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, vehicle
		FROM drivers
		WHERE name ILIKE @q OR phone ILIKE @q OR vehicle ILIKE @q
		ORDER BY name, id
	`, map[string]any{"q": likePattern(query.search)}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]ListDriversQueryResponse, 0)
	for rows.Next() {
		var (
			resp ListDriversQueryResponse
			id   uuid.UUID
		)
		if err := rows.Scan(&id, &resp.Name, &resp.Phone, &resp.Vehicle); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		drivers = append(drivers, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
