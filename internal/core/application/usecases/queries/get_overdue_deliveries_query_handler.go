package queries

import (
	"context"
	"database/sql"
	"time"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOverdueDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueDeliveriesQueryHandler(db *gorm.DB) GetOverdueDeliveriesQueryHandler {
	return GetOverdueDeliveriesQueryHandler{db: db}
}

// Handle returns the most overdue delivery first.
func (h GetOverdueDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueDeliveriesQuery,
) ([]GetOverdueDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.id, c.name, dr.name, d.address, d.status, d.expected_delivery_at
		FROM deliveries d
		JOIN customers c ON c.id = d.customer_id
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		WHERE d.status IN ? AND d.expected_delivery_at < ?
		ORDER BY d.expected_delivery_at, d.id
	`, []int16{int16(delivery.Pending), int16(delivery.InTransit)}, query.now).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overdue := make([]GetOverdueDeliveriesQueryResponse, 0)
	for rows.Next() {
		var (
			resp       GetOverdueDeliveriesQueryResponse
			id         uuid.UUID
			driverName sql.NullString
			status     int16
			expected   time.Time
		)
		if err := rows.Scan(&id, &resp.CustomerName, &driverName, &resp.Address, &status, &expected); err != nil {
			return nil, err
		}
		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		resp.DriverName = noValue
		if driverName.Valid {
			resp.DriverName = driverName.String
		}
		resp.Status = delivery.Status(status).String()
		resp.ExpectedDeliveryAt = expected.UTC()
		resp.Overdue = query.now.Sub(expected)
		overdue = append(overdue, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
