package queries

import (
	"context"
	"database/sql"
	"time"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var status sql.NullInt16
	if query.status != nil {
		status = sql.NullInt16{Int16: int16(*query.status), Valid: true}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.customer_id,
			c.name,
			dr.name,
			d.ordered_at,
			d.expected_delivery_at,
			d.status,
			d.address,
			COALESCE(li.products, ''),
			COALESCE(li.quantities, ''),
			p.amount,
			p.method,
			p.status
		FROM deliveries d
		JOIN customers c ON c.id = d.customer_id
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		LEFT JOIN payments p ON p.delivery_id = d.id
		LEFT JOIN LATERAL (
			SELECT
				string_agg(pr.name, ', ' ORDER BY l.position, l.id) AS products,
				string_agg(l.quantity::text, ', ' ORDER BY l.position, l.id) AS quantities
			FROM delivery_line_items l
			JOIN products pr ON pr.id = l.product_id
			WHERE l.delivery_id = d.id
		) li ON TRUE
		WHERE @status::smallint IS NULL OR d.status = @status::smallint
		ORDER BY d.ordered_at DESC, d.id
	`, map[string]any{"status": status}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]ListDeliveriesQueryResponse, 0)
	for rows.Next() {
		var (
			resp                 ListDeliveriesQueryResponse
			id, customerID       uuid.UUID
			driverName           sql.NullString
			orderedAt, expected  time.Time
			deliveryStatus       int16
			amount               decimal.NullDecimal
			method, paymentState sql.NullInt16
		)
		if err := rows.Scan(
			&id,
			&customerID,
			&resp.CustomerName,
			&driverName,
			&orderedAt,
			&expected,
			&deliveryStatus,
			&resp.Address,
			&resp.Products,
			&resp.Quantities,
			&amount,
			&method,
			&paymentState,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFrom(customerID); err != nil {
			return nil, err
		}
		resp.DriverName = noValue
		if driverName.Valid {
			resp.DriverName = driverName.String
		}
		resp.OrderedAt = orderedAt.UTC()
		resp.ExpectedDeliveryAt = expected.UTC()
		resp.Status = delivery.Status(deliveryStatus)
		resp.StatusCode = resp.Status.String()
		resp.StatusLabel = resp.Status.Label()
		resp.Delivered = resp.Status == delivery.Delivered

		resp.PaymentAmount, resp.PaymentMethod, resp.PaymentStatus = noValue, noValue, noValue
		if amount.Valid {
			money, err := kernel.NewMoney(amount.Decimal)
			if err != nil {
				return nil, err
			}
			resp.PaymentAmount = money.Format()
			resp.PaymentMethod = payment.Method(method.Int16).Label()
			resp.PaymentStatus = payment.Status(paymentState.Int16).Label()
		}

		deliveries = append(deliveries, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
