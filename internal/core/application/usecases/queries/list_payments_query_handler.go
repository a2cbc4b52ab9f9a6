package queries

import (
	"context"
	"database/sql"
	"time"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListPaymentsQueryHandler(db *gorm.DB) ListPaymentsQueryHandler {
	return ListPaymentsQueryHandler{db: db}
}

func (h ListPaymentsQueryHandler) Handle(
	ctx context.Context,
	query ListPaymentsQuery,
) ([]ListPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.filter
	args := map[string]any{
		"q":      likePattern(filter.Search),
		"status": sql.NullInt16{},
		"from":   sql.NullTime{},
		"to":     sql.NullTime{},
	}
	if filter.Status != nil {
		args["status"] = sql.NullInt16{Int16: int16(*filter.Status), Valid: true}
	}
	if filter.ExpectedFrom != nil {
		args["from"] = sql.NullTime{Time: *filter.ExpectedFrom, Valid: true}
	}
	if filter.ExpectedTo != nil {
		args["to"] = sql.NullTime{Time: *filter.ExpectedTo, Valid: true}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.delivery_id, c.name, d.expected_delivery_at, p.amount, p.method, p.status, p.paid_at
		FROM payments p
		JOIN deliveries d ON d.id = p.delivery_id
		JOIN customers c ON c.id = d.customer_id
		WHERE (@status::smallint IS NULL OR p.status = @status::smallint)
			AND (p.delivery_id::text ILIKE @q OR c.name ILIKE @q)
			AND (@from::timestamptz IS NULL OR d.expected_delivery_at >= @from::timestamptz)
			AND (@to::timestamptz IS NULL OR d.expected_delivery_at <= @to::timestamptz)
		ORDER BY p.paid_at DESC NULLS FIRST, p.id
	`, args).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]ListPaymentsQueryResponse, 0)
	for rows.Next() {
		var (
			resp                 ListPaymentsQueryResponse
			id, deliveryID       uuid.UUID
			expected             time.Time
			amount               decimal.Decimal
			method, paymentState int16
			paidAt               sql.NullTime
		)
		if err := rows.Scan(&id, &deliveryID, &resp.CustomerName, &expected, &amount, &method, &paymentState, &paidAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if resp.DeliveryID, err = kernel.UUIDFrom(deliveryID); err != nil {
			return nil, err
		}
		if resp.Amount, err = kernel.NewMoney(amount); err != nil {
			return nil, err
		}
		resp.ExpectedDeliveryAt = expected.UTC()
		resp.AmountLabel = resp.Amount.Format()
		resp.Method = payment.Method(method).String()
		resp.MethodLabel = payment.Method(method).Label()
		resp.Status = payment.Status(paymentState).String()
		resp.StatusLabel = payment.Status(paymentState).Label()
		if paidAt.Valid {
			t := paidAt.Time.UTC()
			resp.PaidAt = &t
		}

		payments = append(payments, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
