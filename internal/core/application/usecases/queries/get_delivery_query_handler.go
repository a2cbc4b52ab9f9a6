package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
	"distributor/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown delivery.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	resp, err := h.header(db, query.deliveryID)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.LineItems, resp.Total, err = h.lineItems(db, query.deliveryID); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.Payment, err = h.payment(db, query.deliveryID); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDeliveryQueryHandler) header(db *gorm.DB, deliveryID kernel.UUID) (GetDeliveryQueryResponse, error) {
	var (
		resp                GetDeliveryQueryResponse
		id, customerID      uuid.UUID
		driverID            uuid.NullUUID
		driverName          sql.NullString
		orderedAt, expected time.Time
		status              int16
	)
	err := db.Raw(`
		SELECT d.id, d.customer_id, c.name, d.driver_id, dr.name, d.ordered_at, d.expected_delivery_at, d.status, d.address
		FROM deliveries d
		JOIN customers c ON c.id = d.customer_id
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		WHERE d.id = ?
	`, deliveryID.Value()).Row().Scan(
		&id, &customerID, &resp.CustomerName, &driverID, &driverName, &orderedAt, &expected, &status, &resp.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError("delivery", deliveryID.String())
	}
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFrom(id); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFrom(customerID); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	resp.DriverName = noValue
	if driverID.Valid {
		v, err := kernel.UUIDFrom(driverID.UUID)
		if err != nil {
			return GetDeliveryQueryResponse{}, err
		}
		resp.DriverID = &v
		resp.DriverName = driverName.String
	}
	resp.OrderedAt = orderedAt.UTC()
	resp.ExpectedDeliveryAt = expected.UTC()
	resp.Status = delivery.Status(status).String()
	resp.StatusLabel = delivery.Status(status).Label()

	return resp, nil
}

func (h GetDeliveryQueryHandler) lineItems(db *gorm.DB, deliveryID kernel.UUID) ([]DeliveryLineItemView, kernel.Money, error) {
	rows, err := db.Raw(`
		SELECT p.id, p.name, p.price, l.quantity
		FROM delivery_line_items l
		JOIN products p ON p.id = l.product_id
		WHERE l.delivery_id = ?
		ORDER BY l.position, l.id
	`, deliveryID.Value()).Rows()
	if err != nil {
		return nil, kernel.Money{}, err
	}
	defer rows.Close()

	items := make([]DeliveryLineItemView, 0)
	total := kernel.ZeroMoney()
	for rows.Next() {
		var (
			item      DeliveryLineItemView
			productID uuid.UUID
			price     decimal.Decimal
		)
		if err := rows.Scan(&productID, &item.ProductName, &price, &item.Quantity); err != nil {
			return nil, kernel.Money{}, err
		}
		if item.ProductID, err = kernel.UUIDFrom(productID); err != nil {
			return nil, kernel.Money{}, err
		}
		if item.UnitPrice, err = kernel.NewMoney(price); err != nil {
			return nil, kernel.Money{}, err
		}
		item.Subtotal = item.UnitPrice.Times(item.Quantity)
		total = total.Add(item.Subtotal)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, kernel.Money{}, err
	}

	return items, total, nil
}

func (h GetDeliveryQueryHandler) payment(db *gorm.DB, deliveryID kernel.UUID) (*DeliveryPaymentView, error) {
	var (
		id             uuid.UUID
		amount         decimal.Decimal
		method, status int16
		paidAt         sql.NullTime
	)
	err := db.Raw(`SELECT id, amount, method, status, paid_at FROM payments WHERE delivery_id = ?`, deliveryID.Value()).
		Row().
		Scan(&id, &amount, &method, &status, &paidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	view := &DeliveryPaymentView{
		Method:      payment.Method(method).String(),
		MethodLabel: payment.Method(method).Label(),
		Status:      payment.Status(status).String(),
		StatusLabel: payment.Status(status).Label(),
	}
	if view.ID, err = kernel.UUIDFrom(id); err != nil {
		return nil, err
	}
	if view.Amount, err = kernel.NewMoney(amount); err != nil {
		return nil, err
	}
	if paidAt.Valid {
		t := paidAt.Time.UTC()
		view.PaidAt = &t
	}

	return view, nil
}
