package services_test

import (
	"testing"
	"time"

	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
	"distributor/internal/core/domain/model/product"
	"distributor/internal/core/domain/services"
	"distributor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func newProduct(t *testing.T, name, price string, stock int) *product.Product {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), name, "", m, stock, now)
	require.NoError(t, err)
	return p
}

func newDelivery(t *testing.T, quantities map[*product.Product]int, order ...*product.Product) *delivery.Delivery {
	t.Helper()
	items := make([]delivery.LineItem, 0, len(order))
	for _, p := range order {
		li, err := delivery.NewLineItem(kernel.NewUUID(), p.ID(), quantities[p])
		require.NoError(t, err)
		items = append(items, li)
	}
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), nil, now, now.Add(time.Hour), "Rua A, 1", items)
	require.NoError(t, err)
	return d
}

func TestDeliveryCompleter_Complete(t *testing.T) {
	completer := services.NewDeliveryCompleter()

	t.Run("worked example with pix", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 5)
		b := newProduct(t, "Gás 13kg", "120.00", 1)
		d := newDelivery(t, map[*product.Product]int{a: 2, b: 1}, a, b)

		c, err := completer.Complete(d, []*product.Product{b, a}, nil, payment.PIX, kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, 3, a.Stock())
		assert.Equal(t, 0, b.Stock())
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.Equal(t, "140.00", c.Total.String())
		assert.True(t, c.PaymentCreated)
		require.NotNil(t, c.Payment)
		assert.True(t, d.ID().IsEqual(c.Payment.DeliveryID()))
		assert.Equal(t, "140.00", c.Payment.Amount().String())
		assert.Equal(t, payment.PIX, c.Payment.Method())
		assert.Equal(t, payment.Paid, c.Payment.Status())
		assert.Equal(t, now, *c.Payment.PaidAt())
	})

	t.Run("sums decimals exactly", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 1)
		b := newProduct(t, "Gás 13kg", "120.00", 1)
		c1 := newProduct(t, "Copo", "0.10", 3)
		d := newDelivery(t, map[*product.Product]int{a: 1, b: 1, c1: 3}, a, b, c1)

		c, err := completer.Complete(d, []*product.Product{a, b, c1}, nil, payment.Cash, kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, "130.30", c.Total.String())
	})

	t.Run("store credit leaves payment pending", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 5)
		d := newDelivery(t, map[*product.Product]int{a: 1}, a)

		c, err := completer.Complete(d, []*product.Product{a}, nil, payment.StoreCredit, kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, payment.Pending, c.Payment.Status())
		assert.Nil(t, c.Payment.PaidAt())
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("shortfall changes nothing", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 5)
		b := newProduct(t, "Gás 13kg", "120.00", 1)
		d := newDelivery(t, map[*product.Product]int{a: 2, b: 2}, a, b)

		_, err := completer.Complete(d, []*product.Product{a, b}, nil, payment.PIX, kernel.NewUUID(), now)

		var stockErr *product.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Gás 13kg", stockErr.ProductName)
		assert.Equal(t, 1, stockErr.Available)
		assert.Equal(t, 2, stockErr.Required)
		assert.Equal(t, 5, a.Stock())
		assert.Equal(t, 1, b.Stock())
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("reconciles existing payment in place", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 10)
		d := newDelivery(t, map[*product.Product]int{a: 2}, a)
		first, err := completer.Complete(d, []*product.Product{a}, nil, payment.StoreCredit, kernel.NewUUID(), now)
		require.NoError(t, err)

		later := now.Add(time.Hour)
		second, err := completer.Complete(d, []*product.Product{a}, first.Payment, payment.Card, kernel.NewUUID(), later)

		require.NoError(t, err)
		assert.False(t, second.PaymentCreated)
		assert.Same(t, first.Payment, second.Payment)
		assert.Equal(t, payment.Paid, second.Payment.Status())
		assert.Equal(t, later, *second.Payment.PaidAt())
		assert.Equal(t, 6, a.Stock(), "stock is decremented on every completion")
	})

	t.Run("rejects payment of another delivery", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 10)
		d := newDelivery(t, map[*product.Product]int{a: 1}, a)
		other, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), kernel.ZeroMoney(), payment.Cash, now)
		require.NoError(t, err)

		_, err = completer.Complete(d, []*product.Product{a}, other, payment.Cash, kernel.NewUUID(), now)

		require.ErrorIs(t, err, services.ErrPaymentBelongsToAnotherDelivery)
		assert.Equal(t, 10, a.Stock())
	})

	t.Run("missing product is not found", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 10)
		d := newDelivery(t, map[*product.Product]int{a: 1}, a)

		_, err := completer.Complete(d, nil, nil, payment.Cash, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("unknown method is invalid", func(t *testing.T) {
		a := newProduct(t, "Água 20L", "10.00", 10)
		d := newDelivery(t, map[*product.Product]int{a: 1}, a)

		_, err := completer.Complete(d, []*product.Product{a}, nil, payment.UnknownMethod, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 10, a.Stock())
	})
}
