package customer_test

import (
	"strings"
	"testing"
	"time"

	"distributor/internal/core/domain/model/customer"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	registeredAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	t.Run("should create customer with valid data", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, " Maria Silva ", "Rua das Flores, 123", "11999990001", "Maria@Example.com", registeredAt)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Maria Silva", c.Name())
		assert.Equal(t, "Rua das Flores, 123", c.Address())
		assert.Equal(t, "11999990001", c.Phone())
		assert.Equal(t, "maria@example.com", c.Email())
		assert.Equal(t, registeredAt, c.RegisteredAt())
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		testCases := []struct {
			name     string
			custName string
			address  string
			phone    string
			email    string
			target   error
		}{
			{"empty name", "", "Rua A", "1199", "a@example.com", errs.ErrValueIsRequired},
			{"blank address", "Ana", "   ", "1199", "a@example.com", errs.ErrValueIsRequired},
			{"empty phone", "Ana", "Rua A", "", "a@example.com", errs.ErrValueIsRequired},
			{"long phone", "Ana", "Rua A", strings.Repeat("9", 21), "a@example.com", errs.ErrValueIsOutOfRange},
			{"empty email", "Ana", "Rua A", "1199", "", errs.ErrValueIsRequired},
			{"malformed email", "Ana", "Rua A", "1199", "not-an-email", errs.ErrValueIsInvalid},
			{"display name email", "Ana", "Rua A", "1199", "Ana <a@example.com>", errs.ErrValueIsInvalid},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := customer.NewCustomer(kernel.NewUUID(), tc.custName, tc.address, tc.phone, tc.email, registeredAt)

				require.ErrorIs(t, err, tc.target)
				assert.Nil(t, c)
			})
		}
	})

	t.Run("should reject zero registration time and id", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "Ana", "Rua A", "1199", "a@example.com", time.Time{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var nilCustomer *customer.Customer

	require.ErrorIs(t, nilCustomer.Validate(), customer.ErrCustomerIsNotConstructed)
	require.ErrorIs(t, (&customer.Customer{}).Validate(), customer.ErrCustomerIsNotConstructed)
}

func TestCustomer_Edit(t *testing.T) {
	registeredAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newCustomer := func(t *testing.T) *customer.Customer {
		t.Helper()
		c, err := customer.NewCustomer(kernel.NewUUID(), "Maria Silva", "Rua das Flores, 123",
			"11999990001", "maria@example.com", registeredAt)
		require.NoError(t, err)
		return c
	}

	t.Run("should replace contact fields and keep registration", func(t *testing.T) {
		c := newCustomer(t)

		err := c.Edit("Maria S. Souza", "Av. Paulista, 1000", "11999990009", "Maria.Souza@Example.com")

		require.NoError(t, err)
		assert.Equal(t, "Maria S. Souza", c.Name())
		assert.Equal(t, "Av. Paulista, 1000", c.Address())
		assert.Equal(t, "11999990009", c.Phone())
		assert.Equal(t, "maria.souza@example.com", c.Email())
		assert.Equal(t, registeredAt, c.RegisteredAt())
	})

	t.Run("should leave the customer unchanged on invalid input", func(t *testing.T) {
		c := newCustomer(t)

		err := c.Edit("Outro Nome", "", "11999990009", "not-an-email")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Maria Silva", c.Name())
		assert.Equal(t, "Rua das Flores, 123", c.Address())
		assert.Equal(t, "maria@example.com", c.Email())
	})
}
