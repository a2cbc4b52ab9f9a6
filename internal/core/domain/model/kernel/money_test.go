package kernel_test

import (
	"encoding/json"
	"testing"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should accept amounts with up to two decimals", func(t *testing.T) {
		for _, input := range []string{"0", "7", "10.5", "120.00", "99999999.99"} {
			t.Run(input, func(t *testing.T) {
				m, err := kernel.MoneyFromString(input)

				require.NoError(t, err)
				require.NoError(t, m.Validate())
			})
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject amounts above numeric(10,2)", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("100000000.00"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject more than two decimal places", func(t *testing.T) {
		_, err := kernel.MoneyFromString("10.001")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non numeric strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money

	require.ErrorIs(t, zero.Validate(), kernel.ErrMoneyIsNotConstructed)
	require.NoError(t, kernel.ZeroMoney().Validate())
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should sum exactly", func(t *testing.T) {
		total := kernel.ZeroMoney().
			Add(mustMoney(t, "10.00").Times(1)).
			Add(mustMoney(t, "120.00").Times(1))

		assert.Equal(t, "130.00", total.String())
		assert.True(t, total.IsEqual(mustMoney(t, "130")))
	})

	t.Run("should not accumulate binary rounding errors", func(t *testing.T) {
		total := kernel.ZeroMoney()
		for range 10 {
			total = total.Add(mustMoney(t, "0.10"))
		}

		assert.Equal(t, "1.00", total.String())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "20.00", mustMoney(t, "10.00").Times(2).String())
		assert.Equal(t, "0.00", mustMoney(t, "7.00").Times(0).String())
	})
}

func TestMoney_Format(t *testing.T) {
	assert.Equal(t, "R$ 140.00", mustMoney(t, "140").Format())
	assert.Equal(t, "R$ 7.50", mustMoney(t, "7.5").Format())
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Total kernel.Money `json:"total"`
	}{Total: mustMoney(t, "140")})

	require.NoError(t, err)
	assert.JSONEq(t, `{"total":"140.00"}`, string(data))
}
