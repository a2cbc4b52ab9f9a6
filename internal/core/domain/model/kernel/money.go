package kernel

import (
	"errors"
	"fmt"

	"distributor/internal/pkg/errs"
	"distributor/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places of every amount in the system (numeric(10,2)).
const MoneyScale = 2

// MoneyMaxAmount is the largest amount that fits numeric(10,2).
var MoneyMaxAmount = decimal.RequireFromString("99999999.99")

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString or ZeroMoney")

// Money is a non-negative BRL amount with exactly two decimal places. Arithmetic is
// exact: 10.00 + 120.00 is 130.00, never 129.999999.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney accepts amounts with at most two decimal places in [0, MoneyMaxAmount].
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", MoneyMaxAmount.String())
	}
	if amount.GreaterThan(MoneyMaxAmount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", MoneyMaxAmount.String())
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyScale))
	}

	return Money{amount: amount.Round(MoneyScale), guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string such as "10.00" or "7".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns 0.00, the starting point of every total.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate ensures the amount was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Times returns m multiplied by a line item quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// Decimal exposes the amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual compares amounts numerically.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimals, e.g. "140.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Format renders the amount the way operators read it, e.g. "R$ 140.00".
func (m Money) Format() string {
	return "R$ " + m.String()
}

// MarshalText renders the amount with two decimals, so Money serializes as "140.00" in JSON.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
