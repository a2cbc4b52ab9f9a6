package payment

import (
	"errors"
	"fmt"
	"strings"

	"distributor/internal/pkg/errs"
)

var ErrPaymentMethodIsRequired = errors.New("payment method is required")

// Method is how the customer settles a delivery.
type Method int

const (
	UnknownMethod Method = iota
	Cash
	Card
	PIX
	Invoice
	StoreCredit
)

type methodNames struct {
	code   string
	legacy string
	label  string
}

func getMethodNames() map[Method]methodNames {
	//nolint:exhaustive // UnknownMethod has no names
	return map[Method]methodNames{
		Cash:        {code: "CASH", legacy: "DINHEIRO", label: "Dinheiro"},
		Card:        {code: "CARD", legacy: "CARTAO", label: "Cartão"},
		PIX:         {code: "PIX", legacy: "PIX", label: "PIX"},
		Invoice:     {code: "INVOICE", legacy: "BOLETO", label: "Boleto"},
		StoreCredit: {code: "STORE_CREDIT", legacy: "FIADO", label: "Fiado"},
	}
}

// Methods lists every valid method in display order.
func Methods() []Method {
	return []Method{Cash, Card, PIX, Invoice, StoreCredit}
}

// ParseMethod accepts an English or legacy pt-BR code, case-insensitive. An empty input
// yields ErrPaymentMethodIsRequired.
func ParseMethod(code string) (Method, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return UnknownMethod, ErrPaymentMethodIsRequired
	}
	for _, m := range Methods() {
		names := getMethodNames()[m]
		if names.code == code || names.legacy == code {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a payment method", code))
}

func (m Method) Validate() error {
	if _, ok := getMethodNames()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m Method) String() string {
	if n, ok := getMethodNames()[m]; ok {
		return n.code
	}
	return "UNKNOWN"
}

func (m Method) Label() string {
	if n, ok := getMethodNames()[m]; ok {
		return n.label
	}
	return "-"
}

// IsDeferred reports whether the customer owes the amount after delivery.
func (m Method) IsDeferred() bool {
	return m == StoreCredit
}
