package commands

import (
	"errors"
	"fmt"

	"distributor/internal/core/domain/model/payment"
	"distributor/internal/core/domain/model/product"
)

// MessagePaymentMethodIsRequired is shown when a delivery is marked delivered without a method.
const MessagePaymentMethodIsRequired = "Selecione um método de pagamento."

// OperatorMessage renders a business rejection in the operator's language. It reports
// false for errors that are not business rejections.
func OperatorMessage(err error) (string, bool) {
	var stockErr *product.InsufficientStockError
	switch {
	case errors.Is(err, payment.ErrPaymentMethodIsRequired):
		return MessagePaymentMethodIsRequired, true
	case errors.As(err, &stockErr):
		return fmt.Sprintf("Estoque insuficiente para o produto '%s'. Disponível: %d, Necessário: %d.",
			stockErr.ProductName, stockErr.Available, stockErr.Required), true
	default:
		return "", false
	}
}
