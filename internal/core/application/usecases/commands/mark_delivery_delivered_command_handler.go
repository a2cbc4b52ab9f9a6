package commands

import (
	"context"
	"errors"
	"fmt"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/payment"
	"distributor/internal/core/domain/services"
	"distributor/internal/pkg/errs"
)

// PaymentOutcome tells whether completing a delivery created its payment or updated it.
type PaymentOutcome int

const (
	PaymentCreated PaymentOutcome = iota + 1
	PaymentUpdated
)

func (o PaymentOutcome) String() string {
	switch o {
	case PaymentCreated:
		return "created"
	case PaymentUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// MarkDeliveryDeliveredResult describes a completed delivery.
type MarkDeliveryDeliveredResult struct {
	DeliveryID kernel.UUID
	PaymentID  kernel.UUID
	Outcome    PaymentOutcome
	Total      kernel.Money
	Method     payment.Method
	Status     payment.Status
}

// Message is the operator confirmation, e.g.
// "Entrega confirmada! Pagamento de R$ 140.00 via PIX - Status: Pago."
func (r MarkDeliveryDeliveredResult) Message() string {
	return fmt.Sprintf("Entrega confirmada! Pagamento de %s via %s - Status: %s.",
		r.Total.Format(), r.Method.Label(), r.Status.Label())
}

// MarkDeliveryDeliveredCommandHandler completes deliveries.
//
// The delivery row and its product rows are locked for the whole transaction, so two
// operators completing deliveries that share a product are serialized and stock can never
// be oversold. Stock check, stock decrement, status write and payment upsert commit together
// or not at all.
type MarkDeliveryDeliveredCommandHandler struct {
	uowFactory CompletionUoWFactory
	completer  services.DeliveryCompleter
	clock      Clock
}

// NewMarkDeliveryDeliveredCommandHandler creates a handler; clock stamps paid-at.
func NewMarkDeliveryDeliveredCommandHandler(
	uowFactory CompletionUoWFactory,
	completer services.DeliveryCompleter,
	clock Clock,
) MarkDeliveryDeliveredCommandHandler {
	return MarkDeliveryDeliveredCommandHandler{
		uowFactory: uowFactory,
		completer:  completer,
		clock:      clock,
	}
}

// Handle returns product.InsufficientStockError when any line item cannot be covered.
func (h *MarkDeliveryDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkDeliveryDeliveredCommand,
) (MarkDeliveryDeliveredResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	productRepo := uow.ProductRepository()
	products, err := productRepo.GetForUpdate(ctx, d.ProductIDs())
	if err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.GetByDelivery(ctx, d.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return MarkDeliveryDeliveredResult{}, err
	}

	completion, err := h.completer.Complete(d, products, existing, cmd.Method(), kernel.NewUUID(), h.clock.now())
	if err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return MarkDeliveryDeliveredResult{}, err
		}
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	outcome := PaymentUpdated
	if completion.PaymentCreated {
		outcome = PaymentCreated
		err = paymentRepo.Add(ctx, completion.Payment)
	} else {
		err = paymentRepo.Update(ctx, completion.Payment)
	}
	if err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkDeliveryDeliveredResult{}, err
	}

	return MarkDeliveryDeliveredResult{
		DeliveryID: d.ID(),
		PaymentID:  completion.Payment.ID(),
		Outcome:    outcome,
		Total:      completion.Total,
		Method:     completion.Payment.Method(),
		Status:     completion.Payment.Status(),
	}, nil
}
