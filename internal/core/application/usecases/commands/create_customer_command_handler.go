package commands

import (
	"context"
	"errors"

	"distributor/internal/core/domain/model/customer"
	"distributor/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers with a unique email.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      Clock
}

// NewCreateCustomerCommandHandler creates a handler stamping registrations with clock.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, clock Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns customer.ErrEmailIsAlreadyRegistered when the email is taken.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Address(), cmd.Phone(), cmd.Email(), h.clock.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	_, err = repo.GetByEmail(ctx, c.Email())
	switch {
	case err == nil:
		return customer.ErrEmailIsAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
