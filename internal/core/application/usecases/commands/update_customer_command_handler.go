package commands

import (
	"context"
	"errors"

	"distributor/internal/core/domain/model/customer"
	"distributor/internal/pkg/errs"
)

// UpdateCustomerCommandHandler edits registered customers.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler that opens one unit of work per command.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the customer does not exist and
// customer.ErrEmailIsAlreadyRegistered when the new email belongs to someone else.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = c.Edit(cmd.Name(), cmd.Address(), cmd.Phone(), cmd.Email()); err != nil {
		return err
	}

	owner, err := repo.GetByEmail(ctx, c.Email())
	switch {
	case err == nil && !owner.ID().IsEqual(c.ID()):
		return customer.ErrEmailIsAlreadyRegistered
	case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
