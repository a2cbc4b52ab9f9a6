package commands

import (
	"context"

	"distributor/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler registers drivers.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler that opens one unit of work per command.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{uowFactory: uowFactory}
}

// Handle builds the driver and persists it.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Phone(), cmd.Vehicle())
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

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateDriverCommandHandler edits drivers.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler that opens one unit of work per command.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the driver does not exist.
func (h *UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

	repo := uow.DriverRepository()
	d, err := repo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = d.Edit(cmd.Name(), cmd.Phone(), cmd.Vehicle()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteDriverCommandHandler removes drivers.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler that opens one unit of work per command.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the driver does not exist.
func (h *DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
	if err := cmd.DriverID().Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DriverRepository().Delete(ctx, cmd.DriverID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
