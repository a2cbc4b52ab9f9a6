package commands

import (
	"context"

	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/core/domain/model/product"
)

type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      Clock
}

// NewCreateProductCommandHandler creates a handler stamping the creation time with clock.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory, clock Clock) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	f := cmd.Fields()
	p, err := product.NewProduct(cmd.ProductID(), f.Name, f.Description, f.Price, f.Stock, h.clock.now())
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

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

// Handle locks the product row so that an edit cannot interleave with a delivery completion.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	repo := uow.ProductRepository()
	locked, err := repo.GetForUpdate(ctx, []kernel.UUID{cmd.ProductID()})
	if err != nil {
		return err
	}
	p := locked[0]

	f := cmd.Fields()
	if err = p.Edit(f.Name, f.Description, f.Price, f.Stock); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
