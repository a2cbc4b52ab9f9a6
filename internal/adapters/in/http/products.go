package http

import (
	"net/http"

	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ProductRequest is the body of product creation and update. Price is a decimal string.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
}

func (r ProductRequest) fields() (commands.ProductFields, error) {
	price, err := kernel.MoneyFromString(r.Price)
	if err != nil {
		return commands.ProductFields{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return commands.ProductFields{
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Stock:       r.Stock,
	}, nil
}

// ListProducts handles GET /api/admin/products.
func (s *Server) ListProducts(c echo.Context) error {
	query := queries.NewListProductsQuery(c.QueryParam("q"), c.QueryParam("sort"))

	products, err := s.h.ListProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/admin/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	fields, err := req.fields()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), fields)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ProductID()})
}

// DeleteProduct handles DELETE /api/admin/products/:id. Line items of the product are
// removed from every delivery that contains them.
func (s *Server) DeleteProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateProduct handles PUT /api/admin/products/:id. Every field is replaced.
func (s *Server) UpdateProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var req ProductRequest
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	fields, err := req.fields()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateProductCommand(productID, fields)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
