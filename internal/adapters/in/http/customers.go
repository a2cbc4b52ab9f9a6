package http

import (
	"net/http"

	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NewCustomerRequest is the body of customer registration and update.
type NewCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ListCustomers handles GET /api/admin/customers. registered_from and registered_to bound
// the registration time and are RFC3339 timestamps.
func (s *Server) ListCustomers(c echo.Context) error {
	filter := queries.CustomerFilter{Search: c.QueryParam("q"), Sort: c.QueryParam("sort")}

	var err error
	if filter.RegisteredFrom, err = queryTime(c, "registered_from"); err != nil {
		return s.fail(c, err)
	}
	if filter.RegisteredTo, err = queryTime(c, "registered_to"); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListCustomersQuery(filter)
	if err != nil {
		return s.fail(c, err)
	}

	customers, err := s.h.ListCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

// CreateCustomer handles POST /api/admin/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req NewCustomerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), req.Name, req.Address, req.Phone, req.Email)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CustomerID()})
}

// UpdateCustomer handles PUT /api/admin/customers/:id. Every contact field is replaced;
// an email registered to another customer is answered with 409.
func (s *Server) UpdateCustomer(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var req NewCustomerRequest
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, req.Name, req.Address, req.Phone, req.Email)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.UpdateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/admin/customers/:id. The customer's deliveries go with it.
func (s *Server) DeleteCustomer(c echo.Context) error {
	customerID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
