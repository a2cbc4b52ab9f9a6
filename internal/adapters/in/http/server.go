// Package http exposes the back office over a JSON API.
//
// Every route under /api/admin except login and the address lookup requires a bearer
// token issued by the login route. Requests under /api are validated against the
// embedded OpenAPI document before they reach a handler.
package http

import (
	"log/slog"
	"net/http"

	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/kernel"
	"distributor/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateCustomer        commands.CreateCustomerCommandHandler
	UpdateCustomer        commands.UpdateCustomerCommandHandler
	DeleteCustomer        commands.DeleteCustomerCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	UpdateProduct         commands.UpdateProductCommandHandler
	DeleteProduct         commands.DeleteProductCommandHandler
	CreateDriver          commands.CreateDriverCommandHandler
	UpdateDriver          commands.UpdateDriverCommandHandler
	DeleteDriver          commands.DeleteDriverCommandHandler
	CreateDelivery        commands.CreateDeliveryCommandHandler
	UpdateDelivery        commands.UpdateDeliveryCommandHandler
	DeleteDelivery        commands.DeleteDeliveryCommandHandler
	MarkDeliveryInTransit commands.MarkDeliveryInTransitCommandHandler
	CancelDelivery        commands.CancelDeliveryCommandHandler
	MarkDeliveryDelivered commands.MarkDeliveryDeliveredCommandHandler

	// Query handlers
	GetCustomerAddress queries.GetCustomerAddressQueryHandler
	ListCustomers      queries.ListCustomersQueryHandler
	ListProducts       queries.ListProductsQueryHandler
	ListDrivers        queries.ListDriversQueryHandler
	ListDeliveries     queries.ListDeliveriesQueryHandler
	GetDelivery        queries.GetDeliveryQueryHandler
	ListPayments       queries.ListPaymentsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	auth   *Authenticator
	logger *slog.Logger
}

func NewServer(h Handlers, auth *Authenticator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		h:      h,
		auth:   auth,
		logger: logger.With("component", "http"),
	}
}

// CreatedResponse carries the identifier of a created record.
type CreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

// Register mounts every route on e. validator, when not nil, runs before each /api route.
func (s *Server) Register(e *echo.Echo, validator echo.MiddlewareFunc) {
	api := e.Group("/api")
	if validator != nil {
		api.Use(validator)
	}

	api.POST("/admin/login", s.auth.Login)
	api.GET("/admin/entrega/add/auto-complete-endereco/:customer_id", s.GetCustomerAddress)

	admin := api.Group("/admin", s.auth.Middleware())

	admin.GET("/customers", s.ListCustomers)
	admin.POST("/customers", s.CreateCustomer)
	admin.PUT("/customers/:id", s.UpdateCustomer)
	admin.DELETE("/customers/:id", s.DeleteCustomer)

	admin.GET("/products", s.ListProducts)
	admin.POST("/products", s.CreateProduct)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)

	admin.GET("/drivers", s.ListDrivers)
	admin.POST("/drivers", s.CreateDriver)
	admin.PUT("/drivers/:id", s.UpdateDriver)
	admin.DELETE("/drivers/:id", s.DeleteDriver)

	admin.GET("/deliveries", s.ListDeliveries)
	admin.POST("/deliveries", s.CreateDelivery)
	admin.GET("/deliveries/:id", s.GetDelivery)
	admin.PUT("/deliveries/:id", s.UpdateDelivery)
	admin.DELETE("/deliveries/:id", s.DeleteDelivery)
	admin.POST("/deliveries/:id/in-transit", s.MarkDeliveryInTransit)
	admin.POST("/deliveries/:id/cancel", s.CancelDelivery)
	admin.POST("/deliveries/:id/deliver", s.MarkDeliveryDelivered)

	admin.GET("/payments", s.ListPayments)
}

// GetCustomerAddress handles GET /api/admin/entrega/add/auto-complete-endereco/:customer_id.
// An unknown customer yields an empty address.
func (s *Server) GetCustomerAddress(c echo.Context) error {
	customerID, err := pathUUID(c, "customer_id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCustomerAddressQuery(customerID)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.h.GetCustomerAddress.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFrom(id)
}

func optionalUUID(name string, value *string) (*kernel.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil //nolint:nilnil // absent reference
	}
	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

func requiredUUID(name, value string) (kernel.UUID, error) {
	if value == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(name)
	}
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
