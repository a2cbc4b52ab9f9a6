package http

import (
	"net/http"
	"time"

	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type LineItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewDeliveryRequest places a delivery. An empty address copies the customer's address.
type NewDeliveryRequest struct {
	CustomerID         string            `json:"customer_id"`
	DriverID           *string           `json:"driver_id"`
	ExpectedDeliveryAt time.Time         `json:"expected_delivery_at"`
	Address            string            `json:"address"`
	LineItems          []LineItemRequest `json:"line_items"`
}

// UpdateDeliveryRequest edits a delivery. A null or absent driver_id unassigns it.
type UpdateDeliveryRequest struct {
	DriverID           *string   `json:"driver_id"`
	ExpectedDeliveryAt time.Time `json:"expected_delivery_at"`
	Address            string    `json:"address"`
}

// DeliverRequest takes the payment method from a JSON body or a form field.
type DeliverRequest struct {
	Method string `json:"method" form:"method"`
}

// PaymentInfo describes the payment written by a completion.
type PaymentInfo struct {
	ID          kernel.UUID  `json:"id"`
	Outcome     string       `json:"outcome"`
	Amount      kernel.Money `json:"amount"`
	Method      string       `json:"method"`
	MethodLabel string       `json:"method_label"`
	Status      string       `json:"status"`
	StatusLabel string       `json:"status_label"`
}

// ListDeliveries handles GET /api/admin/deliveries, newest first.
func (s *Server) ListDeliveries(c echo.Context) error {
	var status *delivery.Status
	if code := c.QueryParam("status"); code != "" {
		parsed, err := delivery.ParseStatus(code)
		if err != nil {
			return s.fail(c, err)
		}
		status = &parsed
	}

	query, err := queries.NewListDeliveriesQuery(status)
	if err != nil {
		return s.fail(c, err)
	}

	deliveries, err := s.h.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, deliveries)
}

// GetDelivery handles GET /api/admin/deliveries/:id.
func (s *Server) GetDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return s.fail(c, err)
	}

	response, err := s.h.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/admin/deliveries.
func (s *Server) CreateDelivery(c echo.Context) error {
	var req NewDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	customerID, err := requiredUUID("customer_id", req.CustomerID)
	if err != nil {
		return s.fail(c, err)
	}
	driverID, err := optionalUUID("driver_id", req.DriverID)
	if err != nil {
		return s.fail(c, err)
	}

	lineItems := make([]commands.LineItemInput, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		productID, err := requiredUUID("product_id", li.ProductID)
		if err != nil {
			return s.fail(c, err)
		}
		lineItems = append(lineItems, commands.LineItemInput{ProductID: productID, Quantity: li.Quantity})
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), customerID, driverID, req.ExpectedDeliveryAt, req.Address, lineItems)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.CreateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.DeliveryID()})
}

// UpdateDelivery handles PUT /api/admin/deliveries/:id. The status is left as it is.
func (s *Server) UpdateDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateDeliveryRequest
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	driverID, err := optionalUUID("driver_id", req.DriverID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryCommand(deliveryID, driverID, req.ExpectedDeliveryAt, req.Address)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.UpdateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteDelivery handles DELETE /api/admin/deliveries/:id together with its line items and
// payment. Stock taken by a completion is not given back.
func (s *Server) DeleteDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkDeliveryInTransit handles POST /api/admin/deliveries/:id/in-transit.
func (s *Server) MarkDeliveryInTransit(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return s.failAction(c, err)
	}

	cmd, err := commands.NewMarkDeliveryInTransitCommand(deliveryID)
	if err != nil {
		return s.failAction(c, err)
	}

	message, err := s.h.MarkDeliveryInTransit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failAction(c, err)
	}
	return c.JSON(http.StatusOK, ActionResponse{Level: levelSuccess, Message: message})
}

// CancelDelivery handles POST /api/admin/deliveries/:id/cancel.
func (s *Server) CancelDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return s.failAction(c, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return s.failAction(c, err)
	}

	message, err := s.h.CancelDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failAction(c, err)
	}
	return c.JSON(http.StatusOK, ActionResponse{Level: levelSuccess, Message: message})
}

// MarkDeliveryDelivered handles POST /api/admin/deliveries/:id/deliver. A missing method
// and a stock shortfall are answered with 422 and change nothing.
func (s *Server) MarkDeliveryDelivered(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return s.failAction(c, err)
	}

	var req DeliverRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ActionResponse{Level: levelError, Message: "invalid request body"})
	}

	cmd, err := commands.NewMarkDeliveryDeliveredCommand(deliveryID, req.Method)
	if err != nil {
		return s.failAction(c, err)
	}

	result, err := s.h.MarkDeliveryDelivered.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failAction(c, err)
	}

	s.logger.InfoContext(c.Request().Context(), "delivery completed",
		"delivery_id", result.DeliveryID.String(),
		"payment_id", result.PaymentID.String(),
		"payment", result.Outcome.String(),
		"total", result.Total.String())

	return c.JSON(http.StatusOK, ActionResponse{
		Level:   levelSuccess,
		Message: result.Message(),
		Payment: &PaymentInfo{
			ID:          result.PaymentID,
			Outcome:     result.Outcome.String(),
			Amount:      result.Total,
			Method:      result.Method.String(),
			MethodLabel: result.Method.Label(),
			Status:      result.Status.String(),
			StatusLabel: result.Status.Label(),
		},
	})
}
