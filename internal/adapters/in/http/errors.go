package http

import (
	"errors"
	"net/http"

	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/domain/model/customer"
	"distributor/internal/core/domain/model/delivery"
	"distributor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed admin request outside the delivery actions.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ActionResponse is shown to the operator after a delivery action.
type ActionResponse struct {
	Level   string       `json:"level"`
	Message string       `json:"message"`
	Payment *PaymentInfo `json:"payment,omitempty"`
}

const (
	levelSuccess = "success"
	levelError   = "error"
)

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorResponse{Code: code, Message: message})
}

// statusOf maps use case errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, customer.ErrEmailIsAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, delivery.ErrLineItemsAreRequired),
		errors.Is(err, delivery.ErrDuplicateProduct):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return errorJSON(c, code, http.StatusText(code))
	}
	return errorJSON(c, code, err.Error())
}

// failAction answers a rejected delivery action. Business rejections are 422 with the
// operator message; anything else keeps its regular status.
func (s *Server) failAction(c echo.Context, err error) error {
	if message, ok := commands.OperatorMessage(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, ActionResponse{Level: levelError, Message: message})
	}

	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "delivery action failed",
			"path", c.Path(), "delivery_id", c.Param("id"), "error", err)
		message = http.StatusText(code)
	}
	return c.JSON(code, ActionResponse{Level: levelError, Message: message})
}
