package http

import (
	"net/http"
	"time"

	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/payment"
	"distributor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListPayments handles GET /api/admin/payments. expected_from and expected_to bound the
// expected delivery time of the paid delivery and are RFC3339 timestamps.
func (s *Server) ListPayments(c echo.Context) error {
	var filter queries.PaymentFilter
	filter.Search = c.QueryParam("q")

	if code := c.QueryParam("status"); code != "" {
		status, err := payment.ParseStatus(code)
		if err != nil {
			return s.fail(c, err)
		}
		filter.Status = &status
	}

	var err error
	if filter.ExpectedFrom, err = queryTime(c, "expected_from"); err != nil {
		return s.fail(c, err)
	}
	if filter.ExpectedTo, err = queryTime(c, "expected_to"); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListPaymentsQuery(filter)
	if err != nil {
		return s.fail(c, err)
	}

	payments, err := s.h.ListPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

func queryTime(c echo.Context, name string) (*time.Time, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil //nolint:nilnil // absent bound
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &t, nil
}
