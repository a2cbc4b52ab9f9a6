package http

import (
	"net/http"

	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/core/application/usecases/queries"
	"distributor/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type NewDriverRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

func (s *Server) ListDrivers(c echo.Context) error {
	drivers, err := s.h.ListDrivers.Handle(c.Request().Context(), queries.NewListDriversQuery(c.QueryParam("q")))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, drivers)
}

func (s *Server) CreateDriver(c echo.Context) error {
	var req NewDriverRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), req.Name, req.Phone, req.Vehicle)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.CreateDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.DriverID()})
}

func (s *Server) UpdateDriver(c echo.Context) error {
	driverID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var req NewDriverRequest
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID, req.Name, req.Phone, req.Vehicle)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.UpdateDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteDriver keeps the driver's deliveries, which are left without a driver.
func (s *Server) DeleteDriver(c echo.Context) error {
	driverID, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteDriver.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
