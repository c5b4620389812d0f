package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmpleadoHandler serves the employee listing endpoint. The store interface
// lives in auth.go, shared with credential registration.
type EmpleadoHandler struct {
	Empleados EmpleadoStore
}

func NewEmpleadoHandler(s EmpleadoStore) *EmpleadoHandler { return &EmpleadoHandler{Empleados: s} }

// Listar returns every employee.
func (h *EmpleadoHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	empleados, err := h.Empleados.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]EmpleadoOut, 0, len(empleados))
	for _, e := range empleados {
		out = append(out, toEmpleadoOut(e))
	}
	return c.JSON(http.StatusOK, out)
}
