package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// CanalReservaStore reads the booking-channel catalogue.
type CanalReservaStore interface {
	ListAll(ctx context.Context) ([]model.CanalReserva, error)
}

// PagoStore reads the payment-method catalogue.
type PagoStore interface {
	ListAll(ctx context.Context) ([]model.Pago, error)
}

// TipoHabStore reads the room-type catalogue.
type TipoHabStore interface {
	List(ctx context.Context, limit int) ([]model.TipoHab, error)
}

// CatalogoHandler serves the read-only catalogue endpoints (booking
// channels, payment methods, room types).
type CatalogoHandler struct {
	Canales  CanalReservaStore
	Pagos    PagoStore
	TiposHab TipoHabStore
}

func NewCatalogoHandler(ca CanalReservaStore, pa PagoStore, th TipoHabStore) *CatalogoHandler {
	return &CatalogoHandler{Canales: ca, Pagos: pa, TiposHab: th}
}

// ListarCanales returns every booking channel.
func (h *CatalogoHandler) ListarCanales(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	canales, err := h.Canales.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]CanalReservaOut, 0, len(canales))
	for _, cn := range canales {
		out = append(out, CanalReservaOut{CanalKey: cn.CanalKey, NombreCanal: cn.NombreCanal})
	}
	return c.JSON(http.StatusOK, out)
}

// ListarPagos returns every payment method.
func (h *CatalogoHandler) ListarPagos(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	pagos, err := h.Pagos.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]PagoOut, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, PagoOut{PagoKey: p.PagoKey, Metodo: p.Metodo})
	}
	return c.JSON(http.StatusOK, out)
}

// ListarTiposHab returns at most listCap room types.
func (h *CatalogoHandler) ListarTiposHab(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	tipos, err := h.TiposHab.List(ctx, listCap)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]TipoHabOut, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, toTipoHabOut(t))
	}
	return c.JSON(http.StatusOK, out)
}
