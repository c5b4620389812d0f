package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Knight2115/API-StayManager/internal/model"
	"github.com/Knight2115/API-StayManager/internal/service"
)

// ReservaStore is the slice of the reservation repository the handlers
// need. List and GetByKey return rows with every dimension resolved.
type ReservaStore interface {
	List(ctx context.Context, limit int) ([]model.ReservaDetalle, error)
	GetByKey(ctx context.Context, key int64) (*model.ReservaDetalle, error)
	Create(ctx context.Context, r *model.Reserva) error
}

// ReservaHandler serves reservation listing and creation.
type ReservaHandler struct {
	Reservas ReservaStore
}

func NewReservaHandler(s ReservaStore) *ReservaHandler { return &ReservaHandler{Reservas: s} }

// Listar returns at most listCap reservations, each with its nested hotel,
// client, room (with room type) and calendar date.
func (h *ReservaHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	reservas, err := h.Reservas.List(ctx, listCap)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]ReservaOut, 0, len(reservas))
	for _, rv := range reservas {
		out = append(out, toReservaOut(rv))
	}
	return c.JSON(http.StatusOK, out)
}

type reservaIn struct {
	HotelKey          int64           `json:"HotelKey"`
	ClienteKey        int64           `json:"ClienteKey"`
	HabKey            int64           `json:"HabKey"`
	FechaKey          int64           `json:"FechaKey"`
	EmpKey            int64           `json:"EmpKey"`
	CanalKey          int64           `json:"CanalKey"`
	PagoKey           int64           `json:"PagoKey"`
	NochesReservadas  int             `json:"NochesReservadas"`
	CantidadHuespedes int             `json:"CantidadHuespedes"`
	IngresoHabitacion decimal.Decimal `json:"IngresoHabitacion"`
	IngresoServicios  decimal.Decimal `json:"IngresoServicios"`
	DescuentoTotal    decimal.Decimal `json:"DescuentoTotal"`
	ImpuestoTotal     decimal.Decimal `json:"ImpuestoTotal"`
	LeadTimeReserva   int             `json:"LeadTimeReserva"`
	IngresoTotal      decimal.Decimal `json:"IngresoTotal"`
}

// Crear inserts one reservation row and re-reads it with the same eager
// joins the listing uses, so creation and listing return identically shaped
// payloads. A reserva.creada event goes out after the re-read; publish
// failures never fail the request.
func (h *ReservaHandler) Crear(c echo.Context) error {
	var req reservaIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo inválido"})
	}
	if req.HotelKey == 0 || req.ClienteKey == 0 || req.HabKey == 0 || req.FechaKey == 0 ||
		req.EmpKey == 0 || req.CanalKey == 0 || req.PagoKey == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "todas las claves de referencia son requeridas"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	reserva := model.Reserva{
		HotelKey: req.HotelKey, ClienteKey: req.ClienteKey, HabKey: req.HabKey,
		FechaKey: req.FechaKey, EmpKey: req.EmpKey, CanalKey: req.CanalKey, PagoKey: req.PagoKey,
		NochesReservadas: req.NochesReservadas, CantidadHuespedes: req.CantidadHuespedes,
		IngresoHabitacion: req.IngresoHabitacion, IngresoServicios: req.IngresoServicios,
		DescuentoTotal: req.DescuentoTotal, ImpuestoTotal: req.ImpuestoTotal,
		LeadTimeReserva: req.LeadTimeReserva, IngresoTotal: req.IngresoTotal,
	}
	if err := h.Reservas.Create(ctx, &reserva); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}

	detalle, err := h.Reservas.GetByKey(ctx, reserva.ReservaKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}

	_ = service.PublishReservaCreada(ctx, service.ReservaCreadaEvent{
		ReservaKey:    detalle.ReservaKey,
		HotelNombre:   detalle.Hotel.Nombre,
		ClienteNombre: detalle.Cliente.Nombre + " " + detalle.Cliente.Apellido,
		NumeroHab:     detalle.Habitacion.NumeroHab,
		Fecha:         detalle.Fecha.Fecha.Format(dateLayout),
		Noches:        detalle.NochesReservadas,
		IngresoTotal:  detalle.IngresoTotal.StringFixed(2),
		CreadaEn:      time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, toReservaOut(*detalle))
}
