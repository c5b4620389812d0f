package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Knight2115/API-StayManager/internal/model"
	"github.com/Knight2115/API-StayManager/internal/repository"
)

// HabitacionStore is the slice of the room repository the handlers need.
// Reads come back with the room type already resolved.
type HabitacionStore interface {
	ListByHotel(ctx context.Context, hotelKey int64) ([]model.Habitacion, error)
	Create(ctx context.Context, h *model.Habitacion) error
}

// HabitacionHandler serves room listing and creation. It also holds the
// hotel store because room creation must verify the owning hotel exists.
type HabitacionHandler struct {
	Habitaciones HabitacionStore
	Hoteles      HotelStore
}

func NewHabitacionHandler(hab HabitacionStore, hot HotelStore) *HabitacionHandler {
	return &HabitacionHandler{Habitaciones: hab, Hoteles: hot}
}

// ListarPorHotel returns the rooms of one hotel, each with its nested room
// type.
func (h *HabitacionHandler) ListarPorHotel(c echo.Context) error {
	hotelKey, err := strconv.ParseInt(c.Param("hotel_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "hotel_id inválido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	habitaciones, err := h.Habitaciones.ListByHotel(ctx, hotelKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]HabitacionOut, 0, len(habitaciones))
	for _, hb := range habitaciones {
		out = append(out, toHabitacionOut(hb))
	}
	return c.JSON(http.StatusOK, out)
}

type habitacionIn struct {
	HabitacionID int64 `json:"HabitacionID"`
	HotelKey     int64 `json:"HotelKey"`
	TipoHabKey   int64 `json:"TipoHabKey"`
	NumeroHab    int   `json:"NumeroHab"`
	Piso         int   `json:"Piso"`
	Capacidad    int   `json:"Capacidad"`
	Vista        bool  `json:"Vista"`
}

// Crear inserts a new room. The referenced hotel must exist; nothing is
// written when it does not.
func (h *HabitacionHandler) Crear(c echo.Context) error {
	var req habitacionIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo inválido"})
	}
	if req.HotelKey == 0 || req.TipoHabKey == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "HotelKey y TipoHabKey son requeridos"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if _, err := h.Hoteles.GetByKey(ctx, req.HotelKey); err != nil {
		if err == repository.ErrHotelNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"detail": "Hotel no encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}

	habitacion := model.Habitacion{
		HabitacionID: req.HabitacionID, HotelKey: req.HotelKey, TipoHabKey: req.TipoHabKey,
		NumeroHab: req.NumeroHab, Piso: req.Piso, Capacidad: req.Capacidad, Vista: req.Vista,
	}
	if err := h.Habitaciones.Create(ctx, &habitacion); err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"detail": fmt.Sprintf("Error al crear la habitación: %v", err)})
	}
	return c.JSON(http.StatusCreated, toHabitacionOut(habitacion))
}
