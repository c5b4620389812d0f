package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Knight2115/API-StayManager/internal/model"
	"github.com/Knight2115/API-StayManager/internal/repository"
)

// HotelStore is the slice of the hotel repository the handlers need.
type HotelStore interface {
	ListAll(ctx context.Context) ([]model.Hotel, error)
	GetByKey(ctx context.Context, key int64) (*model.Hotel, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
	Create(ctx context.Context, h *model.Hotel) error
}

// HotelHandler serves the hotel listing and creation endpoints.
type HotelHandler struct {
	Hoteles HotelStore
}

func NewHotelHandler(s HotelStore) *HotelHandler { return &HotelHandler{Hoteles: s} }

// Listar returns every hotel.
func (h *HotelHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	hoteles, err := h.Hoteles.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]HotelOut, 0, len(hoteles))
	for _, ho := range hoteles {
		out = append(out, toHotelOut(ho))
	}
	return c.JSON(http.StatusOK, out)
}

type hotelIn struct {
	HotelID   int64  `json:"HotelID"`
	Nombre    string `json:"Nombre"`
	Cadena    string `json:"Cadena"`
	Ciudad    string `json:"Ciudad"`
	Pais      string `json:"Pais"`
	Estrellas int    `json:"Estrellas"`
	Direccion string `json:"Direccion"`
}

// Crear inserts a new hotel after checking that no hotel with the same name
// exists. The unique index on Nombre backs the check up: a concurrent
// writer losing the race lands on the same conflict response.
func (h *HotelHandler) Crear(c echo.Context) error {
	var req hotelIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo inválido"})
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Nombre == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Nombre es requerido"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	existe, err := h.Hoteles.ExistsByNombre(ctx, req.Nombre)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	if existe {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Ya existe un hotel con ese nombre"})
	}

	hotel := model.Hotel{
		HotelID: req.HotelID, Nombre: req.Nombre, Cadena: req.Cadena,
		Ciudad: req.Ciudad, Pais: req.Pais, Estrellas: req.Estrellas, Direccion: req.Direccion,
	}
	if err := h.Hoteles.Create(ctx, &hotel); err != nil {
		if err == repository.ErrHotelNombreExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Ya existe un hotel con ese nombre"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	return c.JSON(http.StatusCreated, toHotelOut(hotel))
}
