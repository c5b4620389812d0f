package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Knight2115/API-StayManager/internal/model"
	"github.com/Knight2115/API-StayManager/internal/repository"
)

// FechaStore is the slice of the calendar repository the handlers need.
type FechaStore interface {
	List(ctx context.Context, limit int) ([]model.Fecha, error)
	GetByFecha(ctx context.Context, dia time.Time) (*model.Fecha, error)
	Create(ctx context.Context, f *model.Fecha) error
}

// FechaHandler serves the calendar dimension endpoints.
type FechaHandler struct {
	Fechas FechaStore
}

func NewFechaHandler(s FechaStore) *FechaHandler { return &FechaHandler{Fechas: s} }

// Listar returns at most listCap calendar rows.
func (h *FechaHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	fechas, err := h.Fechas.List(ctx, listCap)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]FechaOut, 0, len(fechas))
	for _, f := range fechas {
		out = append(out, toFechaOut(f))
	}
	return c.JSON(http.StatusOK, out)
}

type fechaIn struct {
	Fecha         string `json:"Fecha"`
	Anio          int    `json:"Año"`
	Trimestre     int    `json:"Trimestre"`
	Mes           int    `json:"Mes"`
	Dia           int    `json:"Dia"`
	DiaSemana     string `json:"DiaSemana"`
	EsFinDeSemana bool   `json:"EsFinDeSemana"`
}

// Crear is get-or-create on the calendar date: when a row for the date
// already exists it is returned unchanged instead of inserting a duplicate.
// A concurrent writer winning the insert race is handled the same way via
// the unique constraint.
func (h *FechaHandler) Crear(c echo.Context) error {
	var req fechaIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo inválido"})
	}
	dia, err := parseDate(req.Fecha)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Fecha inválida, se espera AAAA-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	existente, err := h.Fechas.GetByFecha(ctx, dia)
	if err == nil {
		return c.JSON(http.StatusOK, toFechaOut(*existente))
	}
	if err != repository.ErrFechaNotFound {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}

	fecha := model.Fecha{
		Fecha: dia, Anio: req.Anio, Trimestre: req.Trimestre, Mes: req.Mes,
		Dia: req.Dia, DiaSemana: req.DiaSemana, EsFinDeSemana: req.EsFinDeSemana,
	}
	if err := h.Fechas.Create(ctx, &fecha); err != nil {
		if err == repository.ErrFechaExists {
			// lost the race: return the winner's row
			if ganadora, gerr := h.Fechas.GetByFecha(ctx, dia); gerr == nil {
				return c.JSON(http.StatusOK, toFechaOut(*ganadora))
			}
		}
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"detail": fmt.Sprintf("No se pudo crear la fecha: %v", err)})
	}
	return c.JSON(http.StatusOK, toFechaOut(fecha))
}
