package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// listCap is the hard row cap applied by the capped listing endpoints
// (clients, dates, room types, reservations). It is not a page size.
const listCap = 10

// ClienteStore is the slice of the client repository the handlers need.
type ClienteStore interface {
	List(ctx context.Context, limit int) ([]model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) error
}

// ClienteHandler serves client listing and creation.
type ClienteHandler struct {
	Clientes ClienteStore
}

func NewClienteHandler(s ClienteStore) *ClienteHandler { return &ClienteHandler{Clientes: s} }

// Listar returns at most listCap clients.
func (h *ClienteHandler) Listar(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	clientes, err := h.Clientes.List(ctx, listCap)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	out := make([]ClienteOut, 0, len(clientes))
	for _, cl := range clientes {
		out = append(out, toClienteOut(cl))
	}
	return c.JSON(http.StatusOK, out)
}

type clienteIn struct {
	Nombre       string `json:"Nombre"`
	Apellido     string `json:"Apellido"`
	Genero       string `json:"Genero"`
	Nacionalidad string `json:"Nacionalidad"`
	TipoCliente  string `json:"TipoCliente"`
}

// Crear inserts a new client and returns it with its generated keys.
func (h *ClienteHandler) Crear(c echo.Context) error {
	var req clienteIn
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo inválido"})
	}
	if req.Nombre == "" || req.Apellido == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Nombre y Apellido son requeridos"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cliente := model.Cliente{
		Nombre: req.Nombre, Apellido: req.Apellido, Genero: req.Genero,
		Nacionalidad: req.Nacionalidad, TipoCliente: req.TipoCliente,
	}
	if err := h.Clientes.Create(ctx, &cliente); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"detail": err.Error()})
	}
	return c.JSON(http.StatusOK, toClienteOut(cliente))
}
