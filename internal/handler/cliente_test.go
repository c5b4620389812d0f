package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Knight2115/API-StayManager/internal/handler"
	"github.com/Knight2115/API-StayManager/internal/model"
)

type fakeClientes struct {
	clientes []model.Cliente
	created  *model.Cliente
}

func (f *fakeClientes) List(ctx context.Context, limit int) ([]model.Cliente, error) {
	if len(f.clientes) > limit {
		return f.clientes[:limit], nil
	}
	return f.clientes, nil
}

func (f *fakeClientes) Create(ctx context.Context, c *model.Cliente) error {
	c.ClienteKey = int64(len(f.clientes) + 1)
	c.ClienteID = c.ClienteKey + 1000
	f.clientes = append(f.clientes, *c)
	f.created = c
	return nil
}

func TestCrearCliente_OK(t *testing.T) {
	clientes := &fakeClientes{}
	h := handler.NewClienteHandler(clientes)

	c, rec := newJSONContext(http.MethodPost, "/nuevo-cliente",
		`{"Nombre":"Ana","Apellido":"Ruiz","Genero":"F","Nacionalidad":"PE","TipoCliente":"regular"}`)
	if err := h.Crear(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var out struct {
		ClienteKey int64  `json:"ClienteKey"`
		Nombre     string `json:"Nombre"`
	}
	decodeBody(t, rec, &out)
	if out.ClienteKey == 0 || out.Nombre != "Ana" {
		t.Fatalf("unexpected cliente: %+v", out)
	}
}

func TestCrearCliente_SinApellido(t *testing.T) {
	h := handler.NewClienteHandler(&fakeClientes{})

	c, rec := newJSONContext(http.MethodPost, "/nuevo-cliente", `{"Nombre":"Ana"}`)
	if err := h.Crear(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListarClientes_Cap(t *testing.T) {
	clientes := &fakeClientes{}
	for i := 0; i < 13; i++ {
		clientes.clientes = append(clientes.clientes, model.Cliente{ClienteKey: int64(i + 1), Nombre: "Cliente"})
	}
	h := handler.NewClienteHandler(clientes)

	c, rec := newJSONContext(http.MethodGet, "/clientes", "")
	if err := h.Listar(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	var out []struct {
		ClienteKey int64 `json:"ClienteKey"`
	}
	decodeBody(t, rec, &out)
	if len(out) != 10 {
		t.Fatalf("listing returned %d rows, cap is 10", len(out))
	}
}
