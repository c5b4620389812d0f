package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Knight2115/API-StayManager/internal/handler"
	"github.com/Knight2115/API-StayManager/internal/model"
)

type fakeHabitaciones struct {
	porHotel map[int64][]model.Habitacion
	created  *model.Habitacion
}

func (f *fakeHabitaciones) ListByHotel(ctx context.Context, hotelKey int64) ([]model.Habitacion, error) {
	return f.porHotel[hotelKey], nil
}

func (f *fakeHabitaciones) Create(ctx context.Context, h *model.Habitacion) error {
	h.HabitacionKey = 31
	h.TipoHab = model.TipoHab{TipoHabKey: h.TipoHabKey, Categoria: "Doble",
		TarifaEstandar: decimal.RequireFromString("120.00")}
	f.created = h
	return nil
}

func TestListarHabitacionesPorHotel(t *testing.T) {
	habs := &fakeHabitaciones{porHotel: map[int64][]model.Habitacion{
		3: {
			{HabitacionKey: 1, NumeroHab: 101, Capacidad: 2,
				TipoHab: model.TipoHab{TipoHabKey: 5, Categoria: "Doble", TarifaEstandar: decimal.RequireFromString("120.00")}},
			{HabitacionKey: 2, NumeroHab: 102, Capacidad: 4,
				TipoHab: model.TipoHab{TipoHabKey: 6, Categoria: "Suite", TarifaEstandar: decimal.RequireFromString("250.50")}},
		},
	}}
	h := handler.NewHabitacionHandler(habs, &fakeHoteles{hoteles: []model.Hotel{{HotelKey: 3}}})

	c, rec := newJSONContext(http.MethodGet, "/habitaciones/3", "")
	c.SetParamNames("hotel_id")
	c.SetParamValues("3")
	if err := h.ListarPorHotel(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out []struct {
		HabitacionKey int64 `json:"HabitacionKey"`
		NumeroHab     int   `json:"NumeroHab"`
		TipoHab       struct {
			Categoria      string `json:"Categoria"`
			TarifaEstandar string `json:"TarifaEstandar"`
		} `json:"TipoHab"`
	}
	decodeBody(t, rec, &out)
	if len(out) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(out))
	}
	if out[1].TipoHab.Categoria != "Suite" || out[1].TipoHab.TarifaEstandar != "250.50" {
		t.Fatalf("room type not resolved: %+v", out[1])
	}
}

func TestCrearHabitacion_OK(t *testing.T) {
	habs := &fakeHabitaciones{}
	h := handler.NewHabitacionHandler(habs, &fakeHoteles{hoteles: []model.Hotel{{HotelKey: 3, Nombre: "Plaza"}}})

	c, rec := newJSONContext(http.MethodPost, "/nueva-habitacion",
		`{"HabitacionID":12,"HotelKey":3,"TipoHabKey":5,"NumeroHab":301,"Piso":3,"Capacidad":2,"Vista":true}`)
	if err := h.Crear(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var out struct {
		HabitacionKey int64 `json:"HabitacionKey"`
		NumeroHab     int   `json:"NumeroHab"`
	}
	decodeBody(t, rec, &out)
	if out.HabitacionKey != 31 || out.NumeroHab != 301 {
		t.Fatalf("unexpected room: %+v", out)
	}
}

func TestCrearHabitacion_HotelInexistente(t *testing.T) {
	habs := &fakeHabitaciones{}
	h := handler.NewHabitacionHandler(habs, &fakeHoteles{})

	c, rec := newJSONContext(http.MethodPost, "/nueva-habitacion",
		`{"HotelKey":99,"TipoHabKey":5,"NumeroHab":301}`)
	if err := h.Crear(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var out struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, rec, &out)
	if out.Detail != "Hotel no encontrado" {
		t.Fatalf("unexpected detail: %q", out.Detail)
	}
	if habs.created != nil {
		t.Fatalf("room created despite missing hotel")
	}
}
