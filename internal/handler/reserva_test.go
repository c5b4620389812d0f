package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Knight2115/API-StayManager/internal/handler"
	"github.com/Knight2115/API-StayManager/internal/model"
	"github.com/Knight2115/API-StayManager/internal/repository"
)

type fakeReservas struct {
	detalles []model.ReservaDetalle
	created  *model.Reserva
}

func (f *fakeReservas) List(ctx context.Context, limit int) ([]model.ReservaDetalle, error) {
	if len(f.detalles) > limit {
		return f.detalles[:limit], nil
	}
	return f.detalles, nil
}

func (f *fakeReservas) GetByKey(ctx context.Context, key int64) (*model.ReservaDetalle, error) {
	for _, d := range f.detalles {
		if d.ReservaKey == key {
			return &d, nil
		}
	}
	return nil, repository.ErrReservaNotFound
}

// Create stores the row and synthesizes the joined detail the way the real
// repository's re-read would.
func (f *fakeReservas) Create(ctx context.Context, r *model.Reserva) error {
	r.ReservaKey = 7
	f.created = r
	f.detalles = append(f.detalles, model.ReservaDetalle{
		Reserva: *r,
		Hotel:   model.Hotel{HotelKey: r.HotelKey, Nombre: "Plaza", Ciudad: "Lima"},
		Cliente: model.Cliente{ClienteKey: r.ClienteKey, Nombre: "Ana", Apellido: "Ruiz"},
		Habitacion: model.Habitacion{HabitacionKey: r.HabKey, NumeroHab: 301, Capacidad: 2,
			TipoHab: model.TipoHab{TipoHabKey: 5, Categoria: "Doble", TarifaEstandar: decimal.RequireFromString("120.00")}},
		Fecha: model.Fecha{FechaKey: r.FechaKey, Fecha: dia("2025-07-19"), Anio: 2025},
	})
	return nil
}

const reservaBody = `{
	"HotelKey":1,"ClienteKey":2,"HabKey":3,"FechaKey":4,"EmpKey":5,"CanalKey":6,"PagoKey":7,
	"NochesReservadas":2,"CantidadHuespedes":3,
	"IngresoHabitacion":"240.00","IngresoServicios":"35.50",
	"DescuentoTotal":"0.00","ImpuestoTotal":"49.59",
	"LeadTimeReserva":12,"IngresoTotal":"325.09"
}`

func TestCrearReserva_DevuelveEntidadesAnidadas(t *testing.T) {
	reservas := &fakeReservas{}
	h := handler.NewReservaHandler(reservas)

	c, rec := newJSONContext(http.MethodPost, "/nueva-reserva", reservaBody)
	if err := h.Crear(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	var out struct {
		ReservaKey int64 `json:"ReservaKey"`
		Hotel      struct {
			Nombre string `json:"Nombre"`
		} `json:"Hotel"`
		Cliente struct {
			Nombre string `json:"Nombre"`
		} `json:"Cliente"`
		Habitacion struct {
			NumeroHab int `json:"NumeroHab"`
			TipoHab   struct {
				Categoria string `json:"Categoria"`
			} `json:"TipoHab"`
		} `json:"Habitacion"`
		Fecha struct {
			Fecha string `json:"Fecha"`
		} `json:"Fecha"`
		IngresoTotal string `json:"IngresoTotal"`
	}
	decodeBody(t, rec, &out)
	if out.ReservaKey != 7 {
		t.Fatalf("ReservaKey = %d, want 7", out.ReservaKey)
	}
	if out.Hotel.Nombre != "Plaza" || out.Cliente.Nombre != "Ana" ||
		out.Habitacion.NumeroHab != 301 || out.Habitacion.TipoHab.Categoria != "Doble" ||
		out.Fecha.Fecha != "2025-07-19" {
		t.Fatalf("nested entities not resolved: %s", rec.Body.String())
	}
	if out.IngresoTotal != "325.09" {
		t.Fatalf("IngresoTotal = %q, want 325.09", out.IngresoTotal)
	}
}

// Creating then listing must surface the same fully resolved row.
func TestCrearYListarReserva_MismaForma(t *testing.T) {
	reservas := &fakeReservas{}
	h := handler.NewReservaHandler(reservas)

	c, _ := newJSONContext(http.MethodPost, "/nueva-reserva", reservaBody)
	if err := h.Crear(c); err != nil {
		t.Fatalf("err: %v", err)
	}

	c2, rec2 := newJSONContext(http.MethodGet, "/reservas", "")
	if err := h.Listar(c2); err != nil {
		t.Fatalf("err: %v", err)
	}
	var out []struct {
		ReservaKey int64 `json:"ReservaKey"`
		Hotel      struct {
			Nombre string `json:"Nombre"`
		} `json:"Hotel"`
	}
	decodeBody(t, rec2, &out)
	if len(out) != 1 || out[0].ReservaKey != 7 || out[0].Hotel.Nombre != "Plaza" {
		t.Fatalf("created reservation missing from listing: %+v", out)
	}
}

func TestCrearReserva_ClavesFaltantes(t *testing.T) {
	h := handler.NewReservaHandler(&fakeReservas{})

	c, rec := newJSONContext(http.MethodPost, "/nueva-reserva", `{"HotelKey":1,"NochesReservadas":2}`)
	if err := h.Crear(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListarReservas_Cap(t *testing.T) {
	reservas := &fakeReservas{}
	for i := 0; i < 12; i++ {
		reservas.detalles = append(reservas.detalles, model.ReservaDetalle{
			Reserva: model.Reserva{ReservaKey: int64(i + 1)},
			Fecha:   model.Fecha{Fecha: dia("2025-07-19")},
		})
	}
	h := handler.NewReservaHandler(reservas)

	c, rec := newJSONContext(http.MethodGet, "/reservas", "")
	if err := h.Listar(c); err != nil {
		t.Fatalf("err: %v", err)
	}
	var out []struct {
		ReservaKey int64 `json:"ReservaKey"`
	}
	decodeBody(t, rec, &out)
	if len(out) != 10 {
		t.Fatalf("listing returned %d rows, cap is 10", len(out))
	}
}
