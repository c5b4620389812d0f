// Package handler exposes the HTTP handlers of the reservation API. This
// file defines the canonical response shape of every entity, used by both
// listing and creation endpoints so a created row serializes exactly like a
// listed one. Field names follow the Spanish wire contract of the API.
package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

type HotelOut struct {
	HotelKey  int64  `json:"HotelKey"`
	HotelID   int64  `json:"HotelID"`
	Nombre    string `json:"Nombre"`
	Cadena    string `json:"Cadena"`
	Ciudad    string `json:"Ciudad"`
	Pais      string `json:"Pais"`
	Estrellas int    `json:"Estrellas"`
	Direccion string `json:"Direccion"`
}

type ClienteOut struct {
	ClienteKey   int64  `json:"ClienteKey"`
	Nombre       string `json:"Nombre"`
	Apellido     string `json:"Apellido"`
	Genero       string `json:"Genero"`
	Nacionalidad string `json:"Nacionalidad"`
	TipoCliente  string `json:"TipoCliente"`
}

// Monetary fields serialize as fixed-point strings with two fractional
// digits ("120.00"), matching the DECIMAL(10,2) columns.
type TipoHabOut struct {
	TipoHabKey     int64  `json:"TipoHabKey"`
	Categoria      string `json:"Categoria"`
	TarifaEstandar string `json:"TarifaEstandar"`
}

type HabitacionOut struct {
	HabitacionKey int64      `json:"HabitacionKey"`
	NumeroHab     int        `json:"NumeroHab"`
	Capacidad     int        `json:"Capacidad"`
	TipoHab       TipoHabOut `json:"TipoHab"`
}

type FechaOut struct {
	FechaKey      int64  `json:"FechaKey"`
	Fecha         string `json:"Fecha"`
	Anio          int    `json:"Año"`
	Trimestre     int    `json:"Trimestre"`
	Mes           int    `json:"Mes"`
	Dia           int    `json:"Dia"`
	DiaSemana     string `json:"DiaSemana"`
	EsFinDeSemana bool   `json:"EsFinDeSemana"`
}

type CanalReservaOut struct {
	CanalKey    int64  `json:"CanalKey"`
	NombreCanal string `json:"NombreCanal"`
}

type PagoOut struct {
	PagoKey int64  `json:"PagoKey"`
	Metodo  string `json:"Metodo"`
}

type EmpleadoOut struct {
	EmpleadoKey       int64  `json:"EmpleadoKey"`
	Nombre            string `json:"Nombre"`
	Apellido          string `json:"Apellido"`
	Puesto            string `json:"Puesto"`
	Departamento      string `json:"Departamento"`
	FechaContratacion string `json:"FechaContratacion"`
	HotelKey          int64  `json:"HotelKey"`
}

// CredencialOut never carries the password hash.
type CredencialOut struct {
	CredencialKey int64  `json:"CredencialKey"`
	EmpKey        int64  `json:"EmpKey"`
	Usuario       string `json:"Usuario"`
	Rol           string `json:"Rol"`
	Estado        bool   `json:"Estado"`
}

type ReservaOut struct {
	ReservaKey        int64           `json:"ReservaKey"`
	Hotel             HotelOut        `json:"Hotel"`
	Cliente           ClienteOut      `json:"Cliente"`
	Habitacion        HabitacionOut   `json:"Habitacion"`
	Fecha             FechaOut        `json:"Fecha"`
	EmpKey            int64           `json:"EmpKey"`
	CanalKey          int64           `json:"CanalKey"`
	PagoKey           int64           `json:"PagoKey"`
	NochesReservadas  int    `json:"NochesReservadas"`
	CantidadHuespedes int    `json:"CantidadHuespedes"`
	IngresoHabitacion string `json:"IngresoHabitacion"`
	IngresoServicios  string `json:"IngresoServicios"`
	DescuentoTotal    string `json:"DescuentoTotal"`
	ImpuestoTotal     string `json:"ImpuestoTotal"`
	LeadTimeReserva   int    `json:"LeadTimeReserva"`
	IngresoTotal      string `json:"IngresoTotal"`
}

// ---- model -> DTO mappers ----

func toHotelOut(h model.Hotel) HotelOut {
	return HotelOut{
		HotelKey: h.HotelKey, HotelID: h.HotelID, Nombre: h.Nombre, Cadena: h.Cadena,
		Ciudad: h.Ciudad, Pais: h.Pais, Estrellas: h.Estrellas, Direccion: h.Direccion,
	}
}

func toClienteOut(c model.Cliente) ClienteOut {
	return ClienteOut{
		ClienteKey: c.ClienteKey, Nombre: c.Nombre, Apellido: c.Apellido,
		Genero: c.Genero, Nacionalidad: c.Nacionalidad, TipoCliente: c.TipoCliente,
	}
}

func toTipoHabOut(t model.TipoHab) TipoHabOut {
	return TipoHabOut{TipoHabKey: t.TipoHabKey, Categoria: t.Categoria, TarifaEstandar: fixed2(t.TarifaEstandar)}
}

func toHabitacionOut(h model.Habitacion) HabitacionOut {
	return HabitacionOut{
		HabitacionKey: h.HabitacionKey, NumeroHab: h.NumeroHab, Capacidad: h.Capacidad,
		TipoHab: toTipoHabOut(h.TipoHab),
	}
}

func toFechaOut(f model.Fecha) FechaOut {
	return FechaOut{
		FechaKey: f.FechaKey, Fecha: f.Fecha.Format(dateLayout), Anio: f.Anio,
		Trimestre: f.Trimestre, Mes: f.Mes, Dia: f.Dia,
		DiaSemana: f.DiaSemana, EsFinDeSemana: f.EsFinDeSemana,
	}
}

func toEmpleadoOut(e model.Empleado) EmpleadoOut {
	return EmpleadoOut{
		EmpleadoKey: e.EmpleadoKey, Nombre: e.Nombre, Apellido: e.Apellido,
		Puesto: e.Puesto, Departamento: e.Departamento,
		FechaContratacion: e.FechaContratacion.Format(dateLayout), HotelKey: e.HotelKey,
	}
}

func toCredencialOut(c model.Credencial) CredencialOut {
	return CredencialOut{
		CredencialKey: c.CredencialKey, EmpKey: c.EmpKey, Usuario: c.Usuario,
		Rol: c.Rol, Estado: c.Estado,
	}
}

func toReservaOut(d model.ReservaDetalle) ReservaOut {
	return ReservaOut{
		ReservaKey:        d.ReservaKey,
		Hotel:             toHotelOut(d.Hotel),
		Cliente:           toClienteOut(d.Cliente),
		Habitacion:        toHabitacionOut(d.Habitacion),
		Fecha:             toFechaOut(d.Fecha),
		EmpKey:            d.EmpKey,
		CanalKey:          d.CanalKey,
		PagoKey:           d.PagoKey,
		NochesReservadas:  d.NochesReservadas,
		CantidadHuespedes: d.CantidadHuespedes,
		IngresoHabitacion: fixed2(d.IngresoHabitacion),
		IngresoServicios:  fixed2(d.IngresoServicios),
		DescuentoTotal:    fixed2(d.DescuentoTotal),
		ImpuestoTotal:     fixed2(d.ImpuestoTotal),
		LeadTimeReserva:   d.LeadTimeReserva,
		IngresoTotal:      fixed2(d.IngresoTotal),
	}
}

// fixed2 renders a money value with exactly two fractional digits.
func fixed2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// parseDate parses a wire-format calendar date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
