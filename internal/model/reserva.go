package model

import "github.com/shopspring/decimal"

// Reserva mirrors the `reservas` fact table. A reservation is written as a
// single row referencing every dimension; rows are immutable once created.
// All monetary columns are DECIMAL(10,2).
type Reserva struct {
	ReservaKey        int64           // reservas.ReservaKey
	HotelKey          int64           // reservas.HotelKey (FK hotel)
	ClienteKey        int64           // reservas.ClienteKey (FK cliente)
	HabKey            int64           // reservas.HabKey (FK habitacion)
	FechaKey          int64           // reservas.FechaKey (FK fecha)
	EmpKey            int64           // reservas.EmpKey (FK empleado)
	CanalKey          int64           // reservas.CanalKey (FK canalReserva)
	PagoKey           int64           // reservas.PagoKey (FK pago)
	NochesReservadas  int             // reservas.NochesReservadas
	CantidadHuespedes int             // reservas.CantidadHuespedes
	IngresoHabitacion decimal.Decimal // reservas.IngresoHabitacion
	IngresoServicios  decimal.Decimal // reservas.IngresoServicios
	DescuentoTotal    decimal.Decimal // reservas.DescuentoTotal
	ImpuestoTotal     decimal.Decimal // reservas.ImpuestoTotal
	LeadTimeReserva   int             // reservas.LeadTimeReserva
	IngresoTotal      decimal.Decimal // reservas.IngresoTotal
}

// ReservaDetalle is a reservation row together with its joined dimension
// rows. Detail queries fill it with one explicit multi-table JOIN so the
// API can return fully resolved entities instead of bare foreign keys.
type ReservaDetalle struct {
	Reserva
	Hotel      Hotel      // joined hotel row
	Cliente    Cliente    // joined cliente row
	Habitacion Habitacion // joined habitacion row, TipoHab resolved
	Fecha      Fecha      // joined fecha row
}
