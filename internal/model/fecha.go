package model

import "time"

// Fecha mirrors the `fecha` calendar dimension table. The calendar date
// itself is the business key and is unique; creation is get-or-create.
// NOTE: Fecha holds only the date part, the driver parses DATE columns into
// time.Time at midnight UTC.
type Fecha struct {
	FechaKey      int64     // fecha.FechaKey
	Fecha         time.Time // fecha.Fecha (DATE, unique)
	Anio          int       // fecha.Año
	Trimestre     int       // fecha.Trimestre
	Mes           int       // fecha.Mes
	Dia           int       // fecha.Dia
	DiaSemana     string    // fecha.DiaSemana
	EsFinDeSemana bool      // fecha.EsFinDeSemana
}
