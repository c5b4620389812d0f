package model

import "github.com/shopspring/decimal"

// TipoHab mirrors the `tipoHab` catalogue table. Rows are seeded externally
// and never written by this service. TarifaEstandar is a DECIMAL(10,2).
type TipoHab struct {
	TipoHabKey     int64           // tipoHab.TipoHabKey
	TipoHabID      int64           // tipoHab.TipoHabID
	Descripcion    string          // tipoHab.Descripcion
	Categoria      string          // tipoHab.Categoria
	CapacidadMax   int             // tipoHab.CapacidadMax
	TarifaEstandar decimal.Decimal // tipoHab.TarifaEstandar
}

// Habitacion mirrors the `habitacion` table. Every room belongs to exactly
// one hotel and one room type. TipoHab is populated only by queries that
// join the catalogue table; plain reads leave it zero-valued.
type Habitacion struct {
	HabitacionKey int64   // habitacion.HabitacionKey
	HabitacionID  int64   // habitacion.HabitacionID
	HotelKey      int64   // habitacion.HotelKey (FK hotel)
	TipoHabKey    int64   // habitacion.TipoHabKey (FK tipoHab)
	NumeroHab     int     // habitacion.NumeroHab
	Piso          int     // habitacion.Piso
	Capacidad     int     // habitacion.Capacidad
	Vista         bool    // habitacion.Vista
	TipoHab       TipoHab // joined tipoHab row
}
