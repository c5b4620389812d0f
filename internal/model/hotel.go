// Package model defines the structs that mirror the star-schema tables of the
// reservation database. Each field corresponds to a column; JSON shaping is
// left to the handler layer, which defines its own response types.
package model

// Hotel mirrors the `hotel` table. Nombre carries a unique index so two
// hotels can never share a name.
//
// Fields:
//  HotelKey  – primary key identifier of the hotel.
//  HotelID   – external identifier supplied by the source system.
//  Nombre    – unique hotel name.
//  Cadena    – hotel chain the property belongs to.
//  Ciudad    – city.
//  Pais      – country.
//  Estrellas – star rating.
//  Direccion – street address.
type Hotel struct {
	HotelKey  int64  // hotel.HotelKey
	HotelID   int64  // hotel.HotelID
	Nombre    string // hotel.Nombre (unique)
	Cadena    string // hotel.Cadena
	Ciudad    string // hotel.Ciudad
	Pais      string // hotel.Pais
	Estrellas int    // hotel.Estrellas
	Direccion string // hotel.Direccion
}
