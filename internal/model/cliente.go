package model

// Cliente mirrors the `cliente` table. ClienteID is a secondary sequence
// value populated by the database on insert; ClienteKey is the primary key.
type Cliente struct {
	ClienteKey   int64  // cliente.ClienteKey
	ClienteID    int64  // cliente.ClienteID (server-assigned sequence)
	Nombre       string // cliente.Nombre
	Apellido     string // cliente.Apellido
	Genero       string // cliente.Genero
	Nacionalidad string // cliente.Nacionalidad
	TipoCliente  string // cliente.TipoCliente
}
