package model

import "time"

// Empleado mirrors the `empleado` table. Each employee is attached to one
// hotel via HotelKey.
type Empleado struct {
	EmpleadoKey       int64     // empleado.EmpleadoKey
	Nombre            string    // empleado.Nombre
	Apellido          string    // empleado.Apellido
	Puesto            string    // empleado.Puesto
	Departamento      string    // empleado.Departamento
	FechaContratacion time.Time // empleado.FechaContratacion (DATE)
	HotelKey          int64     // empleado.HotelKey (FK hotel)
}

// Credencial mirrors the `credencial` table. Usuario is unique; the plain
// password is never stored, only its bcrypt hash. Rol defaults to
// "empleado" and Estado to active.
type Credencial struct {
	CredencialKey int64  // credencial.CredencialKey
	EmpKey        int64  // credencial.EmpKey (FK empleado)
	Usuario       string // credencial.Usuario (unique)
	PasswordHash  string // credencial.PasswordHash (bcrypt)
	Rol           string // credencial.Rol
	Estado        bool   // credencial.Estado (false = cuenta inactiva)
}
