package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// ErrEmpleadoNotFound indicates that no employee row matches the given key.
var ErrEmpleadoNotFound = errors.New("empleado not found")

// EmpleadoRepo manages persistence for employees.
type EmpleadoRepo struct{ db *sql.DB }

func NewEmpleadoRepo(db *sql.DB) *EmpleadoRepo { return &EmpleadoRepo{db: db} }

const empleadoCols = `EmpleadoKey, Nombre, Apellido, Puesto, Departamento, FechaContratacion, HotelKey`

func scanEmpleado(row interface{ Scan(...any) error }, e *model.Empleado) error {
	return row.Scan(&e.EmpleadoKey, &e.Nombre, &e.Apellido, &e.Puesto, &e.Departamento, &e.FechaContratacion, &e.HotelKey)
}

// ListAll returns every employee ordered by key.
func (r *EmpleadoRepo) ListAll(ctx context.Context) ([]model.Empleado, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+empleadoCols+` FROM empleado ORDER BY EmpleadoKey ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Empleado{}
	for rows.Next() {
		var e model.Empleado
		if err := scanEmpleado(rows, &e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByKey retrieves one employee by primary key. Returns
// ErrEmpleadoNotFound when no row matches.
func (r *EmpleadoRepo) GetByKey(ctx context.Context, key int64) (*model.Empleado, error) {
	var e model.Empleado
	err := scanEmpleado(r.db.QueryRowContext(ctx,
		`SELECT `+empleadoCols+` FROM empleado WHERE EmpleadoKey = ?`, key), &e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpleadoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
