package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// ErrReservaNotFound indicates that no reservation matches the given key.
var ErrReservaNotFound = errors.New("reserva not found")

// ReservaRepo manages persistence for the reservation fact table. Detail
// reads use one explicit JOIN over the hotel, client, room (+room type) and
// calendar dimensions so responses carry fully resolved entities.
type ReservaRepo struct{ db *sql.DB }

func NewReservaRepo(db *sql.DB) *ReservaRepo { return &ReservaRepo{db: db} }

const reservaDetalleQuery = `SELECT
		r.ReservaKey, r.HotelKey, r.ClienteKey, r.HabKey, r.FechaKey, r.EmpKey, r.CanalKey, r.PagoKey,
		r.NochesReservadas, r.CantidadHuespedes, r.IngresoHabitacion, r.IngresoServicios,
		r.DescuentoTotal, r.ImpuestoTotal, r.LeadTimeReserva, r.IngresoTotal,
		ho.HotelKey, ho.HotelID, ho.Nombre, ho.Cadena, ho.Ciudad, ho.Pais, ho.Estrellas, ho.Direccion,
		c.ClienteKey, c.ClienteID, c.Nombre, c.Apellido, c.Genero, c.Nacionalidad, c.TipoCliente,
		ha.HabitacionKey, ha.HabitacionID, ha.HotelKey, ha.TipoHabKey, ha.NumeroHab, ha.Piso, ha.Capacidad, ha.Vista,
		t.TipoHabKey, t.TipoHabID, t.Descripcion, t.Categoria, t.CapacidadMax, t.TarifaEstandar,
		f.FechaKey, f.Fecha, f.Año, f.Trimestre, f.Mes, f.Dia, f.DiaSemana, f.EsFinDeSemana
	FROM reservas r
	JOIN hotel ho      ON ho.HotelKey = r.HotelKey
	JOIN cliente c     ON c.ClienteKey = r.ClienteKey
	JOIN habitacion ha ON ha.HabitacionKey = r.HabKey
	JOIN tipoHab t     ON t.TipoHabKey = ha.TipoHabKey
	JOIN fecha f       ON f.FechaKey = r.FechaKey`

func scanReservaDetalle(row interface{ Scan(...any) error }, d *model.ReservaDetalle) error {
	return row.Scan(
		&d.ReservaKey, &d.Reserva.HotelKey, &d.Reserva.ClienteKey, &d.HabKey, &d.Reserva.FechaKey,
		&d.EmpKey, &d.CanalKey, &d.PagoKey,
		&d.NochesReservadas, &d.CantidadHuespedes, &d.IngresoHabitacion, &d.IngresoServicios,
		&d.DescuentoTotal, &d.ImpuestoTotal, &d.LeadTimeReserva, &d.IngresoTotal,
		&d.Hotel.HotelKey, &d.Hotel.HotelID, &d.Hotel.Nombre, &d.Hotel.Cadena,
		&d.Hotel.Ciudad, &d.Hotel.Pais, &d.Hotel.Estrellas, &d.Hotel.Direccion,
		&d.Cliente.ClienteKey, &d.Cliente.ClienteID, &d.Cliente.Nombre, &d.Cliente.Apellido,
		&d.Cliente.Genero, &d.Cliente.Nacionalidad, &d.Cliente.TipoCliente,
		&d.Habitacion.HabitacionKey, &d.Habitacion.HabitacionID, &d.Habitacion.HotelKey,
		&d.Habitacion.TipoHabKey, &d.Habitacion.NumeroHab, &d.Habitacion.Piso,
		&d.Habitacion.Capacidad, &d.Habitacion.Vista,
		&d.Habitacion.TipoHab.TipoHabKey, &d.Habitacion.TipoHab.TipoHabID,
		&d.Habitacion.TipoHab.Descripcion, &d.Habitacion.TipoHab.Categoria,
		&d.Habitacion.TipoHab.CapacidadMax, &d.Habitacion.TipoHab.TarifaEstandar,
		&d.Fecha.FechaKey, &d.Fecha.Fecha, &d.Fecha.Anio, &d.Fecha.Trimestre,
		&d.Fecha.Mes, &d.Fecha.Dia, &d.Fecha.DiaSemana, &d.Fecha.EsFinDeSemana,
	)
}

// List returns reservations with their dimensions resolved, ordered by key
// and capped at limit rows.
func (r *ReservaRepo) List(ctx context.Context, limit int) ([]model.ReservaDetalle, error) {
	rows, err := r.db.QueryContext(ctx, reservaDetalleQuery+` ORDER BY r.ReservaKey ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.ReservaDetalle{}
	for rows.Next() {
		var d model.ReservaDetalle
		if err := scanReservaDetalle(rows, &d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByKey retrieves one reservation with its dimensions resolved, the same
// shape List produces. Returns ErrReservaNotFound when no row matches.
func (r *ReservaRepo) GetByKey(ctx context.Context, key int64) (*model.ReservaDetalle, error) {
	var d model.ReservaDetalle
	err := scanReservaDetalle(r.db.QueryRowContext(ctx,
		reservaDetalleQuery+` WHERE r.ReservaKey = ?`, key), &d)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts one reservation row atomically and assigns the generated
// ReservaKey back to the struct. Foreign keys are assumed valid at insert
// time; the database constraints are the backstop.
func (r *ReservaRepo) Create(ctx context.Context, rv *model.Reserva) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reservas (HotelKey, ClienteKey, HabKey, FechaKey, EmpKey, CanalKey, PagoKey,
			NochesReservadas, CantidadHuespedes, IngresoHabitacion, IngresoServicios,
			DescuentoTotal, ImpuestoTotal, LeadTimeReserva, IngresoTotal)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rv.HotelKey, rv.ClienteKey, rv.HabKey, rv.FechaKey, rv.EmpKey, rv.CanalKey, rv.PagoKey,
		rv.NochesReservadas, rv.CantidadHuespedes, rv.IngresoHabitacion, rv.IngresoServicios,
		rv.DescuentoTotal, rv.ImpuestoTotal, rv.LeadTimeReserva, rv.IngresoTotal)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ReservaKey = id
	return nil
}
