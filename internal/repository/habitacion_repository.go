package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// ErrHabitacionNotFound indicates that no room row matches the given key.
var ErrHabitacionNotFound = errors.New("habitacion not found")

// HabitacionRepo manages persistence for rooms. Reads resolve the room type
// with an explicit JOIN so callers never traverse a bare TipoHabKey.
type HabitacionRepo struct{ db *sql.DB }

func NewHabitacionRepo(db *sql.DB) *HabitacionRepo { return &HabitacionRepo{db: db} }

const habitacionJoinCols = `h.HabitacionKey, h.HabitacionID, h.HotelKey, h.TipoHabKey,
		h.NumeroHab, h.Piso, h.Capacidad, h.Vista,
		t.TipoHabKey, t.TipoHabID, t.Descripcion, t.Categoria, t.CapacidadMax, t.TarifaEstandar`

func scanHabitacion(row interface{ Scan(...any) error }, h *model.Habitacion) error {
	return row.Scan(
		&h.HabitacionKey, &h.HabitacionID, &h.HotelKey, &h.TipoHabKey,
		&h.NumeroHab, &h.Piso, &h.Capacidad, &h.Vista,
		&h.TipoHab.TipoHabKey, &h.TipoHab.TipoHabID, &h.TipoHab.Descripcion,
		&h.TipoHab.Categoria, &h.TipoHab.CapacidadMax, &h.TipoHab.TarifaEstandar,
	)
}

// ListByHotel returns every room of the given hotel with its room type
// resolved, ordered by room number.
func (r *HabitacionRepo) ListByHotel(ctx context.Context, hotelKey int64) ([]model.Habitacion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+habitacionJoinCols+`
		 FROM habitacion h
		 JOIN tipoHab t ON t.TipoHabKey = h.TipoHabKey
		 WHERE h.HotelKey = ?
		 ORDER BY h.NumeroHab ASC`, hotelKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Habitacion{}
	for rows.Next() {
		var h model.Habitacion
		if err := scanHabitacion(rows, &h); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GetByKey retrieves one room with its room type resolved. Returns
// ErrHabitacionNotFound when no row matches.
func (r *HabitacionRepo) GetByKey(ctx context.Context, key int64) (*model.Habitacion, error) {
	var h model.Habitacion
	err := scanHabitacion(r.db.QueryRowContext(ctx,
		`SELECT `+habitacionJoinCols+`
		 FROM habitacion h
		 JOIN tipoHab t ON t.TipoHabKey = h.TipoHabKey
		 WHERE h.HabitacionKey = ?`, key), &h)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHabitacionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserts a new room and re-reads it through GetByKey so the caller
// gets the generated key and the resolved room type in one shape. Hotel
// existence is checked by the handler before this call.
func (r *HabitacionRepo) Create(ctx context.Context, h *model.Habitacion) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO habitacion (HabitacionID, HotelKey, TipoHabKey, NumeroHab, Piso, Capacidad, Vista) VALUES (?,?,?,?,?,?,?)`,
		h.HabitacionID, h.HotelKey, h.TipoHabKey, h.NumeroHab, h.Piso, h.Capacidad, h.Vista)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.GetByKey(ctx, id)
	if err != nil {
		return err
	}
	*h = *created
	return nil
}
