package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// ErrHotelNotFound indicates that no hotel row matches the given key.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrHotelNombreExists indicates a violation of the unique Nombre index,
// either detected by the pre-insert check or by the constraint itself.
var ErrHotelNombreExists = errors.New("hotel nombre already exists")

// HotelRepo manages persistence for hotels.
type HotelRepo struct{ db *sql.DB }

func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

const hotelCols = `HotelKey, HotelID, Nombre, Cadena, Ciudad, Pais, Estrellas, Direccion`

func scanHotel(row interface{ Scan(...any) error }, h *model.Hotel) error {
	return row.Scan(&h.HotelKey, &h.HotelID, &h.Nombre, &h.Cadena, &h.Ciudad, &h.Pais, &h.Estrellas, &h.Direccion)
}

// ListAll returns every hotel ordered by key. An empty slice and nil error
// means the table is empty.
func (r *HotelRepo) ListAll(ctx context.Context) ([]model.Hotel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+hotelCols+` FROM hotel ORDER BY HotelKey ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Hotel{}
	for rows.Next() {
		var h model.Hotel
		if err := scanHotel(rows, &h); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GetByKey retrieves one hotel by its primary key. Returns ErrHotelNotFound
// when no row matches.
func (r *HotelRepo) GetByKey(ctx context.Context, key int64) (*model.Hotel, error) {
	var h model.Hotel
	err := scanHotel(r.db.QueryRowContext(ctx,
		`SELECT `+hotelCols+` FROM hotel WHERE HotelKey = ?`, key), &h)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ExistsByNombre reports whether a hotel with the given name already exists.
func (r *HotelRepo) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM hotel WHERE Nombre = ? LIMIT 1`, nombre).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a new hotel and re-reads the row to populate HotelKey. A
// duplicate-key violation on Nombre is returned as ErrHotelNombreExists.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO hotel (HotelID, Nombre, Cadena, Ciudad, Pais, Estrellas, Direccion) VALUES (?,?,?,?,?,?,?)`,
		h.HotelID, h.Nombre, h.Cadena, h.Ciudad, h.Pais, h.Estrellas, h.Direccion)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrHotelNombreExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return scanHotel(r.db.QueryRowContext(ctx,
		`SELECT `+hotelCols+` FROM hotel WHERE HotelKey = ?`, id), h)
}
