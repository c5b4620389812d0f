package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// ErrFechaNotFound indicates that no calendar row matches the given date.
var ErrFechaNotFound = errors.New("fecha not found")

// ErrFechaExists indicates a duplicate calendar date slipped past the
// get-or-create check; the caller should re-read the winner's row.
var ErrFechaExists = errors.New("fecha already exists")

// FechaRepo manages persistence for the calendar dimension.
type FechaRepo struct{ db *sql.DB }

func NewFechaRepo(db *sql.DB) *FechaRepo { return &FechaRepo{db: db} }

const fechaCols = `FechaKey, Fecha, Año, Trimestre, Mes, Dia, DiaSemana, EsFinDeSemana`

func scanFecha(row interface{ Scan(...any) error }, f *model.Fecha) error {
	return row.Scan(&f.FechaKey, &f.Fecha, &f.Anio, &f.Trimestre, &f.Mes, &f.Dia, &f.DiaSemana, &f.EsFinDeSemana)
}

// List returns calendar rows ordered by date, capped at limit rows.
func (r *FechaRepo) List(ctx context.Context, limit int) ([]model.Fecha, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+fechaCols+` FROM fecha ORDER BY Fecha ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Fecha{}
	for rows.Next() {
		var f model.Fecha
		if err := scanFecha(rows, &f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// GetByFecha retrieves the calendar row for a given date. Returns
// ErrFechaNotFound when none exists.
func (r *FechaRepo) GetByFecha(ctx context.Context, dia time.Time) (*model.Fecha, error) {
	var f model.Fecha
	err := scanFecha(r.db.QueryRowContext(ctx,
		`SELECT `+fechaCols+` FROM fecha WHERE Fecha = ?`, dia.Format("2006-01-02")), &f)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFechaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new calendar row and re-reads it to populate FechaKey.
// A duplicate-key violation on the unique date is returned as ErrFechaExists
// so the handler can fall back to the existing row.
func (r *FechaRepo) Create(ctx context.Context, f *model.Fecha) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO fecha (Fecha, Año, Trimestre, Mes, Dia, DiaSemana, EsFinDeSemana) VALUES (?,?,?,?,?,?,?)`,
		f.Fecha.Format("2006-01-02"), f.Anio, f.Trimestre, f.Mes, f.Dia, f.DiaSemana, f.EsFinDeSemana)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrFechaExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return scanFecha(r.db.QueryRowContext(ctx,
		`SELECT `+fechaCols+` FROM fecha WHERE FechaKey = ?`, id), f)
}
