package repository

import (
	"context"
	"database/sql"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// CanalReservaRepo reads the booking-channel catalogue. Read-only for this
// service.
type CanalReservaRepo struct{ db *sql.DB }

func NewCanalReservaRepo(db *sql.DB) *CanalReservaRepo { return &CanalReservaRepo{db: db} }

// ListAll returns every booking channel ordered by key.
func (r *CanalReservaRepo) ListAll(ctx context.Context) ([]model.CanalReserva, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT CanalKey, CanalID, NombreCanal, Descripcion FROM canalReserva ORDER BY CanalKey ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.CanalReserva{}
	for rows.Next() {
		var c model.CanalReserva
		if err := rows.Scan(&c.CanalKey, &c.CanalID, &c.NombreCanal, &c.Descripcion); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
