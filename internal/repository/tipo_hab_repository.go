package repository

import (
	"context"
	"database/sql"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// TipoHabRepo reads the room-type catalogue. The table is seeded externally
// and this service never writes to it.
type TipoHabRepo struct{ db *sql.DB }

func NewTipoHabRepo(db *sql.DB) *TipoHabRepo { return &TipoHabRepo{db: db} }

// List returns room types ordered by key, capped at limit rows.
func (r *TipoHabRepo) List(ctx context.Context, limit int) ([]model.TipoHab, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT TipoHabKey, TipoHabID, Descripcion, Categoria, CapacidadMax, TarifaEstandar
		 FROM tipoHab ORDER BY TipoHabKey ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.TipoHab{}
	for rows.Next() {
		var t model.TipoHab
		if err := rows.Scan(&t.TipoHabKey, &t.TipoHabID, &t.Descripcion, &t.Categoria, &t.CapacidadMax, &t.TarifaEstandar); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
