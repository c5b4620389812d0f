package repository

import (
	"context"
	"database/sql"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// PagoRepo reads the payment-method catalogue. Read-only for this service.
type PagoRepo struct{ db *sql.DB }

func NewPagoRepo(db *sql.DB) *PagoRepo { return &PagoRepo{db: db} }

// ListAll returns every payment method ordered by key.
func (r *PagoRepo) ListAll(ctx context.Context) ([]model.Pago, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT PagoKey, PagoID, Metodo, Moneda FROM pago ORDER BY PagoKey ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Pago{}
	for rows.Next() {
		var p model.Pago
		if err := rows.Scan(&p.PagoKey, &p.PagoID, &p.Metodo, &p.Moneda); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
