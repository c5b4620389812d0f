package repository

import (
	"context"
	"database/sql"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// ClienteRepo manages persistence for clients.
type ClienteRepo struct{ db *sql.DB }

func NewClienteRepo(db *sql.DB) *ClienteRepo { return &ClienteRepo{db: db} }

const clienteCols = `ClienteKey, ClienteID, Nombre, Apellido, Genero, Nacionalidad, TipoCliente`

func scanCliente(row interface{ Scan(...any) error }, c *model.Cliente) error {
	return row.Scan(&c.ClienteKey, &c.ClienteID, &c.Nombre, &c.Apellido, &c.Genero, &c.Nacionalidad, &c.TipoCliente)
}

// List returns clients ordered by key, capped at limit rows. The cap is a
// hard LIMIT clause, not a page size.
func (r *ClienteRepo) List(ctx context.Context, limit int) ([]model.Cliente, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clienteCols+` FROM cliente ORDER BY ClienteKey ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Cliente{}
	for rows.Next() {
		var c model.Cliente
		if err := scanCliente(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Create inserts a new client and re-reads the row so the generated
// ClienteKey and the server-assigned ClienteID sequence value are populated.
func (r *ClienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cliente (Nombre, Apellido, Genero, Nacionalidad, TipoCliente) VALUES (?,?,?,?,?)`,
		c.Nombre, c.Apellido, c.Genero, c.Nacionalidad, c.TipoCliente)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return scanCliente(r.db.QueryRowContext(ctx,
		`SELECT `+clienteCols+` FROM cliente WHERE ClienteKey = ?`, id), c)
}
