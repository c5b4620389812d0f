package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Knight2115/API-StayManager/internal/model"
)

// ErrCredencialNotFound indicates that no credential matches the username.
var ErrCredencialNotFound = errors.New("credencial not found")

// ErrUsuarioExists indicates a violation of the unique Usuario index.
var ErrUsuarioExists = errors.New("usuario already exists")

// CredencialRepo manages persistence for login credentials.
type CredencialRepo struct{ db *sql.DB }

func NewCredencialRepo(db *sql.DB) *CredencialRepo { return &CredencialRepo{db: db} }

const credencialCols = `CredencialKey, EmpKey, Usuario, PasswordHash, Rol, Estado`

func scanCredencial(row interface{ Scan(...any) error }, c *model.Credencial) error {
	return row.Scan(&c.CredencialKey, &c.EmpKey, &c.Usuario, &c.PasswordHash, &c.Rol, &c.Estado)
}

// GetByUsuario fetches the unique credential for a username. Returns
// ErrCredencialNotFound when no row matches.
func (r *CredencialRepo) GetByUsuario(ctx context.Context, usuario string) (*model.Credencial, error) {
	var c model.Credencial
	err := scanCredencial(r.db.QueryRowContext(ctx,
		`SELECT `+credencialCols+` FROM credencial WHERE Usuario = ? LIMIT 1`, usuario), &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCredencialNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new credential and re-reads the row so the generated
// key and the Rol/Estado column defaults are populated. A duplicate
// username maps to ErrUsuarioExists.
func (r *CredencialRepo) Create(ctx context.Context, c *model.Credencial) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO credencial (EmpKey, Usuario, PasswordHash) VALUES (?,?,?)`,
		c.EmpKey, c.Usuario, c.PasswordHash)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrUsuarioExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	return scanCredencial(r.db.QueryRowContext(ctx,
		`SELECT `+credencialCols+` FROM credencial WHERE CredencialKey = ?`, id), c)
}
