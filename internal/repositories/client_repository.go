package repositories

import (
	"context"
	"database/sql"

	intconfig "marquesa/internal/config"
	"marquesa/internal/domain"
	"marquesa/internal/domain/models"
)

type ClientRepository struct {
	DB *sql.DB
}

func (r ClientRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	rows, err := r.db().QueryContext(ctx,
		`SELECT id, name, email, phone, profile_picture, ruleta_enabled, created_at
		 FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "error al consultar clientes", Err: err}
	}
	defer rows.Close()

	out := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.ProfilePicture, &c.RuletaEnabled, &c.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "error al leer cliente", Err: err}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "error al leer clientes", Err: err}
	}
	return out, nil
}

func (r ClientRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total)
	if err != nil {
		return 0, domain.InternalError{Msg: "error al contar clientes", Err: err}
	}
	return total, nil
}

// RuletaStatus reads the wheel flag for one client.
func (r ClientRepository) RuletaStatus(ctx context.Context, clientID int64) (bool, error) {
	var enabled bool
	err := r.db().QueryRowContext(ctx,
		`SELECT ruleta_enabled FROM clients WHERE id = ?`, clientID).Scan(&enabled)
	if err == sql.ErrNoRows {
		return false, domain.NotFoundError{Resource: "cliente"}
	}
	if err != nil {
		return false, domain.InternalError{Msg: "error al consultar la ruleta", Err: err}
	}
	return enabled, nil
}

// ToggleRuleta flips the flag and returns the new value.
func (r ClientRepository) ToggleRuleta(ctx context.Context, clientID int64) (bool, error) {
	res, err := r.db().ExecContext(ctx,
		`UPDATE clients SET ruleta_enabled = NOT ruleta_enabled WHERE id = ?`, clientID)
	if err != nil {
		return false, domain.InternalError{Msg: "error al actualizar la ruleta", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.InternalError{Msg: "error al verificar la operación", Err: err}
	}
	if n == 0 {
		return false, domain.NotFoundError{Resource: "cliente"}
	}
	return r.RuletaStatus(ctx, clientID)
}
