package user

import (
	"context"
	"database/sql"
)

type Repository interface {
	// GetByEmail returns (nil, nil) when no user matches.
	GetByEmail(ctx context.Context, email string) (*User, string, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetCompany(ctx context.Context, id string) (*Company, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, string, error) {
	u := &User{}
	var passwordHash string

	err := r.db.QueryRowContext(ctx, `
	SELECT id, first_name, last_name, email, phone, role, company_id, password_hash
	FROM users
	WHERE email = $1`, email,
	).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.CompanyID,
		&passwordHash,
	)

	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	return u, passwordHash, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	u := &User{}

	err := r.db.QueryRowContext(ctx, `
	SELECT id, first_name, last_name, email, phone, role, company_id
	FROM users
	WHERE id = $1`, id,
	).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.CompanyID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) GetCompany(ctx context.Context, id string) (*Company, error) {
	c := &Company{}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, address FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Address)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}
