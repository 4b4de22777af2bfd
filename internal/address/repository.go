package address

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID string) ([]*Address, error)
	GetByID(ctx context.Context, id string) (*Address, error)
	Create(ctx context.Context, a *Address) error
	ClearDefault(ctx context.Context, userID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const addressColumns = `
	id, user_id, first_name, last_name, address_line1, address_line2,
	city, district, postal_code, country, is_default`

func (r *repository) GetByUserID(ctx context.Context, userID string) ([]*Address, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+addressColumns+`
	FROM addresses
	WHERE user_id = $1
	ORDER BY is_default DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*Address, 0)
	for rows.Next() {
		a := &Address{}
		var line2, district sql.NullString
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.FirstName, &a.LastName,
			&a.AddressLine1, &line2, &a.City, &district,
			&a.PostalCode, &a.Country, &a.IsDefault,
		); err != nil {
			return nil, err
		}
		a.AddressLine2 = line2.String
		a.District = district.String
		result = append(result, a)
	}

	return result, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Address, error) {
	a := &Address{}
	var line2, district sql.NullString

	err := r.db.QueryRowContext(ctx, `
	SELECT `+addressColumns+`
	FROM addresses
	WHERE id = $1`, id,
	).Scan(
		&a.ID, &a.UserID, &a.FirstName, &a.LastName,
		&a.AddressLine1, &line2, &a.City, &district,
		&a.PostalCode, &a.Country, &a.IsDefault,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	a.AddressLine2 = line2.String
	a.District = district.String
	return a, nil
}

func (r *repository) Create(ctx context.Context, a *Address) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO addresses (
		id, user_id, first_name, last_name, address_line1, address_line2,
		city, district, postal_code, country, is_default
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.UserID, a.FirstName, a.LastName,
		a.AddressLine1, nullable(a.AddressLine2), a.City, nullable(a.District),
		a.PostalCode, a.Country, a.IsDefault,
	)
	return err
}

func (r *repository) ClearDefault(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE addresses SET is_default = FALSE WHERE user_id = $1`, userID,
	)
	return err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
