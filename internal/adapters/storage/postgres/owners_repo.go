package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic-customers/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (first_name, last_name, address, city, telephone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.Telephone,
	).Scan(&o.ID)
	if err != nil {
		return owners.Owner{}, err
	}
	o.Pets = nil
	return o, nil
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = $2,
			last_name = $3,
			address = $4,
			city = $5,
			telephone = $6
		WHERE id = $1
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		o.Address,
		o.City,
		o.Telephone,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int) (owners.Owner, error) {
	var o owners.Owner
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		WHERE id = $1
	`, id).Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, address, city, telephone
		FROM owners
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
