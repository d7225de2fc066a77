package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"petclinic-customers/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	SELECT
		p.id, p.owner_id, p.name, p.birth_date,
		t.id, t.name
	FROM pets p
	LEFT JOIN types t ON t.id = p.type_id
`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (owner_id, name, birth_date, type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		p.OwnerID,
		p.Name,
		toNullDate(p.BirthDate),
		typeID(p.Type),
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			birth_date = $3,
			type_id = $4
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		toNullDate(p.BirthDate),
		typeID(p.Type),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, petColumns+` WHERE p.id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID int) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, petColumns+` WHERE p.owner_id = $1 ORDER BY p.id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, petColumns+` ORDER BY p.owner_id, p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) ListPetTypes(ctx context.Context) ([]pets.PetType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.PetType, 0)
	for rows.Next() {
		var t pets.PetType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetPetType(ctx context.Context, id int) (pets.PetType, error) {
	var t pets.PetType
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM types WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.PetType{}, pets.ErrNotFound
		}
		return pets.PetType{}, err
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var (
		p        pets.Pet
		bd       sql.NullTime
		typeID   sql.NullInt64
		typeName sql.NullString
	)
	if err := s.Scan(&p.ID, &p.OwnerID, &p.Name, &bd, &typeID, &typeName); err != nil {
		return pets.Pet{}, err
	}

	if bd.Valid {
		// birth_date es DATE: pgx lo trae como medianoche UTC
		t := bd.Time
		p.BirthDate = &t
	}
	if typeID.Valid {
		p.Type = &pets.PetType{ID: int(typeID.Int64), Name: typeName.String}
	}
	return p, nil
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func typeID(t *pets.PetType) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(t.ID), Valid: true}
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
