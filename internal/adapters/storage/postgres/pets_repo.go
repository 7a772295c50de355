package postgres

import (
	"context"
	"database/sql"
	"time"

	"adoptme-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, name, species, birth_date, adopted, owner`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.Name,
		p.Species,
		toNullTime(p.BirthDate),
		p.Adopted,
		toNullString(p.Owner),
	)
	return translateErr(err)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, translateErr(err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY seq ASC`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, translateErr(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return pets.Pet{}, translateErr(err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1 FOR UPDATE`, id)
	cur, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, translateErr(err)
	}

	next := patch.Apply(cur)
	_, err = tx.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			birth_date = $4,
			adopted = $5,
			owner = $6
		WHERE id = $1
	`,
		next.ID,
		next.Name,
		next.Species,
		toNullTime(next.BirthDate),
		next.Adopted,
		toNullString(next.Owner),
	)
	if err != nil {
		return pets.Pet{}, translateErr(err)
	}

	if err := tx.Commit(); err != nil {
		return pets.Pet{}, translateErr(err)
	}
	return next, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `DELETE FROM pets WHERE id = $1 RETURNING `+petColumns, id)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, translateErr(err)
	}
	return p, nil
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var (
		p     pets.Pet
		birth sql.NullTime
		owner sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Species, &birth, &p.Adopted, &owner); err != nil {
		return pets.Pet{}, err
	}
	if birth.Valid {
		t := birth.Time.UTC()
		p.BirthDate = &t
	}
	if owner.Valid {
		p.Owner = owner.String
	}
	return p, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
