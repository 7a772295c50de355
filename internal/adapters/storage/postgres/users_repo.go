package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"adoptme-api/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, first_name, last_name, email, age, password, role, pets`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	petsJSON, err := encodeRefs(u.Pets)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Age,
		u.Password,
		string(u.Role),
		petsJSON,
	)
	return translateErr(err)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return users.User{}, translateErr(err)
	}
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY seq ASC`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translateErr(err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

// Update lee con FOR UPDATE, aplica el patch y reescribe la fila en la misma transacción.
func (r *UsersRepo) Update(ctx context.Context, id string, p users.Patch) (users.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return users.User{}, translateErr(err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	cur, err := scanUser(row)
	if err != nil {
		return users.User{}, translateErr(err)
	}

	next := p.Apply(cur)
	petsJSON, err := encodeRefs(next.Pets)
	if err != nil {
		return users.User{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			age = $5,
			password = $6,
			role = $7,
			pets = $8
		WHERE id = $1
	`,
		next.ID,
		next.FirstName,
		next.LastName,
		next.Email,
		next.Age,
		next.Password,
		string(next.Role),
		petsJSON,
	)
	if err != nil {
		return users.User{}, translateErr(err)
	}

	if err := tx.Commit(); err != nil {
		return users.User{}, translateErr(err)
	}
	return next, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id)
	u, err := scanUser(row)
	if err != nil {
		return users.User{}, translateErr(err)
	}
	return u, nil
}

func scanUser(s rowScanner) (users.User, error) {
	var (
		u        users.User
		role     string
		petsJSON []byte
	)
	if err := s.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Age, &u.Password, &role, &petsJSON); err != nil {
		return users.User{}, err
	}
	u.Role = users.Role(role)

	u.Pets = []string{}
	if len(petsJSON) > 0 {
		if err := json.Unmarshal(petsJSON, &u.Pets); err != nil {
			return users.User{}, err
		}
	}
	return u, nil
}

func encodeRefs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
