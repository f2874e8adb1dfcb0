package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const accountCols = `a.id, a.username, a.email, a.password_hash, a.first_name, a.last_name,
	a.is_active, a.created_at, a.updated_at,
	p.role, p.gender, p.dob, p.address, p.city, p.mobile_no`

const accountFrom = `FROM accounts a JOIN user_profiles p ON p.account_id = a.id`

func scanAccount(row pgx.Row) (*Account, *Profile, error) {
	var a Account
	var p Profile
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		&p.Role, &p.Gender, &p.DOB, &p.Address, &p.City, &p.MobileNo)
	if err != nil {
		return nil, nil, err
	}
	p.AccountID = a.ID
	return &a, &p, nil
}

func (r *repoPG) Create(ctx context.Context, a *Account, p *Profile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO accounts (id, username, email, password_hash, first_name, last_name, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,TRUE)
		RETURNING created_at, updated_at`,
		a.ID, a.Username, a.Email, a.PasswordHash, a.FirstName, a.LastName).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return err
	}
	a.IsActive = true

	if _, err := tx.Exec(ctx, `
		INSERT INTO user_profiles (account_id, role, gender, dob, address, city, mobile_no)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, p.Role, p.Gender, p.DOB, p.Address, p.City, p.MobileNo); err != nil {
		return err
	}
	p.AccountID = a.ID

	return tx.Commit(ctx)
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*Account, *Profile, error) {
	return scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` `+accountFrom+` WHERE a.username = $1`, username))
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Account, *Profile, error) {
	return scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` `+accountFrom+` WHERE a.id = $1`, id))
}

func (r *repoPG) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`, username).Scan(&taken)
	return taken, err
}

func (r *repoPG) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&taken)
	return taken, err
}

func (r *repoPG) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
