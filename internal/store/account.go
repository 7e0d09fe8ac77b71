package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/notekeep/authserver/types"
)

// AccountRepository handles persistence for accounts.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (types.Account, error) {
	const query = `
		SELECT id, name, email, password_hash, created_at
		FROM accounts
		WHERE id = $1`
	var account types.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Account{}, ErrNotFound
		}
		return types.Account{}, err
	}
	return account, nil
}

// FindByEmail matches the stored email exactly; no case folding.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (types.Account, error) {
	const query = `
		SELECT id, name, email, password_hash, created_at
		FROM accounts
		WHERE email = $1`
	var account types.Account
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Account{}, ErrNotFound
		}
		return types.Account{}, err
	}
	return account, nil
}

// InsertIfAbsent relies on the unique index on accounts.email: a
// concurrent insert with the same email fails with a unique violation,
// which is reported as ErrDuplicateEmail. That keeps check-then-insert
// atomic without an explicit transaction.
func (r *AccountRepository) InsertIfAbsent(ctx context.Context, account types.Account) (types.Account, error) {
	account.CreatedAt = time.Now()

	const query = `
		INSERT INTO accounts (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return types.Account{}, ErrDuplicateEmail
		}
		return types.Account{}, err
	}
	return account, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
