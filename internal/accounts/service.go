// Package accounts implements the credential lifecycle: signup
// validation, uniqueness enforcement, password hashing, and login
// verification.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/notekeep/authserver/internal/auth"
	"github.com/notekeep/authserver/internal/store"
	"github.com/notekeep/authserver/types"
)

// AccountStore defines persistence operations for accounts.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (types.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (types.Account, error)

	// InsertIfAbsent persists the account unless one with the same
	// email already exists, in which case it returns
	// store.ErrDuplicateEmail. The check and the insert are atomic with
	// respect to concurrent inserts.
	InsertIfAbsent(ctx context.Context, account types.Account) (types.Account, error)
}

// Service encapsulates the signup and login use-cases. It is stateless
// apart from the injected store and safe for concurrent use.
type Service struct {
	store    AccountStore
	hasher   auth.Hasher
	policy   PasswordPolicy
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService constructs a Service. The password policy is validated
// here so a bad configuration fails at startup.
func NewService(accountStore AccountStore, hasher auth.Hasher, policy PasswordPolicy, logger *slog.Logger) (*Service, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    accountStore,
		hasher:   hasher,
		policy:   policy,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}, nil
}

// Signup validates the input, enforces email uniqueness, hashes the
// password, and persists the new account. Any failure before the insert
// leaves the store untouched; an insert-time duplicate (a lost race
// with a concurrent signup) surfaces as ErrEmailTaken, not as a store
// failure.
func (s *Service) Signup(ctx context.Context, in SignupInput) (types.AccountView, error) {
	if err := validateSignup(s.validate, s.policy, in); err != nil {
		return types.AccountView{}, err
	}

	if _, err := s.store.FindByEmail(ctx, in.Email); err == nil {
		return types.AccountView{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.AccountView{}, &StoreError{Op: "find account", Err: err}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return types.AccountView{}, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.store.InsertIfAbsent(ctx, types.Account{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return types.AccountView{}, ErrEmailTaken
		}
		return types.AccountView{}, &StoreError{Op: "insert account", Err: err}
	}

	return account.View(), nil
}

// Login checks the credentials against the stored account. Unknown
// email and wrong password both return ErrInvalidCredentials so the
// response does not leak whether the email is registered; the log
// records which it was. Format and strength are not re-checked here: an
// account created under an older policy must still be able to log in.
func (s *Service) Login(ctx context.Context, email, password string) (types.AccountView, error) {
	if email == "" {
		return types.AccountView{}, &MissingFieldError{Field: "email"}
	}
	if password == "" {
		return types.AccountView{}, &MissingFieldError{Field: "password"}
	}

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.InfoContext(ctx, "login failed", "reason", "unknown email")
			return types.AccountView{}, ErrInvalidCredentials
		}
		return types.AccountView{}, &StoreError{Op: "find account", Err: err}
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		s.logger.InfoContext(ctx, "login failed", "reason", "password mismatch", "account_id", account.ID)
		return types.AccountView{}, ErrInvalidCredentials
	}

	return account.View(), nil
}

// GetByID returns the public view of an account. Used by the
// token-verification endpoint.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (types.AccountView, error) {
	account, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.AccountView{}, err
		}
		return types.AccountView{}, &StoreError{Op: "find account", Err: err}
	}
	return account.View(), nil
}
