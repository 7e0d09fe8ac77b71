package accounts

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PasswordPolicy is the strength predicate a plaintext password must
// satisfy before it is hashed. The zero value accepts everything;
// construct it from config and validate it at startup.
type PasswordPolicy struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy requires eight characters drawn from all four
// character classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireDigit:  true,
		RequireSymbol: true,
	}
}

// Validate rejects policies that could never be satisfied or that were
// left unconfigured by mistake.
func (p PasswordPolicy) Validate() error {
	if p.MinLength < 1 {
		return fmt.Errorf("password policy min length %d must be at least 1", p.MinLength)
	}
	return nil
}

// Check reports whether the password satisfies the policy.
func (p PasswordPolicy) Check(password string) bool {
	if len(password) < p.MinLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	if p.RequireUpper && !upper {
		return false
	}
	if p.RequireLower && !lower {
		return false
	}
	if p.RequireDigit && !digit {
		return false
	}
	if p.RequireSymbol && !symbol {
		return false
	}
	return true
}

// SignupInput carries the raw signup form fields.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// validateSignup runs the ordered signup checks. Each check
// short-circuits the rest and returns its own error kind, never a
// generic failure. The confirmation value is only compared for
// equality; once it matches, the single strength check on the password
// covers both.
func validateSignup(v *validator.Validate, policy PasswordPolicy, in SignupInput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"password", in.Password},
		{"confirmPassword", in.ConfirmPassword},
	}
	for _, f := range fields {
		if f.value == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if err := v.Var(in.Email, "email"); err != nil {
		return ErrInvalidEmail
	}

	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if !policy.Check(in.Password) {
		return ErrWeakPassword
	}

	return nil
}
