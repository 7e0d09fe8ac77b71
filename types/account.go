package types

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a stored identity record keyed by unique email.
type Account struct {
	// ID is the unique identifier of the account, assigned at creation.
	ID uuid.UUID `json:"id" db:"id"`

	// Name is the account's display name. Not unique.
	Name string `json:"name" db:"name"`

	// Email identifies the account for authentication. Stored as
	// provided; lookups are exact-match on the stored form.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the salted one-way hash of the account's
	// password. This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AccountView is the public projection of an Account. It is what
// callers outside the store ever see; the credential hash stays behind.
type AccountView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// View returns the account's public projection.
func (a Account) View() AccountView {
	return AccountView{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}
