// Package auth provides the credential hasher used to protect account
// passwords at rest.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into a storable one-way hash and
// checks candidate passwords against it. Implementations embed the salt
// in the hash output; callers never manage salts.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt-backed Hasher with the given cost
// factor. The cost is validated once here so a misconfigured work
// factor fails at startup rather than on the first signup.
func NewBcryptHasher(cost int) (Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{cost: cost}, nil
}

// Hash generates a salted hash from a plaintext password. bcrypt
// generates a fresh salt per call, so two hashes of the same password
// differ.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify reports whether the plaintext password matches the hash.
func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
