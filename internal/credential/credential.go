// Package credential hashes passwords on write and compares them on login.
package credential

import (
	"golang.org/x/crypto/bcrypt"
)

// Guard hashes and verifies passwords.
type Guard interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
}

// Holder is implemented by every model that carries a password.
// TakePassword returns the pending plaintext, if any, and clears it.
type Holder interface {
	TakePassword() string
	SetPasswordHash(digest string)
}

// BcryptGuard is a Guard backed by bcrypt.
type BcryptGuard struct {
	cost int
}

// NewBcryptGuard returns a BcryptGuard, falling back to bcrypt.DefaultCost for an out-of-range cost.
func NewBcryptGuard(cost int) *BcryptGuard {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptGuard{cost: cost}
}

// Hash returns the bcrypt digest of plaintext.
func (g *BcryptGuard) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), g.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches digest.
func (g *BcryptGuard) Verify(plaintext string, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Apply hashes the pending password of h, if there is one.
func Apply(g Guard, h Holder) error {
	plain := h.TakePassword()
	if plain == "" {
		return nil
	}
	digest, err := g.Hash(plain)
	if err != nil {
		return err
	}
	h.SetPasswordHash(digest)
	return nil
}
