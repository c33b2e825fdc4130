package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	password string
	hash     string
}

func (a *account) TakePassword() string {
	p := a.password
	a.password = ""
	return p
}

func (a *account) SetPasswordHash(digest string) {
	a.hash = digest
}

func TestBcryptGuard_HashVerify(t *testing.T) {
	g := NewBcryptGuard(bcrypt.MinCost)

	digest, err := g.Hash("SeedPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "SeedPass123!", digest)

	assert.True(t, g.Verify("SeedPass123!", digest))
	assert.False(t, g.Verify("seedpass123!", digest))
	assert.False(t, g.Verify("SeedPass123!", ""))
}

func TestNewBcryptGuard_costFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptGuard(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptGuard(99).cost)
	assert.Equal(t, 12, NewBcryptGuard(12).cost)
}

func TestApply(t *testing.T) {
	g := NewBcryptGuard(bcrypt.MinCost)

	a := &account{password: "correct horse"}
	require.NoError(t, Apply(g, a))
	assert.Empty(t, a.password)
	assert.True(t, g.Verify("correct horse", a.hash))

	// nothing pending keeps the stored digest
	before := a.hash
	require.NoError(t, Apply(g, a))
	assert.Equal(t, before, a.hash)
}
