package security

import (
	"strings"
	"testing"

	"health-tracker-server/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("P@ssw0rd123")
	require.NoError(t, err)
	assert.NotEqual(t, "P@ssw0rd123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := hasher.Verify("P@ssw0rd123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedHashes(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("P@ssw0rd123")
	require.NoError(t, err)
	second, err := hasher.Hash("P@ssw0rd123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Errors(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash("")
	assert.ErrorIs(t, err, apperror.ErrHashing)

	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, apperror.ErrHashing)

	_, err = hasher.Verify("", "$2a$04$abc")
	assert.ErrorIs(t, err, apperror.ErrComparison)

	_, err = hasher.Verify("password", "")
	assert.ErrorIs(t, err, apperror.ErrComparison)

	_, err = hasher.Verify("password", "not-a-bcrypt-hash")
	assert.ErrorIs(t, err, apperror.ErrComparison)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
}
