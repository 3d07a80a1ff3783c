package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3nha")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha", hash)

	assert.NoError(t, h.Compare(hash, "s3nha"))
	assert.ErrorIs(t, h.Compare(hash, "errada"), ErrMismatch)
}

func TestBcryptHasher_Empty(t *testing.T) {
	_, err := NewBcryptHasher(0).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
