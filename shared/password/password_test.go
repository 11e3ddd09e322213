package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.Verify("password123", hash))
	assert.ErrorIs(t, password.Verify("wrongpassword", hash), password.ErrInvalidPassword)
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := password.Hash("")

	assert.Error(t, err)
}

func TestVerify_EmptyInputs(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "some-hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("password123", ""), password.ErrInvalidPassword)
}
