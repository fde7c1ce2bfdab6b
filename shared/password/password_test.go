package password_test

import (
	"strings"
	"testing"
	"todos/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "short password", password: "abc"},
		{name: "unicode password", password: "pässwörd"},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NotEqual(t, tt.password, hash)
		})
	}
}

func TestHash_TooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", password.MaxBytes+1))
	assert.ErrorIs(t, err, password.ErrTooLong)

	hash, err := password.Hash(strings.Repeat("a", password.MaxBytes))
	require.NoError(t, err)
	assert.NoError(t, password.Verify(strings.Repeat("a", password.MaxBytes), hash))
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{name: "matching password", password: "correct-horse", hash: hash},
		{name: "wrong password", password: "battery-staple", hash: hash, expectedError: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, expectedError: password.ErrInvalidPassword},
		{name: "empty hash", password: "correct-horse", hash: "", expectedError: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	err := password.Verify("secret", "not-a-bcrypt-hash")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrInvalidPassword)
}
