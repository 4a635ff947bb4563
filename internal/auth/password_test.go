package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid password", "longenough1", nil},
		{"minimum length", "12345678", nil},
		{"maximum length", "abcdefghijklmnopqrstuvwxyz012345", nil},
		{"too short", "short", ErrPasswordTooShort},
		{"empty", "", ErrPasswordTooShort},
		{"too long", "abcdefghijklmnopqrstuvwxyz0123456", ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, 4)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("longenough1", 4)
	require.NoError(t, err)

	assert.NoError(t, CheckPassword("longenough1", hash))
	assert.ErrorIs(t, CheckPassword("wrongpassword", hash), ErrInvalidPassword)
	assert.Error(t, CheckPassword("longenough1", "not-a-bcrypt-hash"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("longenough1", 4)
	require.NoError(t, err)
	hash2, err := HashPassword("longenough1", 4)
	require.NoError(t, err)

	// bcrypt salts per hash, so equal inputs produce distinct hashes
	assert.NotEqual(t, hash1, hash2)
}

func TestGenerateSigningKey(t *testing.T) {
	key1, err := GenerateSigningKey()
	require.NoError(t, err)
	key2, err := GenerateSigningKey()
	require.NoError(t, err)

	assert.Len(t, key1, 64) // 32 bytes hex encoded
	assert.NotEqual(t, key1, key2)

	_, err = hex.DecodeString(key1)
	assert.NoError(t, err)
}
