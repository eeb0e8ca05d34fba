package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := HashPassword(password, salt)
	key2 := HashPassword(password, salt)

	assert.True(t, bytes.Equal(key1, key2))
	assert.Len(t, key1, KeySize)

	// known answer
	assert.Equal(t, "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39", hex.EncodeToString(key1))
}

func TestHashPassword_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	assert.NotEqual(t, HashPassword(password, []byte("salt-1")), HashPassword(password, []byte("salt-2")))
	assert.NotEqual(t, HashPassword(password, []byte("salt-1")), HashPassword([]byte("other"), []byte("salt-1")))
}

func TestVerifyPassword(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	require.Len(t, salt, SaltSize)

	hash := HashPassword([]byte("hunter2"), salt)

	assert.True(t, VerifyPassword([]byte("hunter2"), salt, hash))
	assert.False(t, VerifyPassword([]byte("hunter3"), salt, hash))
	assert.False(t, VerifyPassword([]byte("hunter2"), salt, hash[:10]))
}

func TestNewSalt_Random(t *testing.T) {
	a, err := NewSalt()
	require.NoError(t, err)
	b, err := NewSalt()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	Wipe(b)
	assert.Equal(t, make([]byte, 6), b)

	assert.NotPanics(t, func() { Wipe(nil) })
}
