package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken(7, "editor@example.com", "editor", 42)
	assert.NoError(t, err)

	claims, err := m.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "editor@example.com", claims.Email)
	assert.Equal(t, "editor", claims.Role)
	assert.Equal(t, uint64(42), claims.OrganizationID)
}

func TestVerify_WrongSecret(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)
	other := NewManager("other-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateToken(7, "e@example.com", "editor", 1)
	assert.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute, 24*time.Hour)

	token, err := m.GenerateToken(7, "e@example.com", "editor", 1)
	assert.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager("secret", time.Hour, 24*time.Hour)

	_, err := m.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
