package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/carlisting-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0)
	u := uuid.New()

	tok, err := j.GenerateToken(u)
	require.NoError(t, err)
	got, err := j.ParseToken(tok)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_TokensAreDistinct(t *testing.T) {
	j := NewJWT("secret", 0)
	u := uuid.New()

	first, err := j.GenerateToken(u)
	require.NoError(t, err)
	second, err := j.GenerateToken(u)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestJWT_SecretRotation(t *testing.T) {
	tok, err := NewJWT("old-secret", 0).GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("new-secret", 0).ParseToken(tok)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret", 0)

	for _, in := range []string{"", "garbage", "a.b.c"} {
		_, err := j.ParseToken(in)
		assert.ErrorIs(t, err, model.ErrInvalidToken, in)
	}
}

func TestJWT_Expiry(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	j.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := j.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = j.ParseToken(tok)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_NoExpiryWhenTTLZero(t *testing.T) {
	j := NewJWT("secret", 0)
	j.now = func() time.Time { return time.Now().Add(-365 * 24 * time.Hour) }

	u := uuid.New()
	tok, err := j.GenerateToken(u)
	require.NoError(t, err)

	got, err := j.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret", 0).ParseToken(tok)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_MissingUserID(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret", 0).ParseToken(tok)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}
