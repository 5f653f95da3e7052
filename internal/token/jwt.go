package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/carlisting-server/internal/model"
)

// Claims represents session token claims carrying the user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a token manager signing with secretKey. A zero ttl issues
// tokens without an expiry claim.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// GenerateToken creates a signed session token for the user.
func (j *JWT) GenerateToken(userID uuid.UUID) (string, error) {
	now := j.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
	}
	if j.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.ttl))
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates the signature (and expiry, when present) and extracts the user ID.
func (j *JWT) ParseToken(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, model.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: missing user id", model.ErrInvalidToken)
	}
	return claims.UserID, nil
}
