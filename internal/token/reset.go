package token

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edeboer/warehoused/internal/model"
)

// ResetClaims represents password-reset JWT claims. The password fingerprint
// ties the token to the hash it was issued against.
type ResetClaims struct {
	jwt.RegisteredClaims
	UserID      int64  `json:"user_id"`
	Fingerprint string `json:"fpr"`
}

// Reset implements model.ResetTokenManager backed by symmetric HMAC.
type Reset struct {
	secretKey string
}

// NewReset creates a reset token manager with the provided secret key.
func NewReset(secretKey string) model.ResetTokenManager {
	return &Reset{secretKey: secretKey}
}

const resetTTL = 2 * time.Hour

// ErrInvalidResetToken means the token failed to parse, expired, or was
// issued for a different user or password.
var ErrInvalidResetToken = errors.New("reset token invalid")

// Generate creates a short-lived reset token for the user.
func (r *Reset) Generate(user model.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ResetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(resetTTL)),
		},
		UserID:      user.ID,
		Fingerprint: fingerprint(user.Password),
	})

	tokenString, err := token.SignedString([]byte(r.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the token against the user's current record.
func (r *Reset) Verify(tokenString string, user model.User) error {
	claims := &ResetClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(r.secretKey), nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidResetToken
	}

	if claims.UserID != user.ID || claims.Fingerprint != fingerprint(user.Password) {
		return ErrInvalidResetToken
	}

	return nil
}

func fingerprint(passwordHash []byte) string {
	sum := sha256.Sum256(passwordHash)
	return hex.EncodeToString(sum[:16])
}
