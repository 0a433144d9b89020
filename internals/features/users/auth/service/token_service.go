package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"nextstep_backend/internals/configs"
)

// SessionTTL matches the original session policy: 7 days.
const SessionTTL = 7 * 24 * time.Hour

// SignSessionToken issues the HS256 session JWT carried both in the HTTPOnly
// cookie and in the response body for Bearer clients.
func SignSessionToken(userID, email string) (string, time.Time, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET is not set")
	}

	expiry := time.Now().Add(SessionTTL)
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     time.Now().Unix(),
		"exp":     expiry.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}
