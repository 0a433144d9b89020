// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"nextstep_backend/internals/configs"
)

// SessionCookieName is the HTTPOnly cookie the login flow sets.
const SessionCookieName = "session_token"

// AuthMiddleware requires a valid session: Authorization bearer token first,
// session cookie as fallback. On success user_id and user_email land in Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseRequestToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware resolves the session when present but never rejects.
// Used by routes that personalize for logged-in users and degrade for guests.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseRequestToken(c)
		if err == nil {
			storeClaimsToLocals(c, claims)
		}
		return c.Next()
	}
}

func parseRequestToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	tokenString, err := extractToken(c)
	if err != nil {
		return nil, err
	}

	secret := configs.JWTSecret
	if secret == "" {
		log.Println("[ERROR] JWT_SECRET is empty")
		return nil, errors.New("missing JWT secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, errors.New("Unauthorized - Token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, errors.New("Unauthorized - Token expired")
	}

	if _, ok := claims["user_id"].(string); !ok {
		return nil, errors.New("Unauthorized - Invalid or missing user ID")
	}
	return claims, nil
}

func extractToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

// leeway tolerates small clock skew between issuer and verifier
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expiry := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiry.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if id, ok := claims["user_id"].(string); ok {
		c.Locals("user_id", id)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("user_email", email)
	}
}

// UserID reads the authenticated user id stored by the middleware; empty when
// the request is anonymous.
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_id").(string); ok {
		return v
	}
	return ""
}
