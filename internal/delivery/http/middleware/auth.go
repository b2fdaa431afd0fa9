package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// UserIDLocal - ключ fiber.Locals с идентификатором пользователя
const UserIDLocal = "user_id"

// Auth resolves the caller from an HS256 bearer token and stores the user id
// in c.Locals(UserIDLocal). Requests without a valid token pass through with
// no user id; the use case answers them with unauthorized.
func Auth(secret, userClaim string, logger *zap.Logger) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" || len(key) == 0 {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			logger.Debug("Rejected bearer token", zap.String("path", c.Path()), zap.Error(err))
			return c.Next()
		}

		if userID := claimString(claims[userClaim]); userID != "" {
			c.Locals(UserIDLocal, userID)
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id or "".
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocal).(string)
	return id
}

func claimString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}
