package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ContextKeyUserID = "user_id"

// Identity resolves the caller's user id from a Bearer token minted by the
// external identity provider. Sessions are managed upstream; this middleware
// only verifies the signature and lifts the subject claim into the context.
// With no secret configured (or no token supplied), the request proceeds and
// handlers fall back to the user_id carried in the body or query string.
func Identity(secret string) gin.HandlerFunc {
	secret = strings.TrimSpace(secret)
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		token := NormalizeToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}
		if sub, err := parseSubject(token, secret); err == nil && sub != "" {
			c.Set(ContextKeyUserID, sub)
		}
		c.Next()
	}
}

// CurrentUserID extracts the verified user ID from context, if any.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// ResolveUserID prefers the verified token subject over the caller-supplied id.
func ResolveUserID(c *gin.Context, supplied string) string {
	if id := CurrentUserID(c); id != "" {
		return id
	}
	return strings.TrimSpace(supplied)
}

// NormalizeToken strips the "Bearer " prefix and surrounding whitespace.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[len("bearer "):])
	}
	return token
}

func parseSubject(rawToken, secret string) (string, error) {
	parsed, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", errors.New("invalid token")
	}
	return parsed.Claims.GetSubject()
}
