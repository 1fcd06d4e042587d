package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/pkg/utils"
)

const sessionIDKey = "session_id"

// SessionResolver проверяет bearer-токен и возвращает id сессии
type SessionResolver interface {
	ResolveToken(ctx context.Context, bearer string) (string, error)
}

// Auth пропускает запрос только с действующим токеном сессии
func Auth(resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := extractToken(c)
		if bearer == "" {
			return utils.SendError(c, errors.ErrUnauthenticated)
		}

		sessionID, err := resolver.ResolveToken(c.Context(), bearer)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(sessionIDKey, sessionID)
		return c.Next()
	}
}

// SessionID - id сессии, сохранённый Auth; пустая строка вне защищённых маршрутов
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionIDKey).(string)
	return id
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
