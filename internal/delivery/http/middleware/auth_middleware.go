package middleware

import (
	"crypto/subtle"
	"strings"

	"neofidu/config"
	"neofidu/internal/delivery/http/response"
	"neofidu/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the operator API with the static back-office token.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireOperator validates the Authorization header against the configured
// operator token. Comparison is constant-time; an unset token disables the
// whole admin surface rather than leaving it open.
func (m *AuthMiddleware) RequireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		configured := ""
		if m.cfg.Admin != nil {
			configured = m.cfg.Admin.Token
		}
		if configured == "" {
			return response.Forbidden(c, errors.ErrForbidden.ErrorCode(), "Operator access is not configured")
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(configured)) != 1 {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid operator token")
		}

		return next(c)
	}
}
