package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/api/metrics"
	"github.com/tahadev/portfolio/internal/core/domain"
	"github.com/tahadev/portfolio/internal/core/ports"
)

// userContextKey is where Authenticate stores the resolved identity.
const userContextKey = "auth_user"

// Authenticate resolves the bearer token to a user record and attaches it to
// the request context. The password hash is stripped before attachment. A
// verified token whose subject no longer exists in the store fails with 401
// rather than propagating a nil identity downstream.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthDeniedTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDeniedTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				// The distinct cause (malformed, bad signature, expired)
				// is logged; the response is a uniform 401.
				log.Debug().Err(err).Msg("bearer token rejected")
				metrics.AuthDeniedTotal.WithLabelValues("token_failed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if err == domain.ErrUserNotFound {
					metrics.AuthDeniedTotal.WithLabelValues("user_gone").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
				}
				return err
			}

			user.PasswordHash = ""
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity attached by Authenticate.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok && user != nil
}
