package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tahadev/portfolio/internal/api/metrics"
)

// RequireAdmin enforces the admin role. It must run after Authenticate; a
// request that reaches it without an attached identity is treated as
// unauthenticated, not forbidden.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				metrics.AuthDeniedTotal.WithLabelValues("no_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}
			if !user.IsAdmin() {
				metrics.AuthDeniedTotal.WithLabelValues("not_admin").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admin required")
			}
			return next(c)
		}
	}
}
