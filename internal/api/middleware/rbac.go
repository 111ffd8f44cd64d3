package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/segurosapi/auth-service/internal/core/domain"
)

// RequireRole restricts a route to the given roles. Role names are matched
// through the canonical closed set, so "admin" and "Admin" gate the same
// tier. Must run behind Auth, which injects the role claim.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		if canonical, ok := domain.CanonicalRole(r); ok {
			allowed[canonical] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
