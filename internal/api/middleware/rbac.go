package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control. The caller's role claims are
// matched against the required set by intersection: any shared role permits
// the request. With no required roles, any authenticated caller passes.
func RBAC(requiredRoles ...string) echo.MiddlewareFunc {
	required := make(map[string]struct{}, len(requiredRoles))
	for _, r := range requiredRoles {
		required[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(required) == 0 {
				return next(c)
			}

			roles, _ := c.Get("roles").([]string)
			for _, r := range roles {
				if _, ok := required[r]; ok {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
