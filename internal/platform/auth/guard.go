package auth

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Requirement is an authorization rule evaluated against the authenticated
// principal. A requirement is either a named permission or a role
// allow-list; both variants run through the same guard.
type Requirement struct {
	permission string
	roles      []string
}

// RequirePermission demands that the principal's role grants the named
// permission.
func RequirePermission(name string) Requirement {
	return Requirement{permission: name}
}

// RequireAnyRole demands that the principal's role name is one of the given
// roles.
func RequireAnyRole(roles ...string) Requirement {
	return Requirement{roles: roles}
}

// Require returns middleware enforcing the given requirement. It must run
// after Middleware; a request with no principal is treated as
// unauthenticated.
func Require(req Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFromContext(c.Request().Context())
			if principal == nil {
				return unauthenticated(c)
			}

			// A missing role assignment is a configuration error, surfaced
			// distinctly rather than folded into "permission denied".
			if !principal.HasRole {
				return echo.NewHTTPError(http.StatusForbidden, "User has no assigned role.")
			}

			if req.permission != "" {
				if !principal.HasPermission(req.permission) {
					return echo.NewHTTPError(http.StatusForbidden,
						fmt.Sprintf("You do not have the '%s' permission.", req.permission))
				}
				return next(c)
			}

			for _, allowed := range req.roles {
				if principal.RoleName == allowed {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				"The user does not have privileges to perform this action.")
		}
	}
}
