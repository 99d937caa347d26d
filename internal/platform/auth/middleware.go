package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const principalKey contextKey = "principal"

// ErrPrincipalNotFound is returned by a PrincipalResolver when no staff
// member matches the token subject. The middleware folds it into the same
// 401 as a bad token so that callers cannot distinguish "forged token" from
// "token for deleted staff".
var ErrPrincipalNotFound = errors.New("principal not found")

// Principal is the authenticated actor attached to a request: the flattened
// result of one consistent staff + role + grants read.
type Principal struct {
	ID          uuid.UUID
	Email       string
	RoleName    string
	Permissions []string
	HasRole     bool
}

// HasPermission reports whether the principal's role grants the named
// permission. A principal with no role grants nothing; callers that need to
// distinguish that case check HasRole first.
func (p *Principal) HasPermission(name string) bool {
	for _, granted := range p.Permissions {
		if granted == name {
			return true
		}
	}
	return false
}

// PrincipalResolver loads the principal for a verified token subject. The
// staff domain implements this; the resolution must be a single atomic read
// of staff, role, and the role's full grant set.
type PrincipalResolver interface {
	Resolve(ctx context.Context, email string) (*Principal, error)
}

// Middleware authenticates every request: it requires a bearer token, checks
// the signature and expiry, and resolves the principal. All failures map to
// 401 with a bearer challenge and the same message.
func Middleware(tokens *TokenService, resolver PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthenticated(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthenticated(c)
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return unauthenticated(c)
			}

			principal, err := resolver.Resolve(c.Request().Context(), subject)
			if err != nil {
				// Deleted staff and bad tokens are indistinguishable to the
				// client.
				return unauthenticated(c)
			}

			ctx := context.WithValue(c.Request().Context(), principalKey, principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
}

// PrincipalFromContext retrieves the authenticated principal, or nil when the
// request did not pass the auth middleware.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey).(*Principal)
	return p
}

// WithPrincipal returns a context carrying the given principal. Used by
// tests and by internal callers that bypass the HTTP middleware.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
