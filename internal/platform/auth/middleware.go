package auth

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

// PrincipalKey is the request-context key under which the resolved
// caller identity (an int64 user id) is stored.
const PrincipalKey contextKey = "principal_id"

// Claims carries the token payload. The subject is the caller's user
// id in decimal form.
type Claims struct {
	jwt.RegisteredClaims
}

type JWTConfig struct {
	Issuer     string
	Audience   string
	SigningKey []byte
}

// JWTMiddleware resolves the caller's identity from a bearer token and
// stashes it on the request context. Requests without a valid token are
// rejected with 401. Token issuance is out of scope here; any HS256
// token signed with the configured key whose subject parses as a user
// id is accepted.
func JWTMiddleware(cfg JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims := &Claims{}

			opts := []jwt.ParserOption{
				jwt.WithValidMethods([]string{"HS256"}),
			}
			if cfg.Issuer != "" {
				opts = append(opts, jwt.WithIssuer(cfg.Issuer))
			}
			if cfg.Audience != "" {
				opts = append(opts, jwt.WithAudience(cfg.Audience))
			}

			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return cfg.SigningKey, nil
			}, opts...)
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			principal, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil || principal <= 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			ctx := context.WithValue(c.Request().Context(), PrincipalKey, principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// devDefaultPrincipal is the user id attributed to requests in
// development when no X-User-ID header is sent.
const devDefaultPrincipal int64 = 1

// DevAuthMiddleware is a permissive principal resolver for local
// development. The caller id is taken from the X-User-ID header, or
// defaults to user 1 when absent.
func DevAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := devDefaultPrincipal
			if raw := c.Request().Header.Get("X-User-ID"); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || id <= 0 {
					return echo.NewHTTPError(http.StatusBadRequest, "invalid X-User-ID header")
				}
				principal = id
			}

			ctx := context.WithValue(c.Request().Context(), PrincipalKey, principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// PrincipalFromContext returns the caller's user id resolved by the
// auth middleware, or false when no principal is attached.
func PrincipalFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(PrincipalKey).(int64)
	return id, ok
}
