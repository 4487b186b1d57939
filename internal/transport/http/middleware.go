package http

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/models"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/service"
	"github.com/visualart-comunicacao/sitemas-visualArt2/internal/token"
)

const claimsKey = "claims"

// jwtMiddleware validates the bearer token and copies the subject and
// role into the request context the services read from.
func jwtMiddleware(tokens *token.HSProvider) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: claimsKey,
		ParseTokenFunc: func(c echo.Context, auth string) (any, error) {
			return tokens.ParseAndValidate(auth)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(claimsKey).(*token.Claims)
			if !ok {
				return
			}
			ctx := service.WithUserID(c.Request().Context(), claims.UserID)
			ctx = service.WithRole(ctx, models.Role(claims.Role))
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := service.RoleFromContext(c.Request().Context())
		if !ok || role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin only")
		}
		return next(c)
	}
}
