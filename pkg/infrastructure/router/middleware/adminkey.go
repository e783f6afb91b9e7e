package middleware

import (
	"crypto/subtle"

	"kwlab-go-backend/config"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/infrastructure/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderAdminKey carries the admin API key.
const HeaderAdminKey = "X-Admin-Key"

// AdminKeyOptions of options for admin key auth
type AdminKeyOptions struct {
	Skip bool
}

// AdminKey is a middleware authenticating requests with the static admin
// key. Comparison is constant time.
func AdminKey(opts AdminKeyOptions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if opts.Skip {
				return next(c)
			}

			expected := config.C.Server.AdminKey
			if expected == "" {
				return handler.HandleError(c, model.NewAuthError(errors.New("admin key not configured")))
			}

			got := c.Request().Header.Get(HeaderAdminKey)
			if got == "" {
				return handler.HandleError(c, model.NewAuthError(errors.New("missing admin key")))
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				return handler.HandleError(c, model.NewAuthError(errors.New("invalid admin key")))
			}

			return next(c)
		}
	}
}
