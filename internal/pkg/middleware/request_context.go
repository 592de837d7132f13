package middleware

import (
	"github.com/labstack/echo/v4"
	appcontext "github.com/piresc/chatsync/internal/pkg/context"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one,
// echoes it back and stores it on the request context so REST calls made
// while serving the request carry the same id
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := appcontext.WithRequestID(c.Request().Context(), c.Request().Header.Get(echo.HeaderXRequestID))
			requestID := appcontext.GetRequestID(ctx)

			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(string(appcontext.RequestIDKey), requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the request id assigned by RequestIDMiddleware
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(appcontext.RequestIDKey)).(string); ok {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
