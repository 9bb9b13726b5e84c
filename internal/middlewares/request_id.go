package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
)

// NewRequestID sets X-Request-ID on the response, keeping one supplied by the client.
func NewRequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return ulid.Make().String()
		},
	})
}

// requestID is the ID NewRequestID assigned to the exchange, if any.
func requestID(eCtx echo.Context) string {
	if id := eCtx.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return eCtx.Request().Header.Get(echo.HeaderXRequestID)
}
