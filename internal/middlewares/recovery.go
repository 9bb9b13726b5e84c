package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRecovery turns a handler panic into a 500 and reports it with the
// request it happened on. Chain it after NewRequestID so the ID is known.
func NewRecovery(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(eCtx echo.Context, err error, stack []byte) error {
			req := eCtx.Request()
			lg.Error("panic recovered",
				zap.String("request_id", requestID(eCtx)),
				zap.String("method", req.Method),
				zap.String("asset", req.URL.Path),
				zap.Bool("committed", eCtx.Response().Committed),
				zap.Error(err),
				zap.ByteString("stack", stack),
			)
			return err
		},
	})
}
