package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewRequestLogger traces every asset exchange at debug level. Server errors
// are reported at error level so they reach sentry.
func NewRequestLogger(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogValuesFunc: func(eCtx echo.Context, v middleware.RequestLoggerValues) error {
			lg := lg.With(
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("asset", v.URIPath),
				zap.Int("status", v.Status),
				zap.Int64("bytes_out", v.ResponseSize),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			)

			if r := firstHeader(v.Headers, "Range"); r != "" {
				lg = lg.With(zap.String("range", r))
			}
			if err := v.Error; err != nil {
				lg = lg.With(zap.Error(err))
			}

			switch s := v.Status; {
			case s >= http.StatusInternalServerError:
				lg.Error("server error")
			case s == http.StatusNotFound:
				lg.Debug("asset not found")
			case s >= http.StatusBadRequest:
				lg.Debug("client error")
			case s == http.StatusNotModified:
				lg.Debug("asset not modified")
			case s >= http.StatusMultipleChoices:
				lg.Debug("redirect", zap.String("location", eCtx.Response().Header().Get(echo.HeaderLocation)))
			case s == http.StatusPartialContent:
				lg.Debug("asset range served")
			default:
				lg.Debug("asset served")
			}

			return nil
		},
		LogRequestID:    true,
		LogMethod:       true,
		LogURIPath:      true,
		LogStatus:       true,
		LogResponseSize: true,
		LogLatency:      true,
		LogRemoteIP:     true,
		LogError:        true,
		LogHeaders:      []string{"Range"},
	})
}

func firstHeader(headers map[string][]string, name string) string {
	if vv := headers[name]; len(vv) > 0 {
		return vv[0]
	}
	return ""
}
