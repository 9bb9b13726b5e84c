package serverstatic

import (
	"github.com/labstack/echo/v4"
)

const (
	headerCacheControl = "Cache-Control"
	headerPragma       = "Pragma"
	headerExpires      = "Expires"
)

// NoCache makes every response uncacheable for browsers and intermediaries.
// The headers are set when the header block is committed, so they survive
// handlers that reset caching headers on their error paths.
func NoCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			resp := eCtx.Response()
			resp.Before(func() {
				h := resp.Header()
				h.Set(headerCacheControl, "no-cache, no-store, must-revalidate")
				h.Set(headerPragma, "no-cache")
				h.Set(headerExpires, "0")
			})
			return next(eCtx)
		}
	}
}
