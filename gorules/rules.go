//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func noListenAndServe(m dsl.Matcher) {
	m.Match(`http.ListenAndServe($*_)`, `http.ListenAndServeTLS($*_)`).
		Report("bind through server.Server: Listen reports bind errors before serving")
}

func noCacheHeadersOutsideStatic(m dsl.Matcher) {
	m.Match(`$h.Set("Cache-Control", $_)`, `$h.Add("Cache-Control", $_)`).
		Where(
			!m.File().PkgPath.Matches(`internal/server-static`) &&
				!m.File().Name.Matches(`_test\.go$`),
		).
		Report("caching headers belong to serverstatic.NoCache")
}
