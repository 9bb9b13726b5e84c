package logger

import (
	"github.com/getsentry/sentry-go"
)

// NewSentryClient builds a client for the zap sentry core. Events below warn
// level never reach it.
func NewSentryClient(dsn, env, version string) (*sentry.Client, error) {
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          version,
		Environment:      env,
		AttachStacktrace: true,
	})
}
