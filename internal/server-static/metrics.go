package serverstatic

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pallet_town",
			Subsystem: "static",
			Name:      "requests_total",
			Help:      "Static responses by status code.",
		}, []string{"code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pallet_town",
			Subsystem: "static",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving a static response.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			start := time.Now()
			err := next(eCtx)

			code := eCtx.Response().Status
			if err != nil {
				code = http.StatusInternalServerError
				if errHTTP := new(echo.HTTPError); errors.As(err, &errHTTP) {
					code = errHTTP.Code
				}
			}

			m.requests.WithLabelValues(strconv.Itoa(code)).Inc()
			m.duration.Observe(time.Since(start).Seconds())
			return err
		}
	}
}
