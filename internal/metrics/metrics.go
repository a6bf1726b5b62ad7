// Package metrics holds the Prometheus collectors of the static server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts requests served by one handler.
type Metrics struct {
	Requests *prometheus.CounterVec
	Bytes    prometheus.Counter
	Duration prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with a fresh registry,
// so several servers in one process do not collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "electionmaps_requests_total",
			Help: "Total number of requests by status code",
		}, []string{"code"}),
		Bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "electionmaps_response_bytes_total",
			Help: "Total response body bytes written",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "electionmaps_request_duration_ms",
			Help:    "Request duration in milliseconds",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
		}),
		gatherer: reg,
	}
	reg.MustRegister(m.Requests, m.Bytes, m.Duration)
	return m
}

// Handler exposes the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

type recorder struct {
	http.ResponseWriter
	code  int
	bytes int
}

func (r *recorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.code == 0 {
		r.code = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Instrument counts the requests handled by h.
func (m *Metrics) Instrument(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &recorder{ResponseWriter: w}
		h.ServeHTTP(rec, r)
		if rec.code == 0 {
			rec.code = http.StatusOK
		}
		m.Requests.WithLabelValues(strconv.Itoa(rec.code)).Inc()
		m.Bytes.Add(float64(rec.bytes))
		m.Duration.Observe(float64(time.Since(start)) / float64(time.Millisecond))
	})
}
