package electionmaps

import (
	"mime"
	"net/http"
	"time"

	"github.com/lpar/gzipped"
	"github.com/mlnow/electionmaps/internal/metrics"
	"github.com/sirupsen/logrus"
)

func init() {
	mime.AddExtensionType(".wasm", "application/wasm")
	mime.AddExtensionType(".geojson", "application/geo+json")
	mime.AddExtensionType(".yaml", "application/yaml")
}

// Server serves a built site directory. Files with pre-compressed .br or
// .gz variants are served compressed to clients that accept it. Request
// counters are exposed at /metrics.
type Server struct {
	Log logrus.FieldLogger

	mux     *http.ServeMux
	metrics *metrics.Metrics
}

// NewServer returns a server for the site in dir.
func NewServer(dir string) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		metrics: metrics.New(),
	}
	s.mux.Handle("/metrics", s.metrics.Handler())
	s.mux.Handle("/", s.metrics.Instrument(gzipped.FileServer(http.Dir(dir))))
	return s
}

func (s *Server) log() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.log().WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"remote":   r.RemoteAddr,
		"duration": time.Since(start),
	}).Debug("request")
}
