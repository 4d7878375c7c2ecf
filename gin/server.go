// Package gin exposes a distill.Distiller over HTTP using gin.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/distill"
	"github.com/gin-gonic/gin"
)

// Defaults for Server options.
const (
	DefaultAddr         = ":3030"
	DefaultMaxBodyBytes = 10 << 20
	DefaultRateBurst    = 10

	shutdownTimeout = 10 * time.Second
)

// Server serves distill results over HTTP.
type Server struct {
	distiller    distill.Distiller
	key          string
	addr         string
	emailBaseURL string
	maxBodyBytes int64
	limiter      *ClientLimiter
	proxies      []string
	logger       *slog.Logger

	router *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the logger for requests and failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEmailBaseURL sets the origin used by the test_run endpoint.
// Defaults to distill.DefaultEmailBaseURL.
func WithEmailBaseURL(baseURL string) Option {
	return func(s *Server) {
		s.emailBaseURL = baseURL
	}
}

// WithMaxBodyBytes caps request bodies. Defaults to DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

// WithRateLimit enables per-client rate limiting on the API routes.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = NewClientLimiter(rps, burst)
	}
}

// WithTrustedProxies sets the proxy addresses or CIDRs whose
// X-Forwarded-For header identifies the client. By default no proxy is
// trusted and clients are identified by the connection's remote address.
func WithTrustedProxies(proxies []string) Option {
	return func(s *Server) {
		s.proxies = proxies
	}
}

// NewServer creates a Server that authenticates API calls with key.
func NewServer(distiller distill.Distiller, key string, opts ...Option) *Server {
	s := &Server{
		distiller:    distiller,
		key:          key,
		addr:         DefaultAddr,
		emailBaseURL: distill.DefaultEmailBaseURL,
		maxBodyBytes: DefaultMaxBodyBytes,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = gin.New()
	if err := s.router.SetTrustedProxies(s.proxies); err != nil {
		s.logger.Warn("invalid trusted proxies, trusting none", "proxies", s.proxies, "err", err)
		_ = s.router.SetTrustedProxies(nil)
	}
	s.router.Use(s.recoverPanics(), s.logRequests())

	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1", s.limitRate(), s.limitBody(), s.authenticate())
	api.POST("/email/readability", s.handleEmailReadability)
	api.POST("/test_run", s.handleTestRun)

	return s
}

// Handler returns the HTTP handler for the server's routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
