package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	apisetup "gepe-server/internal/api"
	"gepe-server/internal/bootstrap"
	"gepe-server/internal/config"
	"gepe-server/internal/health"
	"gepe-server/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Startup failures. All of them are fatal: binding is deterministic, so
// retrying without operator intervention would just loop.
var (
	ErrInvalidConfig    = errors.New("invalid server configuration")
	ErrPortInUse        = errors.New("address already in use")
	ErrPermissionDenied = errors.New("permission denied binding address")
)

// ShutdownReason records what triggered a stop, for the shutdown log line.
type ShutdownReason string

const (
	// ReasonSignal is a SIGINT/SIGTERM delivered by the operator or the
	// process manager.
	ReasonSignal ShutdownReason = "signal"
	// ReasonServeError is a fatal accept-loop failure after a successful bind.
	ReasonServeError ShutdownReason = "serve error"
	// ReasonRequested is an explicit Stop call from application code.
	ReasonRequested ShutdownReason = "requested"
)

// Server owns the listening socket and sequences the process lifecycle:
// bind, report ready, serve, drain, stop. The health reporter it drives is
// the single source of truth for readiness; orchestrators must poll
// /api/health rather than infer readiness from the socket, because the
// socket stays open while the server drains.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	health     *health.Reporter
	logger     *observability.Logger

	stopping atomic.Bool
	stopped  chan struct{}
	serveErr chan error
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config:   cfg,
		deps:     deps,
		health:   deps.Health,
		logger:   logger,
		stopped:  make(chan struct{}),
		serveErr: make(chan error, 1),
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	s.router = gin.New()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "OPTIONS", "DELETE"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	corsConfig.AllowOrigins = []string{s.config.Server.CORSOrigin}

	// Allow localhost in non-production
	if !s.config.IsProduction() {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", s.config.Server.CORSOrigin}
	}

	// Apply middleware
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	// Register routes
	rootRouter := s.router.Group("/")
	api := apisetup.New(
		rootRouter,
		s.health,
		s.deps.CatalogHandler,
		s.deps.ContentHandler,
		s.deps.SettingsHandler,
		s.deps.OrdersHandler,
		s.deps.PaymentsHandler,
		s.deps.StatsHandler,
		s.deps.NewsletterHandler,
		s.deps.CartHandler,
		s.deps.UsersHandler,
		s.deps.ContactHandler,
	)
	api.RegisterRoutes()
}

// Start binds the listening socket and begins serving. The bind happens
// synchronously so a bad address fails here, before the caller is told the
// server is up; only then does the health state move to ready. On any
// startup failure the state goes straight to stopped and the error is
// returned for the process to exit non-zero.
func (s *Server) Start(ctx context.Context) error {
	addr, err := s.validateAddr()
	if err != nil {
		s.health.Report(health.StateStopped)
		return err
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		s.health.Report(health.StateStopped)
		return classifyBindError(addr, err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler: s.router,
		// Idle keep-alive connections are closed after this much inactivity.
		// This is a resource bound only: during shutdown the drain deadline
		// wins and closes idle connections immediately.
		IdleTimeout: s.config.Server.KeepAliveTimeout,
	}

	// The socket is accepting from this point, so readiness flips before the
	// serve goroutine runs; connections queue in the kernel until Serve picks
	// them up.
	s.health.Report(health.StateReady)
	s.logger.Info(ctx, fmt.Sprintf("Server listening on %s", listener.Addr()))

	// Run the accept loop in a goroutine so that Start doesn't block. A serve
	// failure is routed to the control path in WaitForShutdown instead of
	// exiting from here.
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server accept loop failed", err)
			s.serveErr <- err
		}
	}()

	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop runs the graceful shutdown sequence: mark the process draining so
// health checks go not-ready while the socket still accepts, stop accepting,
// wait for in-flight requests up to the configured grace window, force-close
// whatever remains, and finally mark the process stopped. Every step is best
// effort; step failures are logged and the sequence always reaches stopped.
// Calling Stop again is a logged no-op.
func (s *Server) Stop(ctx context.Context, reason ShutdownReason) {
	if !s.stopping.CompareAndSwap(false, true) {
		s.logger.Info(ctx, "shutdown already in progress, ignoring repeated stop")
		return
	}
	defer close(s.stopped)

	ctx = observability.WithFields(ctx, observability.Field{Key: "reason", Value: string(reason)})
	s.logger.Info(ctx, "Shutting down server...")

	// Health goes not-ready first so a balancer polling /api/health stops
	// routing new traffic before the listener closes.
	s.health.Report(health.StateDraining)

	if s.httpServer != nil {
		// Shutdown closes the listener and idle connections immediately and
		// then waits for in-flight requests, bounded by the grace window.
		drainCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.GracefulShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(drainCtx); err != nil {
			// Deadline passed with requests still running: cut the remaining
			// connections. No request is promised more than the grace window.
			s.logger.InfoWithError(ctx, "grace period expired, closing remaining connections", err)
			if err := s.httpServer.Close(); err != nil {
				s.logger.Error(ctx, "failed to close remaining connections", err)
			}
		}
	}

	s.health.Report(health.StateStopped)
	s.logger.Info(ctx, "Server exited gracefully")
}

// WaitForShutdown blocks until a shutdown signal is received, a fatal serve
// error surfaces, or Stop is called from elsewhere; it then runs the
// shutdown sequence and dependency cleanup. Returns nil on a clean stop and
// the serve error otherwise.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	// Set up a channel to listen for OS signals for shutdown
	quit := make(chan os.Signal, 1)
	// kill (no param) default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var serveErr error
	select {
	case sig := <-quit:
		s.logger.Info(ctx, fmt.Sprintf("Received %s", sig))
		s.Stop(ctx, ReasonSignal)
	case serveErr = <-s.serveErr:
		s.Stop(ctx, ReasonServeError)
	case <-s.stopped:
		// Stopped through the API; nothing left to sequence here.
	}

	// Cleanup dependencies
	s.deps.Cleanup(ctx)

	return serveErr
}

// validateAddr checks the configured host and port before the bind so
// obviously broken settings fail as config errors rather than odd dial
// errors.
func (s *Server) validateAddr() (string, error) {
	port := s.config.Server.Port
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, port)
	}
	host := s.config.Server.Host
	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return "", fmt.Errorf("%w: host %q is not an IP address", ErrInvalidConfig, host)
		}
	}
	return fmt.Sprintf("%s:%d", host, port), nil
}

// classifyBindError maps a bind failure onto the startup error taxonomy.
func classifyBindError(addr string, err error) error {
	switch {
	case errors.Is(err, syscall.EADDRINUSE):
		return fmt.Errorf("%w: %s", ErrPortInUse, addr)
	case errors.Is(err, syscall.EACCES):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, addr)
	default:
		return fmt.Errorf("%w: binding %s: %v", ErrInvalidConfig, addr, err)
	}
}
