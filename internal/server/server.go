// Package server provides HTTP server setup and lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/greeter-service/internal/config"
	"github.com/sebasr/greeter-service/internal/handlers"
	"github.com/sebasr/greeter-service/internal/middleware"
)

const healthPath = "/api/health"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Version string
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// gin.New() instead of gin.Default(): request logging goes through zerolog
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger, healthPath))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimit(deps.Config.RateLimit.Limit, deps.Config.RateLimit.Period))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(middleware.DecompressGzip)))

	router.NoRoute(func(c *gin.Context) {
		c.PureJSON(http.StatusNotFound, handlers.ErrorResponse{Error: handlers.MsgNotFound})
	})
	router.NoMethod(func(c *gin.Context) {
		c.PureJSON(http.StatusMethodNotAllowed, handlers.ErrorResponse{Error: handlers.MsgMethodNotAllowed})
	})

	router.GET(healthPath, handlers.NewHealthHandler(deps.Version))
	router.POST("/api/greet", handlers.GreetHandler)

	return router
}

// Run listens on the configured address and serves handler until ctx is done.
func Run(ctx context.Context, cfg *config.ServerConfig, handler http.Handler, logger zerolog.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}
	return Serve(ctx, ln, cfg, handler, logger)
}

// Serve serves handler on ln until ctx is done, then drains in-flight
// requests for at most cfg.ShutdownTimeout. It owns ln.
func Serve(ctx context.Context, ln net.Listener, cfg *config.ServerConfig, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}
