// server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dalemusser/viewkit/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WithShutdownSignals returns a context that is canceled when the process
// receives SIGINT or SIGTERM. The returned cancel function also stops
// signal delivery.
func WithShutdownSignals(parent context.Context, logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			if logger != nil {
				logger.Info("shutdown signal received", zap.Any("signal", sig))
			}
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// ListenAndServeWithContext listens on cfg.HTTP.HTTPPort and serves handler
// until ctx is canceled or the server fails.
func ListenAndServeWithContext(
	ctx context.Context,
	cfg *config.CoreConfig,
	handler http.Handler,
	logger *zap.Logger,
) error {
	if cfg == nil {
		return fmt.Errorf("ListenAndServeWithContext: cfg is nil")
	}
	addr := ":" + strconv.Itoa(cfg.HTTP.HTTPPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", addr, err)
	}
	return Serve(ctx, ln, cfg, handler, logger)
}

// Serve runs an HTTP server on ln until ctx is canceled, then shuts it down
// within cfg.HTTP.ShutdownTimeout. ln is closed on return.
func Serve(
	ctx context.Context,
	ln net.Listener,
	cfg *config.CoreConfig,
	handler http.Handler,
	logger *zap.Logger,
) error {
	if cfg == nil {
		_ = ln.Close()
		return fmt.Errorf("Serve: cfg is nil")
	}
	if handler == nil {
		_ = ln.Close()
		return fmt.Errorf("Serve: handler is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	}

	// Route stdlib error logs into zap at Warn level.
	if stdlog, err := zap.NewStdLogAt(logger, zapcore.WarnLevel); err == nil {
		srv.ErrorLog = stdlog
	} else {
		logger.Warn("failed to attach stdlib error logger", zap.Error(err))
	}

	serveErr := make(chan error, 1)
	logger.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server…")
		timeout := cfg.HTTP.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		// ctx is already canceled, so the shutdown window hangs off Background.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil

	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
