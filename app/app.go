// app/app.go
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/viewkit/config"
	"github.com/dalemusser/viewkit/httputil"
	"github.com/dalemusser/viewkit/logging"
	"github.com/dalemusser/viewkit/metrics"
	"github.com/dalemusser/viewkit/server"
	"go.uber.org/zap"
)

// Hooks defines the integration points a service provides to Run.
type Hooks struct {
	// Name is used only for logging/diagnostics.
	Name string

	// LoadConfig returns the core config. Nil means config.Load.
	LoadConfig func(logger *zap.Logger) (*config.CoreConfig, error)

	// BuildHandler constructs the final http.Handler: router, middleware
	// and routes.
	BuildHandler func(core *config.CoreConfig, logger *zap.Logger) (http.Handler, error)
}

// Run executes the standard startup sequence:
//
//  1. Bootstrap logger
//  2. Load config (Hooks.LoadConfig)
//  3. Build final logger based on config
//  4. Register default metrics
//  5. Wire shutdown signals to a context
//  6. Build the HTTP handler (Hooks.BuildHandler)
//  7. Start the HTTP server and block until shutdown
func Run(ctx context.Context, hooks Hooks) error {
	bootstrap := logging.BootstrapLogger()
	defer bootstrap.Sync()
	bootstrap.Info("bootstrap logger initialized", zap.String("app", hooks.Name))

	if hooks.BuildHandler == nil {
		return fmt.Errorf("app %q: BuildHandler is nil", hooks.Name)
	}
	load := hooks.LoadConfig
	if load == nil {
		load = config.Load
	}

	coreCfg, err := load(bootstrap)
	if err != nil {
		bootstrap.Error("config load failed", zap.Error(err))
		return fmt.Errorf("load config: %w", err)
	}
	bootstrap.Info("config loaded",
		zap.String("env", coreCfg.Env),
		zap.String("log_level", coreCfg.LogLevel),
	)

	logger, err := logging.BuildLogger(coreCfg.LogLevel, coreCfg.Env)
	if err != nil {
		bootstrap.Error("logger build failed", zap.Error(err))
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()
	logger.Info("logger initialized", zap.String("app", hooks.Name))
	logger.Debug("effective config", zap.String("config", coreCfg.Dump()))
	httputil.SetLogger(logger)

	metrics.RegisterDefault(logger)

	ctx, cancel := server.WithShutdownSignals(ctx, logger)
	defer cancel()

	handler, err := hooks.BuildHandler(coreCfg, logger)
	if err != nil {
		logger.Error("handler build failed", zap.Error(err))
		return fmt.Errorf("build handler: %w", err)
	}

	if err := server.ListenAndServeWithContext(ctx, coreCfg, handler, logger); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
