package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/viewkit/config"
	"go.uber.org/zap"
)

func TestRunRequiresBuildHandler(t *testing.T) {
	err := Run(context.Background(), Hooks{Name: "test"})
	if err == nil || !strings.Contains(err.Error(), "BuildHandler is nil") {
		t.Errorf("err = %v", err)
	}
}

func TestRunStopsOnConfigError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	err := Run(context.Background(), Hooks{
		Name:       "test",
		LoadConfig: func(*zap.Logger) (*config.CoreConfig, error) { return nil, boom },
		BuildHandler: func(*config.CoreConfig, *zap.Logger) (http.Handler, error) {
			called = true
			return http.NotFoundHandler(), nil
		},
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
	if called {
		t.Error("BuildHandler ran after config failure")
	}
}

func TestRunStopsOnHandlerError(t *testing.T) {
	boom := errors.New("no handler")
	err := Run(context.Background(), Hooks{
		Name: "test",
		LoadConfig: func(*zap.Logger) (*config.CoreConfig, error) {
			return &config.CoreConfig{Env: "dev", LogLevel: "error"}, nil
		},
		BuildHandler: func(*config.CoreConfig, *zap.Logger) (http.Handler, error) { return nil, boom },
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}
