// Package cmd carries the shared startup path for engine binaries:
// environment config, telemetry bootstrap, and the run wrapper that
// flushes telemetry before the process reports its exit code.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/logarium/macros-engine/internal/platform/config"
	"github.com/logarium/macros-engine/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceCampaign names the campaign CLI for startup telemetry.
const ServiceCampaign = "campaign"

// RunOptions controls shared entrypoint behavior for engine commands.
type RunOptions struct {
	// ShutdownTimeout bounds the telemetry flush once a run finishes.
	ShutdownTimeout time.Duration
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// RunWithTelemetry configures tracing and executes one CLI run, returning
// the exit code run produced. A non-nil error means startup failed before
// run was reached.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) int) (int, error) {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions is RunWithTelemetry with explicit options.
// Telemetry shutdown is deferred so the final span batch flushes even when
// run exits nonzero.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) int) (int, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return 1, fmt.Errorf("service name is required")
	}
	if run == nil {
		return 1, fmt.Errorf("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return 1, err
	}
	defer func() {
		timeout := options.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx), nil
}
