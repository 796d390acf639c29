package bootstrap

import (
	"context"
	"fmt"

	coreconfig "github.com/m3rciful/topupbot/core/config"
	"github.com/m3rciful/topupbot/core/logger"
)

// StopFunc tears down a sidecar started during bootstrap.
type StopFunc func(ctx context.Context) error

// Sidecar starts an auxiliary service (liveness endpoint, metrics exporter)
// and returns its stopper.
type Sidecar func() (StopFunc, error)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
	Sidecars   []Sidecar
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	stops []StopFunc
}

// Run initializes the logger and starts the configured sidecars.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	res := &Result{}
	for i, sc := range opts.Sidecars {
		if sc == nil {
			continue
		}
		stop, err := sc()
		if err != nil {
			_ = res.Shutdown(context.Background())
			return nil, fmt.Errorf("bootstrap: sidecar %d start failed: %w", i, err)
		}
		if stop != nil {
			res.stops = append(res.stops, stop)
		}
	}

	return res, nil
}

// Shutdown stops sidecars in reverse start order, collecting the first error.
func (r *Result) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var firstErr error
	for i := len(r.stops) - 1; i >= 0; i-- {
		if err := r.stops[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.stops = nil
	return firstErr
}
