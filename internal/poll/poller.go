// Package poll waits for remote edit and export jobs to reach a terminal
// status. Polling starts immediately, then backs off exponentially between
// status checks up to a ceiling, and gives up after a configurable overall
// timeout.
package poll

import (
	"context"
	"log/slog"
	"time"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/api"
)

// Waiter polls job status until the job finishes.
type Waiter struct {
	client api.API
	logger *slog.Logger
}

// New creates a Waiter backed by the given transport.
func New(client api.API, logger *slog.Logger) *Waiter {
	return &Waiter{client: client, logger: logger}
}

// Wait blocks until the project's job reaches a terminal status, the
// configured timeout elapses, or ctx is cancelled.
//
// The first status check happens immediately. A job that is already terminal
// is reported without any sleep. Unrecognized statuses are treated as still
// in progress so that new server-side states do not break waiting clients.
// Intervals grow by cfg.Multiplier up to cfg.MaxInterval and never shrink;
// the final sleep is clipped to the time remaining before the timeout.
func (w *Waiter) Wait(
	ctx context.Context,
	projectUUID string,
	kind imagentypes.JobKind,
	cfg imagentypes.PollConfig,
) (*imagentypes.StatusDetails, error) {
	op := "waitForEditing"
	if kind == imagentypes.JobExport {
		op = "waitForExport"
	}
	cfg = normalize(cfg)

	deadline := time.Now().Add(cfg.Timeout)
	interval := cfg.InitialInterval

	for poll := 1; ; poll++ {
		details, err := w.client.JobStatus(ctx, projectUUID, kind)
		if err != nil {
			return nil, errors.NewProjectError(op, projectUUID, err)
		}

		if w.logger != nil {
			attrs := []any{
				"project_uuid", projectUUID,
				"kind", string(kind),
				"poll", poll,
				"status", string(details.Status),
			}
			if details.Progress != nil {
				attrs = append(attrs, "progress", *details.Progress)
			}
			w.logger.DebugContext(ctx, "job status", attrs...)
		}

		switch details.Status {
		case imagentypes.StatusCompleted:
			return details, nil
		case imagentypes.StatusFailed:
			werr := errors.NewProjectError(op, projectUUID, errors.ErrJobFailed)
			if details.Details != "" {
				werr = werr.WithMessage(details.Details)
			}
			return details, werr
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return details, errors.NewProjectError(op, projectUUID, errors.ErrJobTimeout)
		}

		sleep := interval
		if sleep > remaining {
			sleep = remaining
		}
		if err := sleepCtx(ctx, sleep); err != nil {
			return nil, errors.NewProjectError(op, projectUUID, err)
		}

		next := time.Duration(float64(interval) * cfg.Multiplier)
		if next > cfg.MaxInterval {
			next = cfg.MaxInterval
		}
		if next > interval {
			interval = next
		}
	}
}

// sleepCtx sleeps for d or returns early with the context's error.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// normalize fills zero or invalid poll settings with defaults.
func normalize(cfg imagentypes.PollConfig) imagentypes.PollConfig {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = imagentypes.DefaultPollInitialInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = imagentypes.DefaultPollMaxInterval
	}
	if cfg.MaxInterval < cfg.InitialInterval {
		cfg.MaxInterval = cfg.InitialInterval
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = imagentypes.DefaultPollMultiplier
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = imagentypes.DefaultPollTimeout
	}
	return cfg
}
