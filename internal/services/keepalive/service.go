// Package keepalive drives the periodic probe loop.
package keepalive

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fgeck/wifi-keepalive/internal/models"
	"github.com/fgeck/wifi-keepalive/internal/services/pinger"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// timestampFormat is the wall clock format of the status lines.
const timestampFormat = "2006-01-02 15:04:05"

// Service defines the interface for the keep-alive loop.
type Service interface {
	Run(ctx context.Context, cfg models.KeepAliveConfig) error
}

// Impl implements the keep-alive Service interface.
type Impl struct {
	pingerSvc pinger.Service
	clock     clockwork.Clock
	out       io.Writer
	logger    zerolog.Logger
}

// New creates a new keep-alive service for the given ping dialect.
func New(logger zerolog.Logger, platform models.Platform) *Impl {
	return &Impl{
		pingerSvc: pinger.New(logger, platform),
		clock:     clockwork.NewRealClock(),
		out:       os.Stdout,
		logger:    logger,
	}
}

// NewWithServices creates a new keep-alive service with custom dependencies (for testing).
func NewWithServices(
	logger zerolog.Logger,
	pingerSvc pinger.Service,
	clock clockwork.Clock,
	out io.Writer,
) *Impl {
	return &Impl{
		pingerSvc: pingerSvc,
		clock:     clock,
		out:       out,
		logger:    logger,
	}
}

// Run probes the target at the configured interval until the context is
// cancelled. One status line is printed per probe; probing and sleeping
// never overlap, so slow probes stretch the cycle instead of stacking up.
func (s *Impl) Run(ctx context.Context, cfg models.KeepAliveConfig) error {
	s.logger.Info().
		Str("target", cfg.Target).
		Dur("interval", cfg.Interval).
		Int("count", cfg.Ping.Count).
		Dur("timeout", cfg.Ping.Timeout).
		Msg("starting keep-alive loop")

	fmt.Fprintf(s.out, "Starting keep-alive pings to %s every %d seconds...\n", cfg.Target, int(cfg.Interval.Seconds()))
	fmt.Fprintf(s.out, "Press Ctrl+C to stop.\n\n")

	for ctx.Err() == nil {
		result := s.pingerSvc.Ping(ctx, cfg.Target, cfg.Ping)
		if ctx.Err() != nil {
			// The probe was cut short by cancellation, not answered.
			break
		}

		status := "OK"
		if !result.Reachable {
			status = "FAILED"
		}
		fmt.Fprintf(s.out, "[%s] Ping to %s: %s\n", s.clock.Now().Format(timestampFormat), cfg.Target, status)

		select {
		case <-ctx.Done():
		case <-s.clock.After(cfg.Interval):
		}
	}

	fmt.Fprintf(s.out, "\nStopped.\n")
	s.logger.Info().Msg("keep-alive loop stopped")

	return nil
}
