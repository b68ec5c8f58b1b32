// Package pinger invokes the operating system's ping utility.
package pinger

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fgeck/wifi-keepalive/internal/models"
	"github.com/rs/zerolog"
)

// Service defines the interface for reachability probes.
type Service interface {
	Ping(ctx context.Context, target string, settings models.PingSettings) models.ProbeResult
}

// CommandExecutor allows mocking exec.Command in tests.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultExecutor is the default command executor using os/exec.
type DefaultExecutor struct{}

// Execute runs a command and returns its output.
func (e *DefaultExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Impl implements the Service interface.
type Impl struct {
	executor CommandExecutor
	platform models.Platform
	logger   zerolog.Logger
}

// New creates a new pinger service for the given ping dialect.
func New(logger zerolog.Logger, platform models.Platform) *Impl {
	return &Impl{
		executor: &DefaultExecutor{},
		platform: platform,
		logger:   logger,
	}
}

// NewWithExecutor creates a new pinger service with a custom executor (for testing).
func NewWithExecutor(logger zerolog.Logger, platform models.Platform, executor CommandExecutor) *Impl {
	return &Impl{
		executor: executor,
		platform: platform,
		logger:   logger,
	}
}

// Ping sends echo requests to the target and reports whether it answered.
// An unreachable target, a missing ping binary and an expired timeout all
// count as a failed probe, never as an error.
func (s *Impl) Ping(ctx context.Context, target string, settings models.PingSettings) models.ProbeResult {
	result := models.ProbeResult{CheckedAt: time.Now()}

	args := s.buildArgs(target, settings)
	s.logger.Debug().Str("target", target).Strs("args", args).Msg("running ping")

	// Bound the call even if the binary ignores its own timeout flag.
	ctx, cancel := context.WithTimeout(ctx, commandDeadline(settings))
	defer cancel()

	start := time.Now()
	output, err := s.executor.Execute(ctx, "ping", args...)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Debug().
			Err(err).
			Str("target", target).
			Str("output", strings.TrimSpace(string(output))).
			Msg("ping failed")
		return result
	}

	result.Reachable = true
	if rtt, err := parseRTT(output); err == nil {
		result.Latency = rtt
	} else {
		result.Latency = elapsed
	}

	s.logger.Debug().
		Str("target", target).
		Dur("latency", result.Latency).
		Msg("ping succeeded")

	return result
}

func (s *Impl) buildArgs(target string, settings models.PingSettings) []string {
	timeout := strconv.Itoa(int(settings.Timeout.Seconds()))
	if s.platform.TimeoutInMS {
		timeout = strconv.Itoa(int(settings.Timeout.Milliseconds()))
	}

	return []string{
		s.platform.CountFlag, strconv.Itoa(settings.Count),
		s.platform.TimeoutFlag, timeout,
		target,
	}
}

// commandDeadline bounds the exec call. Ping sends one request per second,
// so the worst case is the whole request train plus the final reply wait.
func commandDeadline(settings models.PingSettings) time.Duration {
	return time.Duration(settings.Count)*time.Second + settings.Timeout + 2*time.Second
}

// Unix ping prints "time=12.3 ms", Windows prints "time=12ms" or "time<1ms".
var rttPattern = regexp.MustCompile(`time[=<]([0-9.]+)`)

func parseRTT(output []byte) (time.Duration, error) {
	matches := rttPattern.FindSubmatch(output)
	if len(matches) < 2 {
		return 0, fmt.Errorf("no round-trip time in ping output")
	}

	ms, err := strconv.ParseFloat(string(matches[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing round-trip time: %w", err)
	}

	return time.Duration(ms * float64(time.Millisecond)), nil
}
