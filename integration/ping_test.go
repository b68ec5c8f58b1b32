//go:build integration

package integration

import (
	"context"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/fgeck/wifi-keepalive/internal/models"
	"github.com/fgeck/wifi-keepalive/internal/services/pinger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func getPingTarget(t *testing.T) string {
	t.Helper()

	target := os.Getenv("TEST_PING_TARGET")
	if target == "" {
		t.Skip("TEST_PING_TARGET not set")
	}

	return target
}

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func testSettings() models.PingSettings {
	return models.PingSettings{
		Count:   1,
		Timeout: 5 * time.Second,
	}
}

func TestPing_RealTarget_Integration(t *testing.T) {
	target := getPingTarget(t)

	svc := pinger.New(testLogger(), models.PlatformFor(runtime.GOOS))
	result := svc.Ping(context.Background(), target, testSettings())

	assert.True(t, result.Reachable)
	assert.Greater(t, result.Latency, time.Duration(0))
	assert.False(t, result.CheckedAt.IsZero())
}

func TestPing_UnresolvableHost_Integration(t *testing.T) {
	// The .invalid TLD is reserved and never resolves.
	svc := pinger.New(testLogger(), models.PlatformFor(runtime.GOOS))
	result := svc.Ping(context.Background(), "host.invalid", testSettings())

	assert.False(t, result.Reachable)
	assert.Zero(t, result.Latency)
}

func TestPing_UnroutableAddress_Integration(t *testing.T) {
	// 192.0.2.1 is TEST-NET-1, reserved for documentation and never assigned.
	svc := pinger.New(testLogger(), models.PlatformFor(runtime.GOOS))
	result := svc.Ping(context.Background(), "192.0.2.1", models.PingSettings{
		Count:   1,
		Timeout: 1 * time.Second,
	})

	assert.False(t, result.Reachable)
}
