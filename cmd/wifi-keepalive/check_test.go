package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgeck/wifi-keepalive/internal/models"
)

type mockPinger struct {
	pingFunc func(ctx context.Context, target string, settings models.PingSettings) models.ProbeResult
}

func (m *mockPinger) Ping(ctx context.Context, target string, settings models.PingSettings) models.ProbeResult {
	return m.pingFunc(ctx, target, settings)
}

func checkConfig() *models.KeepAliveConfig {
	return &models.KeepAliveConfig{
		Target:   "192.168.1.50",
		Interval: 60 * time.Second,
		Ping: models.PingSettings{
			Count:   1,
			Timeout: 5 * time.Second,
		},
		Platform: models.PlatformFor("linux"),
	}
}

func TestCheckTarget_Reachable(t *testing.T) {
	pingerSvc := &mockPinger{
		pingFunc: func(_ context.Context, _ string, _ models.PingSettings) models.ProbeResult {
			return models.ProbeResult{
				Reachable: true,
				Latency:   12 * time.Millisecond,
				CheckedAt: time.Now(),
			}
		},
	}
	out := &bytes.Buffer{}

	err := checkTarget(context.Background(), out, pingerSvc, checkConfig())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Host 192.168.1.50 is reachable (12ms)")
}

func TestCheckTarget_Unreachable(t *testing.T) {
	pingerSvc := &mockPinger{
		pingFunc: func(_ context.Context, _ string, _ models.PingSettings) models.ProbeResult {
			return models.ProbeResult{Reachable: false, CheckedAt: time.Now()}
		},
	}
	out := &bytes.Buffer{}

	err := checkTarget(context.Background(), out, pingerSvc, checkConfig())

	require.Error(t, err)
	assert.EqualError(t, err, "host 192.168.1.50 is not reachable")
	assert.Contains(t, out.String(), "Host 192.168.1.50 did not answer within 5 second(s)")
}

func TestCheckTarget_PassesTargetAndSettings(t *testing.T) {
	var gotTarget string
	var gotSettings models.PingSettings
	pingerSvc := &mockPinger{
		pingFunc: func(_ context.Context, target string, settings models.PingSettings) models.ProbeResult {
			gotTarget = target
			gotSettings = settings
			return models.ProbeResult{Reachable: true}
		},
	}

	err := checkTarget(context.Background(), &bytes.Buffer{}, pingerSvc, checkConfig())

	require.NoError(t, err)
	assert.Equal(t, "192.168.1.50", gotTarget)
	assert.Equal(t, models.PingSettings{Count: 1, Timeout: 5 * time.Second}, gotSettings)
}
