// Package config provides flag resolution and validation.
package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/fgeck/wifi-keepalive/internal/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults applied when the corresponding flag is left unset.
const (
	DefaultIntervalSeconds = 60
	DefaultPacketCount     = 1
	DefaultTimeoutSeconds  = 5
)

// Resolver turns command line flags into a validated configuration.
type Resolver struct {
	v *viper.Viper
}

// NewResolver creates a new configuration resolver with defaults registered.
func NewResolver() *Resolver {
	v := viper.New()
	v.SetDefault("interval", DefaultIntervalSeconds)
	v.SetDefault("count", DefaultPacketCount)
	v.SetDefault("timeout", DefaultTimeoutSeconds)
	return &Resolver{v: v}
}

// BindFlags binds the known keep-alive flags of a flag set. Flags the set
// does not define keep their defaults.
func (r *Resolver) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{"interval", "count", "timeout"} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := r.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Resolve builds the configuration for a target host. The ping dialect is
// resolved here, once, from the running OS.
func (r *Resolver) Resolve(target string) (*models.KeepAliveConfig, error) {
	cfg := &models.KeepAliveConfig{
		Target:   strings.TrimSpace(target),
		Interval: time.Duration(r.v.GetInt("interval")) * time.Second,
		Ping: models.PingSettings{
			Count:   r.v.GetInt("count"),
			Timeout: time.Duration(r.v.GetInt("timeout")) * time.Second,
		},
		Platform: models.PlatformFor(runtime.GOOS),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs validation on the resolved configuration.
func Validate(cfg *models.KeepAliveConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.Target == "" {
		return fmt.Errorf("host is required")
	}

	if cfg.Interval < time.Second {
		return fmt.Errorf("interval must be at least 1 second")
	}

	if cfg.Ping.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	if cfg.Ping.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	if cfg.Platform.CountFlag == "" || cfg.Platform.TimeoutFlag == "" {
		return fmt.Errorf("ping dialect is not resolved")
	}

	return nil
}

// ValidateWake performs validation on a Wake-on-LAN configuration.
func ValidateWake(cfg *models.WakeConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.MACAddress == "" {
		return fmt.Errorf("mac address is required")
	}

	if cfg.BroadcastIP == "" {
		return fmt.Errorf("broadcast ip is required")
	}

	if cfg.WaitHost != "" {
		if cfg.WaitTimeout < time.Second {
			return fmt.Errorf("wait-timeout must be at least 1 second")
		}
		if cfg.PollInterval < time.Second {
			return fmt.Errorf("poll-interval must be at least 1 second")
		}
		if cfg.Ping.Count < 1 {
			return fmt.Errorf("count must be at least 1")
		}
		if cfg.Ping.Timeout < time.Second {
			return fmt.Errorf("timeout must be at least 1 second")
		}
	}

	return nil
}
