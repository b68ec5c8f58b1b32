// Package waker provides Wake-on-LAN operations.
package waker

import (
	"context"
	"fmt"
	"net"

	"github.com/fgeck/wifi-keepalive/internal/models"
	"github.com/fgeck/wifi-keepalive/internal/services/pinger"
	"github.com/jonboulle/clockwork"
	"github.com/mdlayher/wol"
	"github.com/rs/zerolog"
)

// Service defines the interface for Wake-on-LAN operations.
type Service interface {
	Wake(ctx context.Context, cfg models.WakeConfig) (*models.WakeResult, error)
}

// Client wraps the wol library for mocking.
type Client interface {
	Wake(broadcastIP string, mac net.HardwareAddr) error
}

// DefaultClient is the default implementation using mdlayher/wol.
type DefaultClient struct{}

// Wake sends a magic packet to the specified MAC address.
func (c *DefaultClient) Wake(broadcastIP string, mac net.HardwareAddr) error {
	client, err := wol.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create WOL client: %w", err)
	}
	defer func() { _ = client.Close() }()

	ip := net.ParseIP(broadcastIP)
	if ip == nil {
		return fmt.Errorf("invalid broadcast IP: %s", broadcastIP)
	}

	if err := client.Wake(ip.String()+":9", mac); err != nil {
		return fmt.Errorf("failed to send WOL packet: %w", err)
	}

	return nil
}

// Impl implements the waker Service interface.
type Impl struct {
	wolClient Client
	pingerSvc pinger.Service
	clock     clockwork.Clock
	logger    zerolog.Logger
}

// New creates a new waker service for the given ping dialect.
func New(logger zerolog.Logger, platform models.Platform) *Impl {
	return &Impl{
		wolClient: &DefaultClient{},
		pingerSvc: pinger.New(logger, platform),
		clock:     clockwork.NewRealClock(),
		logger:    logger,
	}
}

// NewWithClients creates a new waker service with custom dependencies (for testing).
func NewWithClients(logger zerolog.Logger, wolClient Client, pingerSvc pinger.Service, clock clockwork.Clock) *Impl {
	return &Impl{
		wolClient: wolClient,
		pingerSvc: pingerSvc,
		clock:     clock,
		logger:    logger,
	}
}

// Wake sends a WOL packet and optionally pings the target until it is up.
func (s *Impl) Wake(ctx context.Context, cfg models.WakeConfig) (*models.WakeResult, error) {
	result := &models.WakeResult{}
	start := s.clock.Now()

	mac, err := net.ParseMAC(cfg.MACAddress)
	if err != nil {
		result.Error = fmt.Errorf("invalid MAC address %q: %w", cfg.MACAddress, err)
		return result, nil
	}

	s.logger.Info().
		Str("mac", cfg.MACAddress).
		Str("broadcast", cfg.BroadcastIP).
		Msg("sending WOL packet")

	if err := s.wolClient.Wake(cfg.BroadcastIP, mac); err != nil {
		result.Error = err
		return result, nil //nolint:nilerr // error is stored in result struct by design
	}

	result.PacketSent = true
	s.logger.Info().Msg("WOL packet sent successfully")

	// If no wait host specified, we're done
	if cfg.WaitHost == "" {
		result.WaitDuration = s.clock.Since(start)
		result.TargetReady = true
		return result, nil
	}

	s.logger.Info().
		Str("host", cfg.WaitHost).
		Dur("timeout", cfg.WaitTimeout).
		Msg("waiting for target to answer ping")

	if err := s.waitForHost(ctx, cfg); err != nil {
		result.WaitDuration = s.clock.Since(start)
		result.Error = err
		return result, nil //nolint:nilerr // error is stored in result struct by design
	}

	result.TargetReady = true
	result.WaitDuration = s.clock.Since(start)

	s.logger.Info().
		Dur("duration", result.WaitDuration).
		Msg("target is up")

	return result, nil
}

func (s *Impl) waitForHost(ctx context.Context, cfg models.WakeConfig) error {
	deadline := s.clock.Now().Add(cfg.WaitTimeout)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.clock.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for %s to answer", cfg.WaitHost)
		}

		probe := s.pingerSvc.Ping(ctx, cfg.WaitHost, cfg.Ping)
		if probe.Reachable {
			return nil
		}

		s.logger.Debug().Str("host", cfg.WaitHost).Msg("target not answering yet")

		// Wait before next poll
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.clock.After(cfg.PollInterval):
		}
	}
}
