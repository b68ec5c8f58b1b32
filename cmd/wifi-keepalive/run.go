package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fgeck/wifi-keepalive/internal/config"
	"github.com/fgeck/wifi-keepalive/internal/services/keepalive"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runKeepAlive(cmd *cobra.Command, args []string) error {
	// Resolve configuration
	resolver := config.NewResolver()
	if err := resolver.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := resolver.Resolve(args[0])
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	log.Info().
		Str("target", cfg.Target).
		Dur("interval", cfg.Interval).
		Int("count", cfg.Ping.Count).
		Dur("timeout", cfg.Ping.Timeout).
		Msg("configuration resolved")

	// Set up context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Warn().Str("signal", sig.String()).Msg("received signal, shutting down")
		cancel()
	}()

	// Run the probe loop
	svc := keepalive.New(log.Logger, cfg.Platform)
	if err := svc.Run(ctx, *cfg); err != nil {
		log.Error().Err(err).Msg("keep-alive loop failed")
		return err
	}

	return nil
}
