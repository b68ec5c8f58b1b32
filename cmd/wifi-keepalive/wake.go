package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fgeck/wifi-keepalive/internal/config"
	"github.com/fgeck/wifi-keepalive/internal/models"
	"github.com/fgeck/wifi-keepalive/internal/services/waker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newWakeCmd() *cobra.Command {
	var (
		broadcastIP  string
		waitHost     string
		waitTimeout  time.Duration
		pollInterval time.Duration
	)

	wakeCmd := &cobra.Command{
		Use:   "wake <mac>",
		Short: "Send a Wake-on-LAN magic packet",
		Long: `Wake sends a Wake-on-LAN magic packet to a device on the local
network, for the times keeping the link alive was not enough and the
device went to sleep anyway.

With --wait-for the command pings the given host until it answers or
the wait times out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := models.WakeConfig{
				MACAddress:   args[0],
				BroadcastIP:  broadcastIP,
				WaitHost:     waitHost,
				WaitTimeout:  waitTimeout,
				PollInterval: pollInterval,
				Ping: models.PingSettings{
					Count:   config.DefaultPacketCount,
					Timeout: config.DefaultTimeoutSeconds * time.Second,
				},
			}
			return runWake(cmd, cfg)
		},
	}

	wakeCmd.Flags().StringVar(&broadcastIP, "broadcast", "255.255.255.255", "broadcast IP to send the magic packet to")
	wakeCmd.Flags().StringVar(&waitHost, "wait-for", "", "host to ping until the device is up")
	wakeCmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 5*time.Minute, "max time to wait for the device")
	wakeCmd.Flags().DurationVar(&pollInterval, "poll-interval", 10*time.Second, "how often to ping while waiting")

	return wakeCmd
}

func runWake(cmd *cobra.Command, cfg models.WakeConfig) error {
	if err := config.ValidateWake(&cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

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

	svc := waker.New(log.Logger, models.PlatformFor(runtime.GOOS))
	return wakeTarget(ctx, cmd.OutOrStdout(), svc, cfg)
}

func wakeTarget(ctx context.Context, out io.Writer, svc waker.Service, cfg models.WakeConfig) error {
	result, err := svc.Wake(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("wake failed")
		return err
	}

	if result.PacketSent {
		fmt.Fprintf(out, "Magic packet sent to %s\n", cfg.MACAddress)
	}

	if result.Error != nil {
		// A cancelled wait says nothing about the host.
		if cfg.WaitHost != "" && result.PacketSent && !errors.Is(result.Error, context.Canceled) {
			fmt.Fprintf(out, "Host %s did not answer within %s\n", cfg.WaitHost, cfg.WaitTimeout)
		}
		log.Error().Err(result.Error).Msg("wake failed")
		return result.Error
	}

	if cfg.WaitHost != "" {
		fmt.Fprintf(out, "Host %s answered after %s\n", cfg.WaitHost, result.WaitDuration.Round(time.Second))
	}

	return nil
}
