package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fgeck/wifi-keepalive/internal/config"
	"github.com/fgeck/wifi-keepalive/internal/models"
	"github.com/fgeck/wifi-keepalive/internal/services/pinger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check <host>",
		Short: "Check once whether a host answers ping",
		Long:  `Check performs a single reachability probe and exits 0 when the host answers, non-zero when it does not.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	checkCmd.Flags().IntP("count", "c", config.DefaultPacketCount, "echo requests to send")
	checkCmd.Flags().IntP("timeout", "t", config.DefaultTimeoutSeconds, "seconds to wait for a reply")

	return checkCmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	resolver := config.NewResolver()
	if err := resolver.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := resolver.Resolve(args[0])
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	pingerSvc := pinger.New(log.Logger, cfg.Platform)
	return checkTarget(cmd.Context(), cmd.OutOrStdout(), pingerSvc, cfg)
}

func checkTarget(ctx context.Context, out io.Writer, pingerSvc pinger.Service, cfg *models.KeepAliveConfig) error {
	result := pingerSvc.Ping(ctx, cfg.Target, cfg.Ping)

	if !result.Reachable {
		fmt.Fprintf(out, "Host %s did not answer within %d second(s)\n", cfg.Target, int(cfg.Ping.Timeout.Seconds()))
		return fmt.Errorf("host %s is not reachable", cfg.Target)
	}

	fmt.Fprintf(out, "Host %s is reachable (%s)\n", cfg.Target, result.Latency.Round(time.Millisecond))
	return nil
}
