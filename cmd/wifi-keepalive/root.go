package main

import (
	"os"
	"strings"

	"github.com/fgeck/wifi-keepalive/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// newRootCmd builds the full command tree. Flags live in closures, so every
// call returns a command with no state carried over from earlier runs.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		quiet      bool
		jsonOutput bool
	)

	rootCmd := &cobra.Command{
		Use:   "wifi-keepalive <host>",
		Short: "Keep a WiFi link alive by pinging a host at a fixed interval",
		Long: `wifi-keepalive keeps a WiFi link from idling out by pinging a host
at a fixed interval. Some access points and power-saving drivers drop
clients that stay quiet for too long; a periodic ping is enough traffic
to look busy.

The loop prints one timestamped status line per probe and runs until
interrupted (Ctrl+C). A failed probe is reported and probing continues.

Companion commands:
  check    one-shot reachability probe
  wake     send a Wake-on-LAN magic packet`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose, quiet, jsonOutput)
		},
		RunE:    runKeepAlive,
		Version: Version,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode (errors only)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output logs in JSON format")

	rootCmd.Flags().IntP("interval", "i", config.DefaultIntervalSeconds, "seconds between pings")
	rootCmd.Flags().IntP("count", "c", config.DefaultPacketCount, "echo requests per ping")
	rootCmd.Flags().IntP("timeout", "t", config.DefaultTimeoutSeconds, "seconds to wait for a reply")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWakeCmd())

	return rootCmd
}

func setupLogging(verbose, quiet, jsonOutput bool) {
	// Status lines own stdout; logs go to stderr.
	if jsonOutput {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		output.FormatLevel = func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return ""
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set log level
	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
