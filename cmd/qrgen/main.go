package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qrstudio/qr-studio/internal/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const flagLogLevel = "log_level"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "qrgen",
		Short:         "Generates, prints and reads QR codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString(flagLogLevel)
			logging.Setup(level, cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().String(flagLogLevel, "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		encodeCommand(),
		showCommand(),
		decodeCommand(),
		versionCommand(),
	)
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Debug("command failed")
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
