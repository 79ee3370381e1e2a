package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:               "mtparse",
		Short:             "Tools for parsing and canonicalizing media types",
		PersistentPreRunE: setupLogger,
		SilenceUsage:      true,
	}

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log debugging details to stderr")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(canonCmd)
	rootCmd.AddCommand(decodeCmd)
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	return nil
}

// Execute runs the mtparse command line.
func Execute() error {
	return rootCmd.Execute()
}
