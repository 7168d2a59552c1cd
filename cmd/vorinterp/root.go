package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/esimov/vorinterp"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vorinterp",
	Short: "Rebuild images from sparse sites with Delaunay interpolation",
	Long: `vorinterp triangulates a set of sites over an image, averages the colors
around every site and renders the image again as a smooth gradient mesh.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logger
		var level slog.Level
		switch strings.ToLower(logLevel) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			return fmt.Errorf("unknown log level: %s", logLevel)
		}

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		switch strings.ToLower(logFormat) {
		case "json":
			handler = slog.NewJSONHandler(os.Stderr, opts)
		case "text":
			handler = slog.NewTextHandler(os.Stderr, opts)
		default:
			return fmt.Errorf("unknown log format: %s", logFormat)
		}
		logger = slog.New(handler)
		slog.SetDefault(logger)
		vorinterp.SetLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
