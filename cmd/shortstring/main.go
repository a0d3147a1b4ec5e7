package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calebcase/shortstring/internal/config"
)

var (
	// Global flags
	verbose    bool
	width      int
	configPath string

	// Converter for the selected width
	conv converter

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shortstring",
	Short: "Convert short alphanumeric strings to and from integers",
	Long: `shortstring converts short strings of digits and upper case letters
to signed integers and back. Every integer of the selected width has exactly
one string and every accepted string has exactly one integer.

Examples:
  shortstring encode 1002055          # AUD
  shortstring --width 64 decode COMPUTATIONAL
  shortstring check 007 -0 R9Q`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("width") {
			cfg.Width = width
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			level, err := zapcore.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %w", err)
			}
			zcfg.Level = zap.NewAtomicLevelAt(level)
		}

		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		conv, err = newConverter(cfg.Width, cfg.Cache.Size)
		if err != nil {
			return err
		}

		logger.Debug("Configured",
			zap.Int("width", cfg.Width),
			zap.Int("cache_size", cfg.Cache.Size),
			zap.String("config", configPath))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVar(&width, "width", 32, "Integer width in bits: 16, 32 or 64 (or set SHORTSTRING_WIDTH env)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	// Add commands to root
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(blocksCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
