// Command hwysimd inspects the dispatch targets of this machine and drives
// the reference intrinsic modules from the command line.
//
//	hwysimd targets
//	hwysimd call --target baseline add_u8 '[1, 2, 3]' 4
//	hwysimd run cases.toml
package main

import (
	"fmt"
	"os"

	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:               "hwysimd",
	Short:             "SIMD intrinsic test harness",
	Long:              `hwysimd calls the reference intrinsics of every dispatch target and checks their results`,
	SilenceUsage:      true,
	PersistentPreRunE: setupOutput,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("emulate", false, "build modules for targets the CPU does not support")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupOutput installs the logger and color mode selected by the
// persistent flags.
func setupOutput(cmd *cobra.Command, _ []string) error {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logger, err := newLogger(level)
	if err != nil {
		return err
	}
	bridge.SetLogger(logger)

	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unknown color mode: %s", colorFlag)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if lvl.Level() == zap.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	return cfg.Build()
}
