package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/winlist/internal/config"
	"github.com/mj1618/winlist/internal/logging"
	"github.com/mj1618/winlist/internal/output"
	"github.com/mj1618/winlist/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "winlist",
	Short: "List on-screen application windows",
	Long: `List the windows currently visible on screen, front to back, with their
owning application, title, bounds, stacking layer, and window-server flags.`,
	SilenceUsage: true,
}

// cfg holds the loaded configuration for the running command.
var cfg = config.Default()

// logger is the process logger, configured in PersistentPreRunE.
var logger = slog.Default()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: text, yaml, json (default from config, else text)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log skipped windows and other debug detail to stderr")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/winlist/config.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		levelName := cfg.LogLevel
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			levelName = "debug"
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger = logging.New(os.Stderr, level)
		slog.SetDefault(logger)

		// Use the root persistent flag directly; an explicit flag wins over config.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Format
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f

		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}
