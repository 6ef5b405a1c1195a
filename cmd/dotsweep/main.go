package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotsweep/dotsweep/internal/config"
	"github.com/dotsweep/dotsweep/internal/engine"
	"github.com/dotsweep/dotsweep/internal/logging"
)

var (
	version = "0.1.0"

	cfgFile    string
	logLevel   string
	preserveVS bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dotsweep",
	Short: "Discover and safely uninstall .NET SDKs and runtimes",
	Long: `dotsweep enumerates the .NET SDKs and runtimes installed on this machine,
works out which ones other components still depend on, and removes the
ones that are safe to remove.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dotsweep v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is dotsweep.yaml in the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&preserveVS, "preserve-vs", true, "keep bundles required by an installed Visual Studio")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(infoCmd)
}

// setup loads config and wires logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("preserve-vs") {
		cfg.PreserveVS = preserveVS
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	var output io.Writer = os.Stderr
	if cfg.LogFile != "" {
		rw, err := logging.NewRotatingWriter(cfg.LogFile, 10, 2)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		output = logging.TeeWriter(os.Stderr, rw)
	}
	logging.Init(cfg.LogFormat, cfg.LogLevel, output)

	for _, err := range cfg.Validate() {
		logging.L("config").Warn(err.Error())
	}

	applyPlatformConfig(cfg)
	return nil
}

func newEngine() (*engine.Engine, error) {
	return engine.New(engine.Options{PreserveIDEPinned: cfg.PreserveVS})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
