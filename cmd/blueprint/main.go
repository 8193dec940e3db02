package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/blueprint/config"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

// newRootCmd builds the command tree; flag values live in the returned commands
func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Animated pipeline blueprint for the terminal",
		Long: `blueprint draws a three-stage data pipeline with packets flowing between
nodes and pointer-driven particle trails, rendered with half-block pixels.

Run without arguments to start the animation. Mouse motion leaves trails,
'm' toggles the arrival chime, 'q' or Esc quits.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.Log.Debug = true
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runAnimation,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the pipeline animation",
		Args:  cobra.NoArgs,
		RunE:  runAnimation,
	}

	rootCmd.AddCommand(runCmd, newContentCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
