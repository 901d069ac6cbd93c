// roadmap projects multi-property purchase roadmaps for investment clients.
package main

import (
	"fmt"
	"os"

	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/propgo/roadmap-engine/internal/config"
	"github.com/propgo/roadmap-engine/internal/logging"
	"github.com/spf13/cobra"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	settings *config.Settings
	logger   calculation.Logger = calculation.NopLogger{}
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roadmap",
		Short:         "Property investment roadmap projector",
		Long:          "Simulates, year by year, which selected properties a client can afford to buy and when.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			s, err := config.LoadSettings(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
				s.Logging.Level = lvl
			}
			settings = s
			logger = logging.New(os.Stderr, s.Logging.Level, s.Logging.Format)
			return nil
		},
	}
	root.PersistentFlags().String("config", "", "settings file (yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newProjectCmd(), newBatchCmd(), newServeCmd(), newExampleCmd(), newVersionCmd())
	return root
}

func newProjector() *calculation.Projector {
	p := calculation.NewProjectorWithRules(settings.Rules())
	p.Debug = settings.Engine.Debug
	p.SetLogger(logger)
	return p
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roadmap %s (%s)\n", version, commit)
		},
	}
}
