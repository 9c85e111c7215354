package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/seed-converter/config"
	"github.com/Klingon-tech/seed-converter/internal/log"
)

// app carries the parsed flags and effective config for one invocation.
type app struct {
	flags config.Flags
	cfg   *config.Config
}

// Execute runs the CLI against os.Args and reports errors on stderr.
func Execute() error {
	defer log.Close()

	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "seed-converter",
		Short:         "Simple seed generator/converter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.flags.Capture(cmd.Flags())

			cfg, err := config.Load(&a.flags)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			a.cfg = cfg

			log.CLI.Debug().
				Str("command", cmd.Name()).
				Stringer("type", cfg.Type).
				Msg("config loaded")
			return nil
		},
	}

	a.flags.RegisterGlobal(root.PersistentFlags())

	root.AddCommand(
		a.generateCmd(),
		a.deriveCmd(),
		a.pubkeyCmd(),
		a.validateCmd(),
		a.initConfigCmd(),
	)
	return root
}
