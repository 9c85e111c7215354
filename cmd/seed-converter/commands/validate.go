package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/seed-converter/internal/wallet"
)

func (a *app) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [phrase...]",
		Short: "Check a seed phrase's words and checksum",
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := phraseFromArgs(cmd, args, "Seed phrase: ")
			if err != nil {
				return fmt.Errorf("failed to read seed phrase: %w", err)
			}

			t := a.cfg.Type
			if err := wallet.ValidatePhrase(phrase, t); err != nil {
				return fmt.Errorf("invalid %s phrase: %w", t, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid %s phrase\n", t)
			return nil
		},
	}
	a.flags.RegisterType(cmd.Flags())
	return cmd
}
