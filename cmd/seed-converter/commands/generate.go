package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/seed-converter/internal/wallet"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new seed phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := wallet.GenerateKey(a.cfg.Type)
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), key.Phrase())
			return nil
		},
	}
	a.flags.RegisterType(cmd.Flags())
	return cmd
}
