package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/seed-converter/internal/wallet"
)

func (a *app) deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [phrase...]",
		Short: "Derive a keypair from a seed phrase",
		Long: `Derive an ed25519 keypair from a seed phrase.

The phrase may be given as arguments; otherwise it is read from stdin
(hidden input when stdin is a terminal). The derivation path only
applies to labs phrases.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := phraseFromArgs(cmd, args, "Seed phrase: ")
			if err != nil {
				return fmt.Errorf("failed to read seed phrase: %w", err)
			}

			kp, err := wallet.DeriveFromPhrase(phrase, a.cfg.Type, a.cfg.Path)
			if err != nil {
				return fmt.Errorf("failed to derive keys: %w", err)
			}
			defer kp.Zero()

			return a.printKeypair(cmd, kp)
		},
	}
	a.flags.RegisterType(cmd.Flags())
	a.flags.RegisterPath(cmd.Flags())
	a.flags.RegisterOutput(cmd.Flags())
	return cmd
}

// phraseFromArgs joins positional words, falling back to stdin.
func phraseFromArgs(cmd *cobra.Command, args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return readInput(cmd, prompt)
}
