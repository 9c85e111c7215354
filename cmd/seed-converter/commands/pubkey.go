package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/seed-converter/pkg/crypto"
)

func (a *app) pubkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey [secret]",
		Short: "Compute the public key from a secret key",
		Long: `Compute the ed25519 public key of a 32-byte secret key given in hex
or base64 (hex is tried first). The secret is read from stdin when not
given as an argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				s, err := readInput(cmd, "Secret key: ")
				if err != nil {
					return fmt.Errorf("failed to read secret from stdin: %w", err)
				}
				input = s
			}

			secret, err := decodeSecret(input)
			if err != nil {
				return err
			}
			defer crypto.Wipe(secret)

			kp, err := crypto.KeypairFromSecret(secret)
			if err != nil {
				return err
			}
			defer kp.Zero()

			return a.printKeypair(cmd, kp)
		},
	}
	a.flags.RegisterOutput(cmd.Flags())
	return cmd
}

// decodeSecret accepts a 32-byte key in hex, then standard base64.
func decodeSecret(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := hex.DecodeString(s); err == nil {
		if len(b) == crypto.SecretKeySize {
			return b, nil
		}
		crypto.Wipe(b)
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		if len(b) == crypto.SecretKeySize {
			return b, nil
		}
		crypto.Wipe(b)
	}
	return nil, fmt.Errorf("%w: expected %d bytes in hex or base64", crypto.ErrInvalidSecret, crypto.SecretKeySize)
}
