package commands

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Klingon-tech/seed-converter/config"
	"github.com/Klingon-tech/seed-converter/pkg/crypto"
)

// keypairOutput is the JSON printed by derive and pubkey.
type keypairOutput struct {
	Public      string `json:"public"`
	Secret      string `json:"secret"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// readInput reads all of stdin. On a terminal it prompts on stderr and
// reads without echo.
func readInput(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr()) // newline after hidden input
		if err != nil {
			return "", err
		}
		defer crypto.Wipe(b)
		return string(b), nil
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(b)
	return string(b), nil
}

func (a *app) encodeKey(b []byte) string {
	if a.cfg.Encoding == config.EncodingBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

// printKeypair writes the keypair as indented JSON without a trailing newline.
func (a *app) printKeypair(cmd *cobra.Command, kp *crypto.Keypair) error {
	public := kp.Public()
	secret := kp.Secret()
	defer crypto.Wipe(secret)

	out := keypairOutput{
		Public: a.encodeKey(public),
		Secret: a.encodeKey(secret),
	}
	if a.cfg.Fingerprint {
		out.Fingerprint = crypto.Fingerprint(public)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keys: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
