// seed-converter generates mnemonic phrases and converts them to ed25519 keypairs.
package main

import (
	"os"

	"github.com/Klingon-tech/seed-converter/cmd/seed-converter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
