// Package commands defines the seed-converter CLI.
//
// Commands
//
//   - generate      Print a new random mnemonic phrase
//   - derive        Derive a keypair from a phrase (argument or stdin)
//   - pubkey        Recompute the public key of a hex or base64 secret
//   - validate      Check a phrase's words and checksum without deriving
//   - init-config   Write a default config file
//
// Every command reads defaults from the config file (see package config);
// flags override it. Keys are printed as JSON on stdout, logs go to stderr.
package commands
