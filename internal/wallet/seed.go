package wallet

import (
	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// SeedFromMnemonic validates a BIP-39 mnemonic and derives its 512-bit
// seed using PBKDF2-SHA512 with an empty passphrase. Validation errors
// wrap ErrChecksumMismatch or ErrInvalidMnemonic.
func SeedFromMnemonic(mnemonic string) ([]byte, error) {
	if err := checkLabsMnemonic(mnemonic); err != nil {
		return nil, err
	}
	return bip39.NewSeed(mnemonic, ""), nil
}
