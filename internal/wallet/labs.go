package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/seed-converter/internal/log"
	"github.com/Klingon-tech/seed-converter/pkg/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

// Labs scheme parameters.
const (
	LabsWordCount   = 12
	LabsEntropySize = 16
)

// DefaultLabsPath is the first TON account key, m/44'/396'/0'/0/0.
var DefaultLabsPath = FormatPath([]uint32{PurposeBIP44, CoinTypeTON, bip32.FirstHardenedChild, 0, 0})

// GenerateLabsWords encodes 128 bits of entropy as a 12-word BIP-39 phrase.
func GenerateLabsWords(entropy [LabsEntropySize]byte) ([]string, error) {
	defer crypto.Wipe(entropy[:])
	mnemonic, err := bip39.NewMnemonic(entropy[:])
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	return strings.Fields(mnemonic), nil
}

// DeriveLabs derives the keypair at path from a 12-word BIP-39 phrase.
// The derived BIP-32 (secp256k1) child scalar is used as the ed25519 secret.
func DeriveLabs(phrase, path string) (*crypto.Keypair, error) {
	words := strings.Fields(phrase)
	if len(words) != LabsWordCount {
		return nil, &WordCountError{Got: len(words), Want: LabsWordCount}
	}
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	seed, err := SeedFromMnemonic(strings.Join(words, " "))
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(seed)

	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	child, err := master.DerivePath(indices...)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", path, err)
	}
	defer child.Zero()
	log.Wallet.Debug().
		Str("path", FormatPath(indices)).
		Uint8("depth", child.Depth()).
		Msg("derived labs key")

	secret, err := child.PrivateKeyBytes()
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(secret)

	kp, err := crypto.KeypairFromSecret(secret)
	if err != nil {
		return nil, fmt.Errorf("labs keypair: %w", err)
	}
	return kp, nil
}

// checkLabsMnemonic validates words and checksum through go-bip39.
func checkLabsMnemonic(mnemonic string) error {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return fmt.Errorf("%w: %w", ErrChecksumMismatch, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	crypto.Wipe(entropy)
	return nil
}
