// Package wallet converts mnemonic phrases to ed25519 keypairs under the
// legacy (24-word) and labs (12-word BIP-39 + BIP-32) schemes.
package wallet

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/seed-converter/internal/log"
	"github.com/Klingon-tech/seed-converter/pkg/crypto"
	"github.com/tyler-smith/go-bip39"
)

// MnemonicType selects the mnemonic scheme.
type MnemonicType int

const (
	// Legacy is the 24-word TON wallet phrase.
	Legacy MnemonicType = iota + 1
	// Labs is the 12-word BIP-39 phrase; a derivation path selects one of
	// many keys.
	Labs
)

// ParseType parses exactly "legacy", "bip39" or "labs".
func ParseType(s string) (MnemonicType, error) {
	switch s {
	case "legacy":
		return Legacy, nil
	case "bip39", "labs":
		return Labs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

func (t MnemonicType) String() string {
	switch t {
	case Legacy:
		return "legacy"
	case Labs:
		return "labs"
	case 0:
		return ""
	default:
		return fmt.Sprintf("MnemonicType(%d)", int(t))
	}
}

// WordCount returns the phrase length for the scheme.
func (t MnemonicType) WordCount() int {
	switch t {
	case Legacy:
		return LegacyWordCount
	case Labs:
		return LabsWordCount
	default:
		return 0
	}
}

// EntropySize returns the entropy size in bytes for the scheme.
func (t MnemonicType) EntropySize() int {
	switch t {
	case Legacy:
		return LegacyEntropySize
	case Labs:
		return LabsEntropySize
	default:
		return 0
	}
}

// Set implements pflag.Value.
func (t *MnemonicType) Set(s string) error {
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value.
func (t *MnemonicType) Type() string { return "type" }

// MarshalText implements encoding.TextMarshaler.
func (t MnemonicType) MarshalText() ([]byte, error) {
	if t != Legacy && t != Labs {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *MnemonicType) UnmarshalText(b []byte) error {
	return t.Set(string(b))
}

// GeneratedKey is a freshly generated phrase and its scheme.
type GeneratedKey struct {
	Words []string     `json:"words"`
	Type  MnemonicType `json:"type"`
}

// Phrase returns the words joined by single spaces.
func (g *GeneratedKey) Phrase() string {
	return strings.Join(g.Words, " ")
}

// newEntropy is the secure random source; replaced in tests.
var newEntropy = bip39.NewEntropy

// readEntropy fills dst from the secure random source.
func readEntropy(dst []byte) error {
	entropy, err := newEntropy(len(dst) * 8)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEntropySource, err)
	}
	defer crypto.Wipe(entropy)
	if len(entropy) != len(dst) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrEntropySource, len(entropy), len(dst))
	}
	copy(dst, entropy)
	return nil
}

// GenerateKey creates a new random mnemonic of the given type.
func GenerateKey(t MnemonicType) (*GeneratedKey, error) {
	size := t.EntropySize()
	if size == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	log.Wallet.Debug().Stringer("type", t).Int("entropy_bytes", size).Msg("generating mnemonic")

	entropy := make([]byte, size)
	defer crypto.Wipe(entropy)
	if err := readEntropy(entropy); err != nil {
		return nil, err
	}

	var words []string
	switch t {
	case Legacy:
		words = GenerateLegacyWords([LegacyEntropySize]byte(entropy))
	case Labs:
		var err error
		words, err = GenerateLabsWords([LabsEntropySize]byte(entropy))
		if err != nil {
			return nil, err
		}
	}
	if len(words) != t.WordCount() {
		return nil, fmt.Errorf("generated %d words, want %d", len(words), t.WordCount())
	}
	return &GeneratedKey{Words: words, Type: t}, nil
}

// DeriveFromPhrase derives a keypair from phrase using the given scheme.
// path is ignored for Legacy; an empty path means DefaultLabsPath for Labs.
func DeriveFromPhrase(phrase string, t MnemonicType, path string) (*crypto.Keypair, error) {
	defer log.Benchmark("derive " + t.String())()

	switch t {
	case Legacy:
		return DeriveLegacy(phrase)
	case Labs:
		if path == "" {
			path = DefaultLabsPath
		}
		return DeriveLabs(phrase, path)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
}

// ValidatePhrase checks word count, word-list membership and checksum
// without deriving any key.
func ValidatePhrase(phrase string, t MnemonicType) error {
	words := strings.Fields(phrase)
	switch t {
	case Legacy:
		if err := checkLegacyWords(words); err != nil {
			return err
		}
		return ValidateWords(words)
	case Labs:
		if len(words) != t.WordCount() {
			return &WordCountError{Got: len(words), Want: t.WordCount()}
		}
		if bad := unknownWords(words); len(bad) > 0 {
			return &UnknownWordsError{Words: bad}
		}
		return checkLabsMnemonic(strings.Join(words, " "))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
}
