package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"strings"

	"github.com/Klingon-tech/seed-converter/pkg/crypto"
	"golang.org/x/crypto/pbkdf2"
)

// Legacy scheme parameters. These are fixed by existing wallets and must
// not change.
const (
	LegacyWordCount   = 24
	LegacyEntropySize = 32
	LegacyIterations  = 100_000
	LegacySalt        = "TON default seed"
)

// GenerateLegacyWords encodes 256 bits of entropy as a 24-word legacy phrase.
func GenerateLegacyWords(entropy [LegacyEntropySize]byte) []string {
	defer crypto.Wipe(entropy[:])
	return encodeEntropy(entropy[:])
}

// DeriveLegacy derives the single keypair of a 24-word legacy phrase.
// The checksum is not verified here; use ValidatePhrase for that.
func DeriveLegacy(phrase string) (*crypto.Keypair, error) {
	words := strings.Fields(phrase)
	if err := checkLegacyWords(words); err != nil {
		return nil, err
	}

	seed := legacySeed(words)
	defer crypto.Wipe(seed)

	kp, err := crypto.KeypairFromSecret(seed[:crypto.SecretKeySize])
	if err != nil {
		return nil, fmt.Errorf("legacy keypair: %w", err)
	}
	return kp, nil
}

// checkLegacyWords enforces the word count and word-list membership.
func checkLegacyWords(words []string) error {
	if len(words) != LegacyWordCount {
		return &WordCountError{Got: len(words), Want: LegacyWordCount}
	}
	if bad := unknownWords(words); len(bad) > 0 {
		return &UnknownWordsError{Words: bad}
	}
	return nil
}

// legacyEntropy expands the phrase to 64 bytes as HMAC-SHA512 keyed with the
// space-joined phrase over an empty message.
func legacyEntropy(words []string) []byte {
	key := []byte(strings.Join(words, " "))
	defer crypto.Wipe(key)

	mac := hmac.New(sha512.New, key)
	return mac.Sum(nil)
}

// legacySeed is PBKDF2-HMAC-SHA512(legacyEntropy, LegacySalt, 100000 rounds).
func legacySeed(words []string) []byte {
	entropy := legacyEntropy(words)
	defer crypto.Wipe(entropy)

	return pbkdf2.Key(entropy, []byte(LegacySalt), LegacyIterations, SeedSize, sha512.New)
}
