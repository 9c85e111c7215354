package wallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Klingon-tech/seed-converter/pkg/crypto"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip32"
)

// BIP-44 derivation path constants.
// Full path: m/44'/CoinType'/account'/change/index
const (
	// PurposeBIP44 is the BIP-44 purpose field (hardened).
	PurposeBIP44 = bip32.FirstHardenedChild + 44

	// CoinTypeTON is the SLIP-44 coin type for TON (hardened).
	CoinTypeTON = bip32.FirstHardenedChild + 396
)

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices.
// Intermediate keys are wiped once their child exists.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if current != k {
			current.Zero()
		}
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// PrivateKeyBytes returns the raw 32-byte private scalar, left-padded.
// The scalar must be a valid secp256k1 private key (non-zero, below the
// group order).
func (k *HDKey) PrivateKeyBytes() ([]byte, error) {
	if !k.IsPrivate() {
		return nil, fmt.Errorf("%w: public key only", ErrInvalidChildKey)
	}
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		raw = raw[1:]
	}
	if len(raw) > crypto.SecretKeySize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidChildKey, len(raw))
	}

	out := make([]byte, crypto.SecretKeySize)
	copy(out[crypto.SecretKeySize-len(raw):], raw)

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(out)
	zero := scalar.IsZero()
	scalar.Zero()
	if overflow || zero {
		crypto.Wipe(out)
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidChildKey)
	}
	return out, nil
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Zero wipes the key material and chain code.
func (k *HDKey) Zero() {
	crypto.Wipe(k.key.Key)
	crypto.Wipe(k.key.ChainCode)
}

// ParsePath parses a derivation path such as m/44'/396'/0'/0/0 into child
// indices. A trailing ', h or H marks a hardened segment. "m" alone yields
// the master key.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(strings.TrimSpace(path), "/")
	if segments[0] != "m" {
		return nil, &PathError{Path: path, Reason: "must start with m"}
	}

	indices := make([]uint32, 0, len(segments)-1)
	for i, seg := range segments[1:] {
		hardened := false
		switch {
		case strings.HasSuffix(seg, "'"), strings.HasSuffix(seg, "h"), strings.HasSuffix(seg, "H"):
			hardened = true
			seg = seg[:len(seg)-1]
		}
		if seg == "" {
			return nil, &PathError{Path: path, Reason: fmt.Sprintf("segment %d is empty", i+1)}
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, &PathError{Path: path, Reason: fmt.Sprintf("segment %d: %q is not a number", i+1, seg)}
		}
		if n >= uint64(bip32.FirstHardenedChild) {
			return nil, &PathError{Path: path, Reason: fmt.Sprintf("segment %d: index %d out of range", i+1, n)}
		}
		idx := uint32(n)
		if hardened {
			idx += bip32.FirstHardenedChild
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// FormatPath renders child indices back into m/... notation using ' for
// hardened segments.
func FormatPath(indices []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range indices {
		b.WriteByte('/')
		if idx >= bip32.FirstHardenedChild {
			b.WriteString(strconv.FormatUint(uint64(idx-bip32.FirstHardenedChild), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(idx), 10))
	}
	return b.String()
}
