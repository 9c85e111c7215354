package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"
)

// Key sizes in bytes.
const (
	SecretKeySize = ed25519.SeedSize
	PublicKeySize = ed25519.PublicKeySize
)

// ErrInvalidSecret is returned when bytes cannot form an ed25519 secret key.
var ErrInvalidSecret = errors.New("invalid secret key")

// Keypair is an ed25519 secret key and the public key derived from it.
// The zero value is not usable; build one with KeypairFromSecret.
type Keypair struct {
	secret [SecretKeySize]byte
	public [PublicKeySize]byte
}

// KeypairFromSecret builds a keypair from a 32-byte ed25519 secret (seed).
// The input slice is copied; callers may wipe it afterwards.
func KeypairFromSecret(secret []byte) (*Keypair, error) {
	if len(secret) != SecretKeySize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidSecret, SecretKeySize, len(secret))
	}

	priv := ed25519.NewKeyFromSeed(secret)
	defer Wipe(priv)

	kp := &Keypair{}
	copy(kp.secret[:], secret)
	copy(kp.public[:], priv[SecretKeySize:])
	return kp, nil
}

// Secret returns a copy of the 32-byte secret key.
func (kp *Keypair) Secret() []byte {
	out := make([]byte, SecretKeySize)
	copy(out, kp.secret[:])
	return out
}

// Public returns a copy of the 32-byte public key.
func (kp *Keypair) Public() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, kp.public[:])
	return out
}

// Zero securely zeroes the keypair memory.
func (kp *Keypair) Zero() {
	Wipe(kp.secret[:])
	Wipe(kp.public[:])
}
