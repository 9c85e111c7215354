package wallet

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below unwrap to one of these so callers
// can match with errors.Is.
var (
	ErrUnknownType      = errors.New("unknown mnemonic type (neither `legacy` nor `bip39`)")
	ErrWordCount        = errors.New("bad words number")
	ErrUnknownWords     = errors.New("bad words in wordlist")
	ErrChecksumMismatch = errors.New("mnemonic checksum mismatch")
	ErrInvalidMnemonic  = errors.New("invalid mnemonic")
	ErrEntropyLength    = errors.New("invalid entropy length")
	ErrEntropySource    = errors.New("failed to generate random bytes")
	ErrInvalidPath      = errors.New("invalid derivation path")
	ErrInvalidChildKey  = errors.New("invalid derived child key")
)

// WordCountError reports a phrase with the wrong number of words.
// Want is zero when several counts are acceptable.
type WordCountError struct {
	Got  int
	Want int
}

func (e *WordCountError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("%s: %d, expected one of 12, 15, 18, 21, 24", ErrWordCount, e.Got)
	}
	return fmt.Sprintf("%s: %d, %d expected", ErrWordCount, e.Got, e.Want)
}

func (e *WordCountError) Unwrap() error { return ErrWordCount }

// UnknownWordsError lists every distinct phrase word missing from the word list,
// in the order they first appear.
type UnknownWordsError struct {
	Words []string
}

func (e *UnknownWordsError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownWords, e.Words)
}

func (e *UnknownWordsError) Unwrap() error { return ErrUnknownWords }

// PathError reports a malformed or out-of-range derivation path.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidPath, e.Path, e.Reason)
}

func (e *PathError) Unwrap() error { return ErrInvalidPath }
