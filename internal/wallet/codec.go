package wallet

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/Klingon-tech/seed-converter/pkg/crypto"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Word-codec constants.
const (
	// WordBits is the number of bits encoded by a single word.
	WordBits = 11

	// WordListSize is the number of words in the list (2^WordBits).
	WordListSize = 1 << WordBits

	minEntropySize = 16
	maxEntropySize = 32
)

var (
	wordIndexOnce sync.Once
	wordIndex     map[string]int
)

// WordIndex returns the position of word in the word list.
func WordIndex(word string) (int, bool) {
	wordIndexOnce.Do(func() {
		wordIndex = make(map[string]int, WordListSize)
		for i, w := range wordlists.English {
			wordIndex[w] = i
		}
	})
	idx, ok := wordIndex[word]
	return idx, ok
}

// unknownWords returns the distinct words not in the word list, first-seen order.
func unknownWords(words []string) []string {
	var bad []string
	seen := make(map[string]struct{})
	for _, w := range words {
		if _, ok := WordIndex(w); ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		bad = append(bad, w)
	}
	return bad
}

// bitCursor reads fixed-width groups MSB-first from a byte buffer.
type bitCursor struct {
	buf   []byte
	pos   int // next bit to read
	total int // number of readable bits
}

// next reads n bits (n <= 32). It returns false once fewer than n bits remain.
func (c *bitCursor) next(n int) (uint32, bool) {
	if c.total-c.pos < n {
		return 0, false
	}
	var v uint32
	for i := 0; i < n; i++ {
		bit := (c.buf[c.pos/8] >> (7 - uint(c.pos%8))) & 1
		v = v<<1 | uint32(bit)
		c.pos++
	}
	return v, true
}

// bitWriter appends fixed-width groups MSB-first into a byte buffer.
type bitWriter struct {
	buf []byte
	pos int
}

func (w *bitWriter) write(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			w.buf[w.pos/8] |= 1 << (7 - uint(w.pos%8))
		}
		w.pos++
	}
}

// checksumBits returns the checksum width for an entropy of size bytes.
func checksumBits(size int) int {
	return size * 8 / 32
}

func checkEntropySize(size int) error {
	if size < minEntropySize || size > maxEntropySize || size%4 != 0 {
		return fmt.Errorf("%w: %d bytes, want a multiple of 4 in [%d, %d]",
			ErrEntropyLength, size, minEntropySize, maxEntropySize)
	}
	return nil
}

// EncodeEntropy converts entropy into words: the leading len*8/32 bits of
// SHA-256(entropy) are appended as a checksum and the result is split into
// 11-bit word indices.
func EncodeEntropy(entropy []byte) ([]string, error) {
	if err := checkEntropySize(len(entropy)); err != nil {
		return nil, err
	}
	return encodeEntropy(entropy), nil
}

// encodeEntropy assumes a size accepted by checkEntropySize.
func encodeEntropy(entropy []byte) []string {
	sum := sha256.Sum256(entropy)

	buf := make([]byte, len(entropy)+1)
	defer crypto.Wipe(buf)
	copy(buf, entropy)
	buf[len(entropy)] = sum[0]

	cur := bitCursor{buf: buf, total: len(entropy)*8 + checksumBits(len(entropy))}
	words := make([]string, 0, cur.total/WordBits)
	for {
		idx, ok := cur.next(WordBits)
		if !ok {
			break
		}
		words = append(words, wordlists.English[idx])
	}
	return words
}

// DecodeWords reverses EncodeEntropy and verifies the checksum.
func DecodeWords(words []string) ([]byte, error) {
	n := len(words)
	if n < 12 || n > 24 || n%3 != 0 {
		return nil, &WordCountError{Got: n}
	}
	if bad := unknownWords(words); len(bad) > 0 {
		return nil, &UnknownWordsError{Words: bad}
	}

	total := n * WordBits
	csBits := total / 33
	entBits := total - csBits

	w := bitWriter{buf: make([]byte, (total+7)/8)}
	defer crypto.Wipe(w.buf)
	for _, word := range words {
		idx, _ := WordIndex(word)
		w.write(uint32(idx), WordBits)
	}

	entropy := make([]byte, entBits/8)
	copy(entropy, w.buf)

	cur := bitCursor{buf: w.buf, pos: entBits, total: total}
	got, _ := cur.next(csBits)

	sum := sha256.Sum256(entropy)
	want := uint32(sum[0]) >> uint(8-csBits)
	if got != want {
		crypto.Wipe(entropy)
		return nil, ErrChecksumMismatch
	}
	return entropy, nil
}

// ValidateWords reports whether words decode with a valid checksum.
func ValidateWords(words []string) error {
	entropy, err := DecodeWords(words)
	if err != nil {
		return err
	}
	crypto.Wipe(entropy)
	return nil
}
