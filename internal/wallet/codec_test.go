package wallet

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
)

func repeatWords(word string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = word
	}
	return out
}

func TestWordList(t *testing.T) {
	list := wordlists.English
	if len(list) != WordListSize {
		t.Fatalf("word list length = %d, want %d", len(list), WordListSize)
	}
	if list[0] != "abandon" || list[WordListSize-1] != "zoo" {
		t.Errorf("word list bounds = %q..%q, want abandon..zoo", list[0], list[WordListSize-1])
	}

	seen := make(map[string]bool, len(list))
	for i, w := range list {
		if seen[w] {
			t.Fatalf("duplicate word %q", w)
		}
		seen[w] = true
		if idx, ok := WordIndex(w); !ok || idx != i {
			t.Fatalf("WordIndex(%q) = %d, %v, want %d, true", w, idx, ok, i)
		}
	}
}

func TestWordIndex_Unknown(t *testing.T) {
	if _, ok := WordIndex("notaword"); ok {
		t.Error("WordIndex(notaword) should not be found")
	}
}

func TestEncodeEntropy_ZeroVectors(t *testing.T) {
	tests := []struct {
		name string
		size int
		want string
	}{
		{"16 bytes", 16, strings.Repeat("abandon ", 11) + "about"},
		{"32 bytes", 32, strings.Repeat("abandon ", 23) + "art"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := EncodeEntropy(make([]byte, tt.size))
			if err != nil {
				t.Fatalf("EncodeEntropy() error: %v", err)
			}
			if got := strings.Join(words, " "); got != tt.want {
				t.Errorf("EncodeEntropy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeEntropy_MatchesBIP39(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		for i := 0; i < 20; i++ {
			entropy := make([]byte, size)
			if _, err := rand.Read(entropy); err != nil {
				t.Fatalf("rand: %v", err)
			}
			words, err := EncodeEntropy(entropy)
			if err != nil {
				t.Fatalf("EncodeEntropy(%d bytes) error: %v", size, err)
			}
			want, err := bip39.NewMnemonic(entropy)
			if err != nil {
				t.Fatalf("bip39.NewMnemonic() error: %v", err)
			}
			if got := strings.Join(words, " "); got != want {
				t.Fatalf("EncodeEntropy(%x) = %q, want %q", entropy, got, want)
			}
		}
	}
}

func TestEncodeEntropy_WordCount(t *testing.T) {
	for size, want := range map[int]int{16: 12, 20: 15, 24: 18, 28: 21, 32: 24} {
		words, err := EncodeEntropy(bytes.Repeat([]byte{0xa5}, size))
		if err != nil {
			t.Fatalf("EncodeEntropy(%d bytes) error: %v", size, err)
		}
		if len(words) != want {
			t.Errorf("EncodeEntropy(%d bytes) word count = %d, want %d", size, len(words), want)
		}
	}
}

func TestEncodeEntropy_InvalidLength(t *testing.T) {
	for _, size := range []int{0, 8, 15, 17, 30, 33, 64} {
		_, err := EncodeEntropy(make([]byte, size))
		if !errors.Is(err, ErrEntropyLength) {
			t.Errorf("EncodeEntropy(%d bytes) error = %v, want ErrEntropyLength", size, err)
		}
	}
}

func TestDecodeWords_RoundTrip(t *testing.T) {
	for _, size := range []int{16, 32} {
		for i := 0; i < 50; i++ {
			entropy := make([]byte, size)
			if _, err := rand.Read(entropy); err != nil {
				t.Fatalf("rand: %v", err)
			}
			words, err := EncodeEntropy(entropy)
			if err != nil {
				t.Fatalf("EncodeEntropy() error: %v", err)
			}
			got, err := DecodeWords(words)
			if err != nil {
				t.Fatalf("DecodeWords(%q) error: %v", words, err)
			}
			if !bytes.Equal(got, entropy) {
				t.Fatalf("DecodeWords() = %x, want %x", got, entropy)
			}
		}
	}
}

func TestDecodeWords_ChecksumBitFlip(t *testing.T) {
	entropy := bytes.Repeat([]byte{0x3c}, LegacyEntropySize)
	words, err := EncodeEntropy(entropy)
	if err != nil {
		t.Fatalf("EncodeEntropy() error: %v", err)
	}

	// The last word carries 3 entropy bits and the 8 checksum bits.
	last := len(words) - 1
	idx, _ := WordIndex(words[last])
	for bit := 0; bit < 8; bit++ {
		tampered := append([]string(nil), words...)
		tampered[last] = wordListAt(idx ^ (1 << bit))

		_, err := DecodeWords(tampered)
		if !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("flip checksum bit %d: error = %v, want ErrChecksumMismatch", bit, err)
		}
	}
}

func wordListAt(i int) string {
	return wordlists.English[i]
}

func TestDecodeWords_Errors(t *testing.T) {
	valid := strings.Fields(strings.Repeat("abandon ", 23) + "art")

	tests := []struct {
		name  string
		words []string
		want  error
	}{
		{"empty", nil, ErrWordCount},
		{"11 words", repeatWords("abandon", 11), ErrWordCount},
		{"13 words", repeatWords("abandon", 13), ErrWordCount},
		{"25 words", repeatWords("abandon", 25), ErrWordCount},
		{"unknown word", append(append([]string(nil), valid[:23]...), "bogus"), ErrUnknownWords},
		{"bad checksum", repeatWords("abandon", 24), ErrChecksumMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWords(tt.words)
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeWords() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateWords(t *testing.T) {
	if err := ValidateWords(strings.Fields(strings.Repeat("abandon ", 11) + "about")); err != nil {
		t.Errorf("ValidateWords(abandon..about) error: %v", err)
	}
	if err := ValidateWords(repeatWords("abandon", 12)); !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("ValidateWords(abandon x12) error = %v, want ErrChecksumMismatch", err)
	}
}

func TestBitCursor(t *testing.T) {
	cur := bitCursor{buf: []byte{0b10110011, 0b01000000}, total: 11}

	v, ok := cur.next(3)
	if !ok || v != 0b101 {
		t.Fatalf("next(3) = %b, %v, want 101, true", v, ok)
	}
	v, ok = cur.next(8)
	if !ok || v != 0b10011010 {
		t.Fatalf("next(8) = %b, %v, want 10011010, true", v, ok)
	}
	if _, ok := cur.next(1); ok {
		t.Error("next past total should report false")
	}
}

func TestBitWriter(t *testing.T) {
	w := bitWriter{buf: make([]byte, 2)}
	w.write(0b101, 3)
	w.write(0b10011010, 8)

	if w.buf[0] != 0b10110011 || w.buf[1] != 0b01000000 {
		t.Errorf("buf = %08b %08b, want 10110011 01000000", w.buf[0], w.buf[1])
	}
	if w.pos != 11 {
		t.Errorf("pos = %d, want 11", w.pos)
	}
}
