package crypto

import "runtime"

// Wipe zeroes the provided buffer. Best-effort: the runtime may already
// have copied the data elsewhere.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
