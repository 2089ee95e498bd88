package chunkcopy

import "fmt"

// sentinel marks bytes a routine must leave untouched.
const sentinel = 0xEE

// allKernels covers both widths regardless of the host CPU; the 16-byte path is
// portable Go and only its speed depends on vector support.
func allKernels() []*Kernel {
	return []*Kernel{{width: Width8}, {width: Width16}}
}

// refCopy is the byte-at-a-time, left-to-right model every routine must match.
func refCopy(dst []byte, out int, src []byte, from, n int) {
	for i := 0; i < n; i++ {
		dst[out+i] = src[from+i]
	}
}

// patterned returns size bytes of a non-periodic sequence.
func patterned(size, seed int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(i*131 + seed*17 + 7)
	}

	return b
}

// guarded returns a buffer of prefix pattern bytes followed by n+tail sentinel bytes.
func guarded(prefix, n, tail, seed int) []byte {
	b := patterned(prefix+n+tail, seed)
	for i := prefix; i < len(b); i++ {
		b[i] = sentinel
	}

	return b
}

func caseName(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
