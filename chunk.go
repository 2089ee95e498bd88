// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

// chunkMemcpy copies n (>= 8) bytes from src[from:] to dst[out:] in 8-byte chunks
// and returns out+n.
//
// One chunk is copied up front so that the rest of the run is a whole number of
// chunks: the cursors then skip n%8 bytes and the loop re-copies the overlap with
// the primed chunk. Nothing is written past out+n. Copying is strictly ascending,
// so src and dst may share a slice when the windows are at least 8 bytes apart.
func chunkMemcpy(dst []byte, out int, src []byte, from, n int) int {
	if debugAssertions {
		assertf(n >= chunk8, "chunkMemcpy length %d below chunk width %d", n, chunk8)
	}

	rem := n % chunk8
	copy8(dst, out, src, from)

	out += rem
	from += rem

	chunks := n / chunk8
	for i := chunks % unroll; i > 0; i-- {
		out = copy8(dst, out, src, from)
		from += chunk8
	}

	for chunks -= chunks % unroll; chunks > 0; chunks -= unroll {
		out = copy8(dst, out, src, from)
		out = copy8(dst, out, src, from+8)
		out = copy8(dst, out, src, from+16)
		out = copy8(dst, out, src, from+24)
		out = copy8(dst, out, src, from+32)
		out = copy8(dst, out, src, from+40)
		out = copy8(dst, out, src, from+48)
		out = copy8(dst, out, src, from+56)
		from += unroll * chunk8
	}

	return out
}

// chunkMemcpy16 is chunkMemcpy with 128-bit units. Requires n >= 16; shared
// windows must be at least 16 bytes apart.
func chunkMemcpy16(dst []byte, out int, src []byte, from, n int) int {
	if debugAssertions {
		assertf(n >= chunk16, "chunkMemcpy16 length %d below chunk width %d", n, chunk16)
	}

	rem := n % chunk16
	copy16(dst, out, src, from)

	out += rem
	from += rem

	chunks := n / chunk16
	for i := chunks % unroll; i > 0; i-- {
		out = copy16(dst, out, src, from)
		from += chunk16
	}

	for chunks -= chunks % unroll; chunks > 0; chunks -= unroll {
		out = copy16(dst, out, src, from)
		out = copy16(dst, out, src, from+16)
		out = copy16(dst, out, src, from+32)
		out = copy16(dst, out, src, from+48)
		out = copy16(dst, out, src, from+64)
		out = copy16(dst, out, src, from+80)
		out = copy16(dst, out, src, from+96)
		out = copy16(dst, out, src, from+112)
		from += unroll * chunk16
	}

	return out
}
