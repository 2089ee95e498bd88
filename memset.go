// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

// byteMemset fills buf[out:out+n] (n >= 8) with buf[out-1] using 8-byte stores
// and returns out+n. This is the distance-1 back-reference: a run of one byte.
func byteMemset(buf []byte, out, n int) int {
	if debugAssertions {
		assertf(n >= chunk8, "byteMemset length %d below chunk width %d", n, chunk8)
		assertf(out > 0, "byteMemset needs one byte before cursor %d", out)
	}

	w := splat8(buf[out-1])
	rem := n % chunk8
	fill8(buf, out, w)
	out += rem

	chunks := n / chunk8
	for i := chunks % unroll; i > 0; i-- {
		out = fill8(buf, out, w)
	}

	for chunks -= chunks % unroll; chunks > 0; chunks -= unroll {
		out = fill8(buf, out, w)
		out = fill8(buf, out, w)
		out = fill8(buf, out, w)
		out = fill8(buf, out, w)
		out = fill8(buf, out, w)
		out = fill8(buf, out, w)
		out = fill8(buf, out, w)
		out = fill8(buf, out, w)
	}

	return out
}

// byteMemset16 is byteMemset with 128-bit stores. Requires n >= 16.
func byteMemset16(buf []byte, out, n int) int {
	if debugAssertions {
		assertf(n >= chunk16, "byteMemset16 length %d below chunk width %d", n, chunk16)
		assertf(out > 0, "byteMemset16 needs one byte before cursor %d", out)
	}

	v := splat16(buf[out-1])
	rem := n % chunk16
	fill16(buf, out, &v)
	out += rem

	chunks := n / chunk16
	for i := chunks % unroll; i > 0; i-- {
		out = fill16(buf, out, &v)
	}

	for chunks -= chunks % unroll; chunks > 0; chunks -= unroll {
		out = fill16(buf, out, &v)
		out = fill16(buf, out, &v)
		out = fill16(buf, out, &v)
		out = fill16(buf, out, &v)
		out = fill16(buf, out, &v)
		out = fill16(buf, out, &v)
		out = fill16(buf, out, &v)
		out = fill16(buf, out, &v)
	}

	return out
}

// chunkMemset repeats the dist-byte pattern that ends at buf[out] until n bytes
// are written, and returns out+n. Requires n >= 8 and dist >= 1.
//
// The pattern is doubled in place: every pass copies one 8-byte chunk from the
// fixed pattern start, then advances the cursor by dist and doubles dist, since
// buf[from:out] now holds two periods. Once the period reaches the chunk width,
// plain chunked copying can no longer read bytes it has not written yet, and
// the bulk copier takes over. The pattern start never moves, so from == out-dist
// holds after every pass.
func chunkMemset(buf []byte, out, dist, n int, wide bool) int {
	from := out - dist

	if debugAssertions {
		assertf(n >= chunk8, "chunkMemset length %d below chunk width %d", n, chunk8)
		assertf(dist > 0 && from >= 0, "chunkMemset distance %d behind cursor %d", dist, out)
	}

	if dist >= n {
		return bulkCopy(buf, out, from, dist, n, wide)
	}

	for dist < n && dist < chunk8 {
		copy8(buf, out, buf, from)

		out += dist
		n -= dist
		dist += dist

		if n < chunk8 {
			return setBytes(buf, out, from, dist, n)
		}
	}

	return bulkCopy(buf, out, from, dist, n, wide)
}

// bulkCopy finishes a back-reference whose period dist is at least one 8-byte
// chunk, choosing the 128-bit copier when the period and length allow it.
func bulkCopy(buf []byte, out, from, dist, n int, wide bool) int {
	if wide && dist >= chunk16 && n >= chunk16 {
		return chunkMemcpy16(buf, out, buf, from, n)
	}

	return chunkMemcpy(buf, out, buf, from, n)
}
