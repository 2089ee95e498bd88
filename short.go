// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import "encoding/binary"

// copyBytes copies n (< 8) bytes from src[from:] to dst[out:] and returns out+n.
func copyBytes(dst []byte, out int, src []byte, from, n int) int {
	if debugAssertions {
		assertf(n >= 0 && n < chunk8, "copyBytes length %d not in [0,8)", n)
	}

	switch n {
	case 7:
		return copy7(dst, out, src, from)
	case 6:
		return copy6(dst, out, src, from)
	case 5:
		return copy5(dst, out, src, from)
	case 4:
		return copy4(dst, out, src, from)
	case 3:
		return copy3(dst, out, src, from)
	case 2:
		return copy2(dst, out, src, from)
	case 1:
		return copy1(dst, out, src, from)
	default:
		return out
	}
}

// setBytes writes n (< 8) bytes at buf[out:] that repeat the dist-byte pattern
// starting at buf[from:]. The pattern window ends exactly at out, so from == out-dist
// for every caller. Returns out+n.
func setBytes(buf []byte, out, from, dist, n int) int {
	if debugAssertions {
		assertf(n >= 0 && n < chunk8, "setBytes length %d not in [0,8)", n)
		assertf(dist > 0, "setBytes distance %d must be positive", dist)
	}

	if dist >= n {
		return copyBytes(buf, out, buf, from, n)
	}

	switch dist {
	case 6:
		// n == 7
		out = copy6(buf, out, buf, from)
		return copy1(buf, out, buf, from)

	case 5:
		// n in {6,7}
		out = copy5(buf, out, buf, from)
		return copyBytes(buf, out, buf, from, n-5)

	case 4:
		// n in {5,6,7}
		out = copy4(buf, out, buf, from)
		return copyBytes(buf, out, buf, from, n-4)

	case 3:
		// After the first period, from[0:4] already holds a valid 4-byte prefix.
		out = copy3(buf, out, buf, from)
		return copyBytes(buf, out, buf, from, n-3)

	case 2:
		out = copy2(buf, out, buf, from)
		switch n {
		case 7:
			out = copy4(buf, out, buf, from)
			return copy1(buf, out, buf, from)
		case 6:
			return copy4(buf, out, buf, from)
		case 5:
			out = copy2(buf, out, buf, from)
			return copy1(buf, out, buf, from)
		case 4:
			return copy2(buf, out, buf, from)
		default:
			return copy1(buf, out, buf, from)
		}

	case 1:
		return fillBytes(buf, out, buf[from], n)
	}

	if debugAssertions {
		assertf(false, "setBytes unsupported distance %d for length %d", dist, n)
	}

	return out
}

// fillBytes writes n (< 8) copies of c at buf[out:] using the widest stores
// that fit inside n, and returns out+n.
func fillBytes(buf []byte, out int, c byte, n int) int {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], splat8(c))

	return copyBytes(buf, out, tmp[:], 0, n)
}
