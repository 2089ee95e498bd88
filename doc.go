// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

/*
Package chunkcopy implements the match-copy kernel of a block decompressor:
routines that copy or replicate byte runs under an explicit distance, using
8-byte words or 128-bit vector units instead of byte loops.

Every routine takes a destination slice with a cursor and returns the cursor
advanced by the number of bytes produced, so calls chain:

	out = chunkcopy.FastCopy(dst, out, literals, 0, len(literals))
	out = chunkcopy.ChunkCopy(dst, out, out-dist, dist, matchLen)

# Distance

ChunkCopy selects a routine from the distance and the length:

	len < 8,  dist > 0   SetBytes     short pattern replication
	len < 8,  dist == 0  CopyBytes    short plain copy
	len >= 8, dist == 1  ByteMemset   run of buf[out-1]
	len >= 8, dist > 1   ChunkMemset  pattern doubling, then chunked copy
	len >= 8, dist == 0  ChunkMemcpy  chunked plain copy

For dist > 0 the dist bytes behind the cursor must already hold valid output;
they are the pattern being repeated.

# Contract

Routines do not return errors. Passing a length or distance outside a routine's
domain (for example 8 bytes to CopyBytes) is a contract violation: with the
chunkcopy_debug build tag it panics with a description, otherwise the result is
unspecified and only Go's bounds checks apply. CopyBackRef and CopyLiterals are
checked wrappers for cursors that come from untrusted input.

No routine writes past out+len. Buffer and BufferPool still reserve width-1
bytes of slack past every block so that callers may hand the kernel windows
that end at the logical boundary without further checks.

# Width

The chunk width is resolved once per Kernel. Default uses DetectedWidth: 16 on
amd64 and arm64 (SSE2 / ASIMD, detected with golang.org/x/sys/cpu), 8 elsewhere,
or 8 when CHUNKCOPY_NO_SIMD is set. New builds a kernel for a specific width:

	k, err := chunkcopy.New(&chunkcopy.Options{Width: chunkcopy.Width8})

SafeCopy compares the two cursors' addresses and falls back to a byte loop when
they are closer than the kernel width, which makes it safe for aliasing windows.
*/
package chunkcopy
