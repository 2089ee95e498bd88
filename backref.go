// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

// CopyBackRef copies length bytes from dst[outputPos-dist:] to dst[outputPos:]
// with byte-by-byte semantics: when dist < length the source overlaps the output
// and the dist-byte pattern repeats (dist 1 is a run of one byte).
// The cursors are validated before the default kernel runs, so malformed
// back-references from untrusted streams surface as errors instead of panics.
func CopyBackRef(dst []byte, outputPos, dist, length int) error {
	return Default().CopyBackRef(dst, outputPos, dist, length)
}

// CopyBackRef is the checked form of ChunkCopy for dist > 0.
func (k *Kernel) CopyBackRef(dst []byte, outputPos, dist, length int) error {
	if dist <= 0 {
		return ErrInvalidDistance
	}

	if length < 0 {
		return ErrInvalidLength
	}

	mPos := outputPos - dist
	if mPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	k.ChunkCopy(dst, outputPos, mPos, dist, length)

	return nil
}

// CopyLiterals copies length bytes from src[inputPos:] to dst[outputPos:].
// The two windows may alias; the copy goes through SafeCopy.
func CopyLiterals(dst []byte, outputPos int, src []byte, inputPos, length int) error {
	return Default().CopyLiterals(dst, outputPos, src, inputPos, length)
}

// CopyLiterals is the checked form of SafeCopy.
func (k *Kernel) CopyLiterals(dst []byte, outputPos int, src []byte, inputPos, length int) error {
	if length < 0 {
		return ErrInvalidLength
	}

	if length == 0 {
		return nil
	}

	if inputPos < 0 || inputPos+length > len(src) {
		return ErrInputOverrun
	}

	if outputPos < 0 || outputPos+length > len(dst) {
		return ErrOutputOverrun
	}

	k.SafeCopy(dst, outputPos, src, inputPos, length)

	return nil
}
