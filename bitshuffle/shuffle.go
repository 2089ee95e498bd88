// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package bitshuffle

import (
	"fmt"

	"github.com/woozymasta/chunkcopy"
)

// scratchPool holds transpose scratch blocks between calls.
var scratchPool = chunkcopy.NewBufferPool(chunkcopy.WidthAuto)

// Shuffle applies the bit transposition to a whole block as a pre-compression
// filter. The largest prefix of src holding a multiple of 8 elements is
// transposed; the trailing bytes are copied unchanged. dst and src must not
// overlap. Returns the number of bytes written, len(src).
func Shuffle(dst, src []byte, elemSize int) (int, error) {
	return filter(dst, src, elemSize, TransBitElem)
}

// Unshuffle inverts Shuffle.
func Unshuffle(dst, src []byte, elemSize int) (int, error) {
	return filter(dst, src, elemSize, UntransBitElem)
}

// filter runs one transposition direction over the 8-element-aligned prefix.
func filter(dst, src []byte, elemSize int, fn func(in, out []byte, size, elemSize int, tmp []byte) int64) (int, error) {
	if elemSize < 1 {
		return 0, ErrElemSize
	}

	if len(dst) < len(src) {
		return 0, fmt.Errorf("%w: dst %d bytes, src %d bytes", ErrBufferTooSmall, len(dst), len(src))
	}

	size := len(src) / elemSize
	size -= size % 8
	nbytes := size * elemSize

	if size > 0 {
		scratch := scratchPool.Get(ScratchSize(size, elemSize))
		code := fn(src, dst, size, elemSize, scratch.Bytes())
		scratchPool.Put(scratch)

		if err := CodeError(code); err != nil {
			return 0, err
		}
	}

	chunkcopy.SafeCopy(dst, nbytes, src, nbytes, len(src)-nbytes)

	return len(src), nil
}
