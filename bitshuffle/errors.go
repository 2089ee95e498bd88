// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package bitshuffle

import (
	"errors"
	"fmt"
)

// Result codes returned by TransBitElem and UntransBitElem on failure.
const (
	// CodeScratchTooSmall: the scratch buffer holds fewer than ScratchSize bytes.
	CodeScratchTooSmall int64 = -1
	// CodeSizeNotMultipleOf8: the element count is not a multiple of 8.
	CodeSizeNotMultipleOf8 int64 = -80
	// CodeElemSize: the element width is below one byte.
	CodeElemSize int64 = -81
	// CodeBufferTooSmall: the input or output holds fewer than size*elemSize bytes.
	CodeBufferTooSmall int64 = -82
)

// Sentinel errors matching the result codes.
var (
	ErrScratchTooSmall    = errors.New("bitshuffle: scratch buffer too small")
	ErrSizeNotMultipleOf8 = errors.New("bitshuffle: element count not a multiple of 8")
	ErrElemSize           = errors.New("bitshuffle: unsupported element size")
	ErrBufferTooSmall     = errors.New("bitshuffle: buffer too small")
)

// CodeError maps a result of TransBitElem or UntransBitElem to an error.
// Non-negative results map to nil.
func CodeError(code int64) error {
	switch {
	case code >= 0:
		return nil
	case code == CodeScratchTooSmall:
		return ErrScratchTooSmall
	case code == CodeSizeNotMultipleOf8:
		return ErrSizeNotMultipleOf8
	case code == CodeElemSize:
		return ErrElemSize
	case code == CodeBufferTooSmall:
		return ErrBufferTooSmall
	default:
		return fmt.Errorf("bitshuffle: failed with code %d", code)
	}
}
