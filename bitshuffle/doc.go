// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

// Package bitshuffle implements the bit-transposition filter that runs next to
// the copy kernel in a block compression pipeline.
//
// A buffer of size elements, each elemSize bytes wide, is treated as a bit
// matrix of size rows and 8*elemSize columns and transposed, so that equal bits
// of neighbouring elements end up adjacent and compress well. TransBitElem and
// UntransBitElem keep the integer result convention of the C library: the byte
// count on success, a negative code on failure (see CodeError).
package bitshuffle
