// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import "errors"

// Sentinel errors for kernel construction and the checked copy entry points.
// Kernel routines themselves never return errors; see the package documentation.
var (
	// ErrUnsupportedWidth is returned when a kernel is requested with a chunk width
	// that is not 8 or 16, or with 16 on a CPU without 128-bit vector loads.
	ErrUnsupportedWidth = errors.New("unsupported chunk width")
	// ErrInputOverrun is returned when a literal copy would read past the end of the input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when a copy would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrInvalidDistance is returned when a back-reference distance is not positive.
	ErrInvalidDistance = errors.New("invalid back-reference distance")
	// ErrInvalidLength is returned when a copy length is negative.
	ErrInvalidLength = errors.New("invalid copy length")
)
