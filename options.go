// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import "go.uber.org/zap"

// Options configures a Kernel.
// Width selects the chunk width; Logger receives construction-time diagnostics.
type Options struct {
	// Width is the chunk width in bytes (WidthAuto = widest the CPU supports,
	// honoring CHUNKCOPY_NO_SIMD).
	Width Width
	// Logger overrides the package logger for this kernel (nil = Logger()).
	Logger *zap.Logger
}

// DefaultOptions returns options that auto-detect the chunk width.
func DefaultOptions() *Options {
	return &Options{Width: WidthAuto}
}
