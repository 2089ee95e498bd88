// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import (
	"os"
	"strconv"
)

const (
	chunk8  = 8  // baseline word chunk
	chunk16 = 16 // 128-bit vector chunk
	unroll  = 8  // chunks per unrolled loop iteration
)

// Width is the number of bytes a bulk routine moves per widened load/store.
type Width int

const (
	// WidthAuto selects the widest width the CPU supports.
	WidthAuto Width = 0
	// Width8 is the baseline 64-bit word path, available everywhere.
	Width8 Width = chunk8
	// Width16 uses 128-bit vector units (SSE2 on amd64, ASIMD on arm64).
	Width16 Width = chunk16
)

// Valid reports whether w names a concrete chunk width.
func (w Width) Valid() bool {
	return w == Width8 || w == Width16
}

// Level returns the instruction level a width corresponds to.
func (w Width) Level() Level {
	if w == Width16 {
		return LevelVector
	}

	return LevelWord
}

// Level names the class of load/store instructions a kernel is built on.
type Level int

const (
	// LevelWord uses 64-bit general purpose loads and stores.
	LevelWord Level = iota
	// LevelVector uses 128-bit vector loads and stores.
	LevelVector
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelWord:
		return "word"
	case LevelVector:
		return "vector"
	default:
		return "unknown"
	}
}

// hasVector is set by init() in detect_*.go files.
var hasVector bool

// detectedWidth is the widest chunk width this process may use.
// Set by init() in detect_*.go files.
var detectedWidth = Width8

// HasVector reports whether the CPU provides 128-bit vector loads and stores.
// The result ignores the CHUNKCOPY_NO_SIMD override.
func HasVector() bool {
	return hasVector
}

// DetectedWidth returns the chunk width selected for this process.
func DetectedWidth() Width {
	return detectedWidth
}

// NoSimdEnv checks if the CHUNKCOPY_NO_SIMD environment variable is set.
// When set, kernels resolved with WidthAuto use the baseline word width.
func NoSimdEnv() bool {
	val := os.Getenv("CHUNKCOPY_NO_SIMD")
	if val == "" {
		return false
	}

	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}

// resolveDetectedWidth picks the process width from the vector flag and the env override.
func resolveDetectedWidth(vector bool) Width {
	if !vector {
		return Width8
	}

	if NoSimdEnv() {
		return Width8
	}

	return Width16
}
