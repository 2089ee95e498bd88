// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

//go:build arm64

package chunkcopy

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD (NEON) is mandatory on ARMv8-A.
	hasVector = cpu.ARM64.HasASIMD
	detectedWidth = resolveDetectedWidth(hasVector)
}
