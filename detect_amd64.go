// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

//go:build amd64

package chunkcopy

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is part of the amd64 baseline; the check keeps detection explicit.
	hasVector = cpu.X86.HasSSE2
	detectedWidth = resolveDetectedWidth(hasVector)
}
