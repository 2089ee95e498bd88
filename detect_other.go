// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

//go:build !amd64 && !arm64

package chunkcopy

func init() {
	// Other architectures stay on the word path; 16-byte array moves are
	// split into smaller stores by the compiler there.
	hasVector = false
	detectedWidth = Width8
}
