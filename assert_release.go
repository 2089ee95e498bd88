// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

//go:build !chunkcopy_debug

package chunkcopy

const debugAssertions = false

// assertf is a no-op in release builds; slice bounds checks remain the only guard.
func assertf(bool, string, ...any) {}
