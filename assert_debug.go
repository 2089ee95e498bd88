// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

//go:build chunkcopy_debug

package chunkcopy

import "fmt"

// debugAssertions reports whether contract checks are compiled in.
const debugAssertions = true

// assertf panics with a formatted contract-violation message when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("chunkcopy: contract violation: "+format, args...))
	}
}
