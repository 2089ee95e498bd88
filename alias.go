// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import "unsafe"

// addrDistance returns |&src[from] - &dst[out]| measured in memory, so that
// windows of two different slices over the same backing array are compared
// correctly. Neither cursor is dereferenced; both may equal their slice length.
func addrDistance(dst []byte, out int, src []byte, from int) uintptr {
	d := uintptr(unsafe.Pointer(unsafe.SliceData(dst))) + uintptr(out)
	s := uintptr(unsafe.Pointer(unsafe.SliceData(src))) + uintptr(from)
	if d > s {
		return d - s
	}

	return s - d
}
