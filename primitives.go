// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import "encoding/binary"

// Fixed-width copy primitives. Each one copies exactly its width from
// src[from:] to dst[out:] and returns out advanced by that width.
// Every load completes before the matching store, so dst and src may be
// the same slice with overlapping windows.

func copy1(dst []byte, out int, src []byte, from int) int {
	dst[out] = src[from]
	return out + 1
}

func copy2(dst []byte, out int, src []byte, from int) int {
	binary.LittleEndian.PutUint16(dst[out:], binary.LittleEndian.Uint16(src[from:]))
	return out + 2
}

func copy3(dst []byte, out int, src []byte, from int) int {
	out = copy1(dst, out, src, from)
	return copy2(dst, out, src, from+1)
}

func copy4(dst []byte, out int, src []byte, from int) int {
	binary.LittleEndian.PutUint32(dst[out:], binary.LittleEndian.Uint32(src[from:]))
	return out + 4
}

func copy5(dst []byte, out int, src []byte, from int) int {
	out = copy1(dst, out, src, from)
	return copy4(dst, out, src, from+1)
}

func copy6(dst []byte, out int, src []byte, from int) int {
	out = copy2(dst, out, src, from)
	return copy4(dst, out, src, from+2)
}

func copy7(dst []byte, out int, src []byte, from int) int {
	out = copy3(dst, out, src, from)
	return copy4(dst, out, src, from+3)
}

func copy8(dst []byte, out int, src []byte, from int) int {
	binary.LittleEndian.PutUint64(dst[out:], binary.LittleEndian.Uint64(src[from:]))
	return out + 8
}

// copy16 moves one 128-bit unit. The array conversion compiles to a single
// unaligned vector load and store on amd64 and arm64.
func copy16(dst []byte, out int, src []byte, from int) int {
	v := [16]byte(src[from : from+16])
	*(*[16]byte)(dst[out : out+16]) = v
	return out + 16
}

// fill8 stores the 8-byte word w at dst[out:].
func fill8(dst []byte, out int, w uint64) int {
	binary.LittleEndian.PutUint64(dst[out:], w)
	return out + 8
}

// fill16 stores the 128-bit unit v at dst[out:].
func fill16(dst []byte, out int, v *[16]byte) int {
	*(*[16]byte)(dst[out : out+16]) = *v
	return out + 16
}

// splat8 widens c to an 8-byte word of identical bytes.
func splat8(c byte) uint64 {
	return uint64(c) * 0x0101010101010101
}

// splat16 widens c to a 16-byte unit of identical bytes.
func splat16(c byte) [16]byte {
	var v [16]byte
	w := splat8(c)
	binary.LittleEndian.PutUint64(v[:8], w)
	binary.LittleEndian.PutUint64(v[8:], w)
	return v
}
