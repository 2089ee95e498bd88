// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package bitshuffle

import "encoding/binary"

// ScratchSize returns the scratch bytes TransBitElem and UntransBitElem need.
func ScratchSize(size, elemSize int) int {
	return size * elemSize
}

// TransBitElem transposes the bit matrix of size elements of elemSize bytes.
//
// Output row r = 8*k + m holds bit m (LSB first) of byte k of every element,
// packed eight elements per byte in element order. Rows are size/8 bytes long.
// tmp must hold ScratchSize(size, elemSize) bytes.
//
// Returns the number of bytes processed, size*elemSize, or a negative Code*.
func TransBitElem(in, out []byte, size, elemSize int, tmp []byte) int64 {
	nbytes, code := check(in, out, size, elemSize, tmp)
	if code < 0 {
		return code
	}

	transByteElem(in, tmp, size, elemSize)
	transBitByte(tmp, out, size, elemSize)

	return int64(nbytes)
}

// UntransBitElem inverts TransBitElem with the same arguments.
func UntransBitElem(in, out []byte, size, elemSize int, tmp []byte) int64 {
	nbytes, code := check(in, out, size, elemSize, tmp)
	if code < 0 {
		return code
	}

	untransBitByte(in, tmp, size, elemSize)
	untransByteElem(tmp, out, size, elemSize)

	return int64(nbytes)
}

// check validates arguments shared by both directions.
func check(in, out []byte, size, elemSize int, tmp []byte) (int, int64) {
	if elemSize < 1 {
		return 0, CodeElemSize
	}

	if size < 0 || size%8 != 0 {
		return 0, CodeSizeNotMultipleOf8
	}

	nbytes := size * elemSize
	if len(in) < nbytes || len(out) < nbytes {
		return 0, CodeBufferTooSmall
	}

	if len(tmp) < ScratchSize(size, elemSize) {
		return 0, CodeScratchTooSmall
	}

	return nbytes, 0
}

// transByteElem groups byte k of every element into row k: out[k*size+i] = in[i*elemSize+k].
func transByteElem(in, out []byte, size, elemSize int) {
	if elemSize == 1 {
		copy(out[:size], in[:size])
		return
	}

	for i := 0; i < size; i++ {
		elem := in[i*elemSize : i*elemSize+elemSize]
		for k, b := range elem {
			out[k*size+i] = b
		}
	}
}

// untransByteElem inverts transByteElem.
func untransByteElem(in, out []byte, size, elemSize int) {
	if elemSize == 1 {
		copy(out[:size], in[:size])
		return
	}

	for i := 0; i < size; i++ {
		elem := out[i*elemSize : i*elemSize+elemSize]
		for k := range elem {
			elem[k] = in[k*size+i]
		}
	}
}

// transBitByte splits every byte row of in (elemSize rows of size bytes) into
// eight bit rows of size/8 bytes.
func transBitByte(in, out []byte, size, elemSize int) {
	rowLen := size / 8
	for k := 0; k < elemSize; k++ {
		row := in[k*size : k*size+size]
		base := k * 8 * rowLen
		for g := 0; g < rowLen; g++ {
			x := transpose8x8(binary.LittleEndian.Uint64(row[g*8:]))
			for m := 0; m < 8; m++ {
				out[base+m*rowLen+g] = byte(x >> (8 * m))
			}
		}
	}
}

// untransBitByte inverts transBitByte.
func untransBitByte(in, out []byte, size, elemSize int) {
	rowLen := size / 8
	for k := 0; k < elemSize; k++ {
		row := out[k*size : k*size+size]
		base := k * 8 * rowLen
		for g := 0; g < rowLen; g++ {
			var x uint64
			for m := 0; m < 8; m++ {
				x |= uint64(in[base+m*rowLen+g]) << (8 * m)
			}
			binary.LittleEndian.PutUint64(row[g*8:], transpose8x8(x))
		}
	}
}

// transpose8x8 transposes an 8x8 bit matrix held one row per byte, row j in
// bits 8j..8j+7: bit m of byte j moves to bit j of byte m. It is its own inverse.
func transpose8x8(x uint64) uint64 {
	t := (x ^ (x >> 7)) & 0x00AA00AA00AA00AA
	x = x ^ t ^ (t << 7)
	t = (x ^ (x >> 14)) & 0x0000CCCC0000CCCC
	x = x ^ t ^ (t << 14)
	t = (x ^ (x >> 28)) & 0x00000000F0F0F0F0
	x = x ^ t ^ (t << 28)

	return x
}
