// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Kernel is a set of copy routines bound to one chunk width.
// A Kernel is immutable and safe for concurrent use; concurrent calls must not
// write overlapping byte ranges.
type Kernel struct {
	width Width
}

var (
	defaultKernel     *Kernel
	defaultKernelOnce sync.Once
)

// Default returns the process-wide kernel built for DetectedWidth.
func Default() *Kernel {
	defaultKernelOnce.Do(func() {
		defaultKernel = &Kernel{width: detectedWidth}
		Logger().Debug("default chunk copy kernel resolved",
			zap.Int("width", int(defaultKernel.width)),
			zap.Stringer("level", defaultKernel.width.Level()),
			zap.Bool("noSimdEnv", NoSimdEnv()),
		)
	})

	return defaultKernel
}

// New returns a kernel for opts.Width. Nil options or WidthAuto select
// DetectedWidth. Requesting Width16 on a CPU without vector loads fails with
// ErrUnsupportedWidth.
func New(opts *Options) (*Kernel, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	log := opts.Logger
	if log == nil {
		log = Logger()
	}

	width := opts.Width
	switch {
	case width == WidthAuto:
		width = detectedWidth

	case !width.Valid():
		return nil, fmt.Errorf("%w: %d bytes", ErrUnsupportedWidth, int(width))

	case width == Width16 && !hasVector:
		return nil, fmt.Errorf("%w: %d bytes needs 128-bit vector support", ErrUnsupportedWidth, int(width))
	}

	log.Debug("chunk copy kernel resolved",
		zap.Int("requested", int(opts.Width)),
		zap.Int("width", int(width)),
		zap.Stringer("level", width.Level()),
	)

	return &Kernel{width: width}, nil
}

// Width returns the kernel's chunk width in bytes.
func (k *Kernel) Width() Width {
	return k.width
}

// Level returns the load/store class the kernel uses.
func (k *Kernel) Level() Level {
	return k.width.Level()
}

// String returns a short description such as "vector/16".
func (k *Kernel) String() string {
	return fmt.Sprintf("%s/%d", k.width.Level(), int(k.width))
}

// Slack returns the writable padding a destination buffer must reserve past its
// logical end for this kernel.
func (k *Kernel) Slack() int {
	return int(k.width) - 1
}

// ChunkMemcpy copies n (>= 8) bytes from src[from:] to dst[out:] and returns out+n.
// The 128-bit path is taken when the kernel is vector-wide and n >= 16.
// If src and dst share memory, the windows must be at least one kernel width apart.
func (k *Kernel) ChunkMemcpy(dst []byte, out int, src []byte, from, n int) int {
	if k.width == Width16 && n >= chunk16 {
		return chunkMemcpy16(dst, out, src, from, n)
	}

	return chunkMemcpy(dst, out, src, from, n)
}

// ByteMemset fills buf[out:out+n] (n >= 8) with buf[out-1] and returns out+n.
func (k *Kernel) ByteMemset(buf []byte, out, n int) int {
	if k.width == Width16 && n >= chunk16 {
		return byteMemset16(buf, out, n)
	}

	return byteMemset(buf, out, n)
}

// ChunkMemset writes n (>= 8) bytes at buf[out:] repeating the dist-byte pattern
// buf[out-dist:out], and returns out+n.
func (k *Kernel) ChunkMemset(buf []byte, out, dist, n int) int {
	return chunkMemset(buf, out, dist, n, k.width == Width16)
}

// ChunkCopy is the back-reference entry point. It writes n bytes at buf[out:]
// and returns out+n:
//
//   - dist == 0: copy buf[from:from+n], a window that must not overlap the output;
//   - dist == 1: repeat buf[out-1];
//   - dist > 1: repeat the pattern buf[out-dist:out]; from must equal out-dist.
//
// The caller guarantees the bytes behind the cursor exist. See the package
// documentation for the full contract.
func (k *Kernel) ChunkCopy(buf []byte, out, from, dist, n int) int {
	if debugAssertions {
		assertf(dist == 0 || from == out-dist, "ChunkCopy from %d != out %d - dist %d", from, out, dist)
	}

	if n < chunk8 {
		if dist > 0 {
			return setBytes(buf, out, from, dist, n)
		}

		return copyBytes(buf, out, buf, from, n)
	}

	switch {
	case dist == 1:
		return k.ByteMemset(buf, out, n)
	case dist > 1:
		return k.ChunkMemset(buf, out, dist, n)
	default:
		return k.ChunkMemcpy(buf, out, buf, from, n)
	}
}

// FastCopy copies n bytes from src[from:] to dst[out:] with the widest chunk
// routine that applies, and returns out+n. The windows must not alias closer
// than one kernel width; use SafeCopy when that is not established.
func (k *Kernel) FastCopy(dst []byte, out int, src []byte, from, n int) int {
	if n < chunk8 {
		return copyBytes(dst, out, src, from, n)
	}

	return k.ChunkMemcpy(dst, out, src, from, n)
}

// SafeCopy is FastCopy for windows that may alias. When the two cursors are
// less than one kernel width apart in memory it copies byte by byte, left to
// right, so every byte read is the value present at the moment it is read.
func (k *Kernel) SafeCopy(dst []byte, out int, src []byte, from, n int) int {
	if addrDistance(dst, out, src, from) < uintptr(k.width) {
		d := dst[out : out+n]
		s := src[from : from+n]
		for i := range d {
			d[i] = s[i]
		}

		return out + n
	}

	return k.FastCopy(dst, out, src, from, n)
}

// CopyBytes copies n (< 8) bytes from src[from:] to dst[out:] and returns out+n.
func CopyBytes(dst []byte, out int, src []byte, from, n int) int {
	return copyBytes(dst, out, src, from, n)
}

// SetBytes writes n (< 8) bytes at buf[out:] repeating the dist-byte pattern
// buf[out-dist:out], and returns out+n. For dist < n only dist in [1,6] exists;
// any dist >= n is a plain copy.
func SetBytes(buf []byte, out, dist, n int) int {
	return setBytes(buf, out, out-dist, dist, n)
}

// ChunkMemcpy16 copies n (>= 16) bytes with 128-bit units regardless of the
// detected width, and returns out+n.
func ChunkMemcpy16(dst []byte, out int, src []byte, from, n int) int {
	return chunkMemcpy16(dst, out, src, from, n)
}

// ChunkCopy calls Default().ChunkCopy.
func ChunkCopy(buf []byte, out, from, dist, n int) int {
	return Default().ChunkCopy(buf, out, from, dist, n)
}

// FastCopy calls Default().FastCopy.
func FastCopy(dst []byte, out int, src []byte, from, n int) int {
	return Default().FastCopy(dst, out, src, from, n)
}

// SafeCopy calls Default().SafeCopy.
func SafeCopy(dst []byte, out int, src []byte, from, n int) int {
	return Default().SafeCopy(dst, out, src, from, n)
}
