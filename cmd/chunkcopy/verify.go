// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package main

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/woozymasta/chunkcopy"
)

// sentinel marks bytes the kernel must not touch.
const sentinel = 0xEE

// maxReported bounds the failures collected per kernel.
const maxReported = 32

func verifyKernels(c *cli.Context) error {
	ks, err := kernels(c)
	if err != nil {
		return cli.Exit(err, 2)
	}

	maxDist, maxLen := c.Int("max-dist"), c.Int("max-len")

	var result *multierror.Error
	for _, k := range ks {
		failures, checked := verifyKernel(k, maxDist, maxLen)
		chunkcopy.Logger().Info("verified kernel",
			zap.Stringer("kernel", k),
			zap.Int("cases", checked),
			zap.Int("failures", len(failures)),
		)

		result = multierror.Append(result, failures...)
	}

	if err := result.ErrorOrNil(); err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintln(c.App.Writer, "ok")

	return nil
}

// verifyKernel checks ChunkCopy for every (dist, len) pair and FastCopy/SafeCopy
// for every len and source offset below two chunk widths.
func verifyKernel(k *chunkcopy.Kernel, maxDist, maxLen int) ([]error, int) {
	var (
		failures []error
		checked  int
	)

	report := func(err error) {
		if err != nil && len(failures) < maxReported {
			failures = append(failures, err)
		}
	}

	for dist := 0; dist <= maxDist; dist++ {
		for n := 0; n <= maxLen; n++ {
			report(checkChunkCopy(k, dist, n))
			checked++
		}
	}

	for n := 0; n <= maxLen; n++ {
		for shift := -2 * int(k.Width()); shift <= 2*int(k.Width()); shift++ {
			report(checkSafeCopy(k, shift, n))
			checked++
		}
	}

	return failures, checked
}

// fillPattern writes a deterministic non-periodic byte sequence.
func fillPattern(b []byte, seed int) {
	for i := range b {
		b[i] = byte(i*131 + seed*17 + 7)
	}
}

// checkChunkCopy lays out [pattern | output | slack] and compares the kernel with
// a byte-at-a-time reference.
func checkChunkCopy(k *chunkcopy.Kernel, dist, n int) error {
	prefix := max(dist, n, 1)
	size := prefix + n + k.Slack()

	got := make([]byte, size)
	fillPattern(got[:prefix], dist+n)
	for i := prefix; i < size; i++ {
		got[i] = sentinel
	}

	want := bytes.Clone(got)

	out, from := prefix, prefix-dist
	if dist == 0 {
		from = 0
	}

	for i := 0; i < n; i++ {
		want[out+i] = want[from+i]
	}

	end := k.ChunkCopy(got, out, from, dist, n)
	if end != out+n {
		return fmt.Errorf("%s ChunkCopy dist=%d len=%d: cursor %d, want %d", k, dist, n, end, out+n)
	}

	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s ChunkCopy dist=%d len=%d: output mismatch at %d", k, dist, n, firstDiff(got, want))
	}

	return nil
}

// checkSafeCopy copies n bytes inside one buffer with the source shifted by shift
// bytes from the destination and compares with a left-to-right byte loop.
func checkSafeCopy(k *chunkcopy.Kernel, shift, n int) error {
	base := 2*int(k.Width()) + 1
	size := 2*base + n + k.Slack()

	got := make([]byte, size)
	fillPattern(got, shift+n)
	want := bytes.Clone(got)

	out, from := base, base+shift
	for i := 0; i < n; i++ {
		want[out+i] = want[from+i]
	}

	end := k.SafeCopy(got, out, got, from, n)
	if end != out+n {
		return fmt.Errorf("%s SafeCopy shift=%d len=%d: cursor %d, want %d", k, shift, n, end, out+n)
	}

	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s SafeCopy shift=%d len=%d: output mismatch at %d", k, shift, n, firstDiff(got, want))
	}

	return nil
}

func firstDiff(a, b []byte) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return min(len(a), len(b))
}
