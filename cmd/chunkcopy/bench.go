// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package main

import (
	"time"

	"github.com/gocarina/gocsv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/woozymasta/chunkcopy"
)

// benchRow is one line of the CSV report.
type benchRow struct {
	Kernel     string  `csv:"kernel"`
	Regime     string  `csv:"regime"`
	Bytes      int     `csv:"bytes"`
	Iterations int     `csv:"iterations"`
	NsPerOp    int64   `csv:"ns_per_op"`
	MBPerSec   float64 `csv:"mb_per_s"`
}

// regime produces size bytes at buf[out:] once.
type regime struct {
	name string
	dist int
	run  func(k *chunkcopy.Kernel, buf []byte, out, size int)
}

var regimes = []regime{
	{name: "memcpy", dist: 0, run: func(k *chunkcopy.Kernel, buf []byte, out, size int) {
		k.FastCopy(buf, out, buf, 0, size)
	}},
	{name: "run-dist-1", dist: 1, run: backRef(1)},
	{name: "pattern-dist-3", dist: 3, run: backRef(3)},
	{name: "pattern-dist-12", dist: 12, run: backRef(12)},
	{name: "pattern-dist-64", dist: 64, run: backRef(64)},
	{name: "safecopy-aliased", dist: 5, run: func(k *chunkcopy.Kernel, buf []byte, out, size int) {
		k.SafeCopy(buf, out, buf, out-5, size)
	}},
}

func backRef(dist int) func(k *chunkcopy.Kernel, buf []byte, out, size int) {
	return func(k *chunkcopy.Kernel, buf []byte, out, size int) {
		k.ChunkCopy(buf, out, out-dist, dist, size)
	}
}

func benchKernels(c *cli.Context) error {
	ks, err := kernels(c)
	if err != nil {
		return cli.Exit(err, 2)
	}

	size, iterations := c.Int("size"), c.Int("iterations")
	if size < 1 || iterations < 1 {
		return cli.Exit("size and iterations must be positive", 2)
	}

	var rows []*benchRow
	for _, k := range ks {
		for _, r := range regimes {
			rows = append(rows, runRegime(k, r, size, iterations))
		}
	}

	return gocsv.Marshal(rows, c.App.Writer)
}

func runRegime(k *chunkcopy.Kernel, r regime, size, iterations int) *benchRow {
	// The source window sits in front of the output so memcpy and back-references
	// share one layout.
	out := max(size, r.dist)
	buf := chunkcopy.NewBuffer(out+size, k.Width())
	fillPattern(buf.Bytes()[:out], size)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		r.run(k, buf.Padded(), out, size)
	}
	elapsed := time.Since(start)

	nsPerOp := elapsed.Nanoseconds() / int64(iterations)
	mbps := 0.0
	if elapsed > 0 {
		mbps = float64(size) * float64(iterations) / elapsed.Seconds() / 1e6
	}

	chunkcopy.Logger().Debug("benchmarked regime",
		zap.Stringer("kernel", k),
		zap.String("regime", r.name),
		zap.Duration("elapsed", elapsed),
	)

	return &benchRow{
		Kernel:     k.String(),
		Regime:     r.name,
		Bytes:      size,
		Iterations: iterations,
		NsPerOp:    nsPerOp,
		MBPerSec:   mbps,
	}
}
