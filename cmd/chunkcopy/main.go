// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

// Command chunkcopy inspects, verifies and benchmarks the copy kernel on the
// current machine.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/woozymasta/chunkcopy"
)

func main() {
	app := &cli.App{
		Name:  "chunkcopy",
		Usage: "Inspect, verify and benchmark the chunk copy kernel",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
			},
		},
		Before: setupLogger,
		After: func(*cli.Context) error {
			_ = chunkcopy.Logger().Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "info",
				Usage:  "Print the detected chunk width",
				Action: showInfo,
			},
			{
				Name:   "verify",
				Usage:  "Check every routine against a byte-wise reference",
				Action: verifyKernels,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "max-dist", Value: 64, Usage: "largest distance to check"},
					&cli.IntFlag{Name: "max-len", Value: 256, Usage: "largest length to check"},
					widthFlag(),
				},
			},
			{
				Name:   "bench",
				Usage:  "Measure throughput per copy regime and print CSV",
				Action: benchKernels,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: 1 << 20, Usage: "bytes produced per iteration"},
					&cli.IntFlag{Name: "iterations", Value: 200, Usage: "iterations per regime"},
					widthFlag(),
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

// widthFlag selects a kernel width; 0 checks every width the CPU supports.
func widthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "width",
		Value: 0,
		Usage: "chunk width in bytes (8 or 16, 0 = all supported)",
	}
}

// setupLogger installs a zap logger as the package logger.
func setupLogger(c *cli.Context) error {
	var (
		l   *zap.Logger
		err error
	)

	if c.Bool("verbose") {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	chunkcopy.SetLogger(l)

	return nil
}

// kernels returns the kernels selected by the width flag.
func kernels(c *cli.Context) ([]*chunkcopy.Kernel, error) {
	widths := []chunkcopy.Width{chunkcopy.Width8}
	if chunkcopy.HasVector() {
		widths = append(widths, chunkcopy.Width16)
	}

	if w := c.Int("width"); w != 0 {
		widths = []chunkcopy.Width{chunkcopy.Width(w)}
	}

	ks := make([]*chunkcopy.Kernel, 0, len(widths))
	for _, w := range widths {
		k, err := chunkcopy.New(&chunkcopy.Options{Width: w})
		if err != nil {
			return nil, err
		}

		ks = append(ks, k)
	}

	return ks, nil
}
