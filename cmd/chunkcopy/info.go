// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/woozymasta/chunkcopy"
)

func showInfo(c *cli.Context) error {
	k := chunkcopy.Default()
	w := c.App.Writer

	fmt.Fprintf(w, "kernel:       %s\n", k)
	fmt.Fprintf(w, "width:        %d\n", int(k.Width()))
	fmt.Fprintf(w, "slack:        %d\n", k.Slack())
	fmt.Fprintf(w, "vector unit:  %t\n", chunkcopy.HasVector())
	fmt.Fprintf(w, "no-simd env:  %t\n", chunkcopy.NoSimdEnv())

	return nil
}
