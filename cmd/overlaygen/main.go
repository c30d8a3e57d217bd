// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os"

	"github.com/overlaygen/overlaygen/internal/cmd"
)

func main() {
	cfg := cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	os.Exit(cmd.Run(context.Background(), os.Args, cfg))
}
