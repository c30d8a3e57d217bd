// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for overlaygen. It
// handles flag parsing, error handling, and output handling.
package cmd
