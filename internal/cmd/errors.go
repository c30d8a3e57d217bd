// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned when command line help was requested.
	ErrHelp = flag.ErrHelp

	// ErrMappingMalformed is returned for mapping arguments that are not
	// of the form virtual=real.
	ErrMappingMalformed = errors.New("malformed mapping argument")

	// ErrModuleMapFieldsMissing is returned if -modulemap is requested
	// without framework name or umbrella header.
	ErrModuleMapFieldsMissing = errors.New(
		"modulemap requires -framework and -umbrella")

	// ErrModuleMapOnly is returned if module map fields are given
	// without -modulemap.
	ErrModuleMapOnly = errors.New(
		"-framework and -umbrella require -modulemap")

	// ErrReadBuildInfo is returned if the build info of the binary is
	// not available.
	ErrReadBuildInfo = errors.New("build info not available")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
