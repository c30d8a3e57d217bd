// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// mappingArg is a raw virtual=real pair from the command line. Paths
// are validated later by the overlay.
type mappingArg struct {
	virtual string
	real    string
}

type flags struct {
	OutputPath      string
	BundlePath      string
	CaseInsensitive bool
	Check           bool
	ModuleMap       bool
	FrameworkName   string
	UmbrellaHeader  string
	Debug           bool
	Version         bool

	Mappings []mappingArg
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{}

	fsName := args[0] + " [flags...] virtual=real [virtual=real...]"
	fs := flag.NewFlagSet(fsName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(
		&flags.OutputPath,
		"output",
		"",
		"write the document to `file` instead of stdout",
	)

	fs.StringVar(
		&flags.BundlePath,
		"bundle",
		"",
		"additionally pack all mapped files as CPIO archive into `file`",
	)

	fs.BoolVar(
		&flags.CaseInsensitive,
		"case-insensitive",
		false,
		"mark the overlay for case-insensitive lookup",
	)

	fs.BoolVar(
		&flags.Check,
		"check",
		false,
		"verify all mapped real paths exist before writing",
	)

	fs.BoolVar(
		&flags.ModuleMap,
		"modulemap",
		false,
		"write a framework module map instead of an overlay",
	)

	fs.StringVar(
		&flags.FrameworkName,
		"framework",
		"",
		"framework module `name`, requires -modulemap",
	)

	fs.StringVar(
		&flags.UmbrellaHeader,
		"umbrella",
		"",
		"umbrella `header` name, requires -modulemap",
	)

	fs.BoolVar(
		&flags.Debug,
		"debug",
		false,
		"enable debug output",
	)

	fs.BoolVar(
		&flags.Version,
		"version",
		false,
		"show version and exit",
	)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, &ParseArgsError{msg: "parse args", err: err}
	}

	for _, arg := range fs.Args() {
		virtual, real, found := strings.Cut(arg, "=")
		if !found || virtual == "" || real == "" {
			return nil, parseErr(output, fmt.Errorf(
				"%w: %s", ErrMappingMalformed, arg,
			))
		}

		flags.Mappings = append(flags.Mappings, mappingArg{
			virtual: virtual,
			real:    real,
		})
	}

	if err := flags.validate(); err != nil {
		return nil, parseErr(output, err)
	}

	return flags, nil
}

func (f *flags) validate() error {
	if f.ModuleMap {
		if f.FrameworkName == "" || f.UmbrellaHeader == "" {
			return ErrModuleMapFieldsMissing
		}

		return nil
	}

	if f.FrameworkName != "" || f.UmbrellaHeader != "" {
		return ErrModuleMapOnly
	}

	return nil
}

func (f *flags) logLevel() slog.Level {
	if f.Debug {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}

// parseErr prints the error the same way the flag set prints its own
// parse errors and wraps it.
func parseErr(output io.Writer, err error) error {
	fmt.Fprintln(output, "Error:", err.Error())

	return &ParseArgsError{msg: "parse args", err: err}
}
