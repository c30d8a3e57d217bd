// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/overlaygen/overlaygen/internal/bundle"
	"github.com/overlaygen/overlaygen/internal/modulemap"
	"github.com/overlaygen/overlaygen/internal/overlay"
)

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer

	// Fsys is the file system mapped real paths are resolved in for
	// -check and -bundle. Defaults to the host root file system.
	Fsys fs.FS
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.logLevel())

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return -1
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	if err := run(ctx, flags, cfg); err != nil {
		slog.Error(err.Error())
		return -1
	}

	return 0
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	if flags.ModuleMap {
		descriptor := modulemap.New()
		descriptor.SetFrameworkModuleName(flags.FrameworkName)
		descriptor.SetUmbrellaHeader(flags.UmbrellaHeader)

		return writeOutput(flags.OutputPath, cfg, descriptor.WriteInto)
	}

	vfo := overlay.New()
	vfo.SetCaseSensitivity(!flags.CaseInsensitive)

	for _, mapping := range flags.Mappings {
		err := vfo.AddMapping(mapping.virtual, mapping.real)
		if err != nil {
			return fmt.Errorf("add mapping %s: %w", mapping.virtual, err)
		}
	}

	if flags.Check || flags.BundlePath != "" {
		fsys := cfg.Fsys
		if fsys == nil {
			fsys = os.DirFS("/")
		}

		b := &bundle.Bundle{Overlay: vfo, Fsys: fsys}

		if flags.Check {
			if err := b.VerifySources(ctx); err != nil {
				return fmt.Errorf("verify sources: %w", err)
			}
		}

		if flags.BundlePath != "" {
			if err := writeFile(flags.BundlePath, b.WriteInto); err != nil {
				return fmt.Errorf("write bundle: %w", err)
			}

			slog.Debug("Wrote bundle archive",
				slog.String("path", flags.BundlePath))
		}
	}

	return writeOutput(flags.OutputPath, cfg, vfo.WriteInto)
}

// writeOutput writes a rendered document to the given path, or to
// stdout if the path is empty.
func writeOutput(path string, cfg IO, write func(io.Writer) error) error {
	if path == "" {
		return write(cfg.Stdout)
	}

	return writeFile(path, write)
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := write(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)

		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

func setupLogging(writer io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)))
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without
	// error in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// Parse errors are already printed, so just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
