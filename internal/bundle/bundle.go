// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/overlaygen/overlaygen/internal/overlay"
)

const verifyConcurrency = 8

// Bundle packs the real files referenced by an overlay into a single
// archive laid out by virtual path.
//
// Real paths are resolved in Fsys, which allows bundling from any file
// tree, like [os.DirFS]("/") for the host file system.
type Bundle struct {
	Overlay *overlay.Overlay
	Fsys    fs.FS
}

// VerifySources checks that every mapped real path can be opened in
// [Bundle.Fsys]. Sources are checked concurrently.
func (b *Bundle) VerifySources(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(verifyConcurrency)

	for _, mapping := range b.Overlay.Mappings() {
		mapping := mapping

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				//nolint:wrapcheck
				return err
			}

			source, err := b.Fsys.Open(sourcePath(mapping.RealPath))
			if err != nil {
				return fmt.Errorf("verify %s: %w", mapping.RealPath, err)
			}

			return source.Close()
		})
	}

	//nolint:wrapcheck
	return eg.Wait()
}

// WriteInto writes all mapped files as CPIO archive to the given
// writer. Entries are ordered by virtual path, with each parent
// directory written once before the files below it.
func (b *Bundle) WriteInto(writer io.Writer) error {
	w := NewCPIOWriter(writer)
	defer w.Close()

	return b.writeTo(w)
}

func (b *Bundle) writeTo(writer Writer) error {
	mappings := b.Overlay.Mappings()
	slices.SortFunc(mappings, func(a, b overlay.Mapping) int {
		return strings.Compare(a.VirtualPath, b.VirtualPath)
	})

	written := make(map[string]bool)

	for _, mapping := range mappings {
		for _, dir := range parentDirs(mapping.VirtualPath) {
			if written[dir] {
				continue
			}

			written[dir] = true

			if err := writer.WriteDirectory(dir); err != nil {
				return err
			}
		}

		if err := b.writeFile(writer, mapping); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) writeFile(writer Writer, mapping overlay.Mapping) error {
	slog.Debug("Adding file to bundle",
		slog.String("virtual", mapping.VirtualPath),
		slog.String("real", mapping.RealPath))

	source, err := b.Fsys.Open(sourcePath(mapping.RealPath))
	if err != nil {
		return fmt.Errorf("open %s: %w", mapping.RealPath, err)
	}
	defer source.Close()

	return writer.WriteRegular(mapping.VirtualPath, source)
}

// parentDirs returns all parent directories of path from the top down,
// excluding the root directory itself.
func parentDirs(path string) []string {
	var dirs []string

	for idx, r := range path {
		if idx > 0 && r == '/' {
			dirs = append(dirs, path[:idx])
		}
	}

	return dirs
}

// sourcePath makes a mapped real path usable with [fs.FS], which
// considers leading separators invalid.
func sourcePath(path string) string {
	return strings.TrimPrefix(path, "/")
}
