// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package overlay

import (
	"fmt"
	"strings"
)

// Virtual paths are part of the overlay document format and always use
// forward slashes, independent of the host platform.
const separator = "/"

// normalizeVirtualPath validates the given virtual path and returns its
// normalized form.
//
// The path must be absolute and must name a file, so normalizing to the
// bare root directory is rejected. Empty and "." segments are dropped.
// The overlay format has no way to escape a directory, so any ".."
// segment is rejected as well instead of being resolved.
func normalizeVirtualPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty virtual path", ErrInvalidArgument)
	}

	if !strings.HasPrefix(path, separator) {
		return "", fmt.Errorf(
			"%w: virtual path is not absolute: %s",
			ErrInvalidArgument, path,
		)
	}

	segments := make([]string, 0, strings.Count(path, separator))

	for _, segment := range strings.Split(path[1:], separator) {
		switch segment {
		case "", ".":
		case "..":
			return "", fmt.Errorf(
				"%w: virtual path escapes directory: %s",
				ErrInvalidArgument, path,
			)
		default:
			segments = append(segments, segment)
		}
	}

	if len(segments) == 0 {
		return "", fmt.Errorf(
			"%w: virtual path names no file: %s",
			ErrInvalidArgument, path,
		)
	}

	return separator + strings.Join(segments, separator), nil
}

// splitDir splits a normalized absolute path into its directory and
// file name. The directory has no trailing separator unless it is the
// root directory itself.
func splitDir(path string) (string, string) {
	idx := strings.LastIndex(path, separator)

	dir := path[:idx]
	if dir == "" {
		dir = separator
	}

	return dir, path[idx+1:]
}

// containedIn reports whether dir is parent itself or a directory below
// it. Paths are compared segment-wise, so "/path/foo" never contains
// "/path/foobar".
func containedIn(parent, dir string) bool {
	if parent == separator {
		return true
	}

	return dir == parent || strings.HasPrefix(dir, parent+separator)
}

// containedPart returns dir relative to parent. dir must be strictly
// below parent.
func containedPart(parent, dir string) string {
	if parent == separator {
		return dir[1:]
	}

	return dir[len(parent)+1:]
}
