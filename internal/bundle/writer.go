// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import "io/fs"

// Writer defines the bundle archive writer interface.
type Writer interface {
	WriteRegular(path string, source fs.File) error
	WriteDirectory(path string) error
}
