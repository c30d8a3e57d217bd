// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bundle

import (
	"errors"
)

// ErrNotRegularFile is returned if a mapped real path resolves to
// something other than a regular file.
var ErrNotRegularFile = errors.New("source is not a regular file")
