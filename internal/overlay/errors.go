// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package overlay

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned for virtual paths that are empty,
	// relative, name no file, or escape a directory with "..".
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNodeKindUnknown is returned if a node has a kind the serializer
	// does not know.
	ErrNodeKindUnknown = errors.New("unknown node kind")
)
