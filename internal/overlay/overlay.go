// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package overlay

import (
	"fmt"
	"io"
	"slices"
)

// FormatVersion is the overlay document format version emitted in the
// version field.
const FormatVersion = 0

// Mapping is a single virtual-to-real file mapping. VirtualPath is
// absolute and normalized. RealPath is stored verbatim and never
// interpreted.
type Mapping struct {
	VirtualPath string
	RealPath    string
}

// Overlay collects virtual file mappings and serializes them into an
// overlay descriptor document.
//
// Create a new instance with [New]. Register mappings with
// [Overlay.AddMapping]. Once ready, render the document with
// [Overlay.WriteInto] or [Overlay.Bytes]. An Overlay is not safe for
// concurrent use.
type Overlay struct {
	mappings []Mapping
	index    map[string]int

	// Stored inverted so the zero value defaults to case-sensitive.
	caseInsensitive bool
}

// New creates a new empty [Overlay]. Paths are marked case-sensitive
// unless changed with [Overlay.SetCaseSensitivity].
func New() *Overlay {
	return &Overlay{}
}

// AddMapping registers the file realPath to be exposed at virtualPath.
//
// virtualPath must be absolute. "." segments are dropped. Paths with
// ".." segments are rejected with [ErrInvalidArgument] since the
// overlay format cannot express them. A rejected call leaves the
// Overlay unchanged. realPath is stored verbatim and may refer to a
// file that does not exist. Registering an already mapped virtual path
// again replaces its real path.
func (o *Overlay) AddMapping(virtualPath, realPath string) error {
	normalized, err := normalizeVirtualPath(virtualPath)
	if err != nil {
		return err
	}

	if idx, exists := o.index[normalized]; exists {
		o.mappings[idx].RealPath = realPath
		return nil
	}

	if o.index == nil {
		o.index = make(map[string]int)
	}

	o.index[normalized] = len(o.mappings)
	o.mappings = append(o.mappings, Mapping{
		VirtualPath: normalized,
		RealPath:    realPath,
	})

	return nil
}

// SetCaseSensitivity sets the case sensitivity hint emitted in the
// document. The hint is consumed by the downstream virtual file system
// only. Mappings are always grouped by exact string comparison,
// regardless of this flag.
func (o *Overlay) SetCaseSensitivity(sensitive bool) {
	o.caseInsensitive = !sensitive
}

// Mappings returns a copy of all registered mappings in registration
// order.
func (o *Overlay) Mappings() []Mapping {
	return slices.Clone(o.mappings)
}

// Roots builds the overlay tree for the current set of mappings. The
// tree is built from scratch on each call and is independent of
// registration order.
func (o *Overlay) Roots() []*Node {
	return buildRoots(o.mappings)
}

// Bytes returns the serialized overlay document. The returned buffer is
// owned by the caller and detached from the Overlay.
func (o *Overlay) Bytes() ([]byte, error) {
	return serialize(o.Roots(), !o.caseInsensitive)
}

// WriteInto writes the serialized overlay document to the given writer.
func (o *Overlay) WriteInto(writer io.Writer) error {
	buf, err := o.Bytes()
	if err != nil {
		return err
	}

	if _, err := writer.Write(buf); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}

// Reset reverts the Overlay to its initial empty state so it can be
// reused.
func (o *Overlay) Reset() {
	o.mappings = nil
	o.index = nil
	o.caseInsensitive = false
}
