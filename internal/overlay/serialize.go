// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package overlay

import (
	"encoding/json"
	"fmt"
)

// document is the top-level overlay descriptor. Field names and order
// are part of the format and must not change.
type document struct {
	Version       int     `json:"version"`
	CaseSensitive *bool   `json:"case-sensitive,omitempty"`
	Roots         []*Node `json:"roots"`
}

type directoryJSON struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Contents []*Node `json:"contents"`
}

type fileJSON struct {
	Type             string `json:"type"`
	Name             string `json:"name"`
	ExternalContents string `json:"external-contents"`
}

// MarshalJSON emits the node in the fixed overlay grammar, as either a
// directory or a file object.
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindDirectory:
		contents := n.Contents
		if contents == nil {
			contents = []*Node{}
		}

		//nolint:wrapcheck
		return json.Marshal(directoryJSON{
			Type:     "directory",
			Name:     n.Name,
			Contents: contents,
		})
	case KindFile:
		//nolint:wrapcheck
		return json.Marshal(fileJSON{
			Type:             "file",
			Name:             n.Name,
			ExternalContents: n.ExternalContents,
		})
	default:
		return nil, fmt.Errorf("%w: %d", ErrNodeKindUnknown, n.Kind)
	}
}

// serialize renders the overlay document with two-space indentation and
// a trailing newline. The case-sensitive field is emitted only when it
// differs from the default. Identical mapping sets always render to
// byte-identical output.
func serialize(roots []*Node, caseSensitive bool) ([]byte, error) {
	doc := document{
		Version: FormatVersion,
		Roots:   roots,
	}
	if !caseSensitive {
		doc.CaseSensitive = &caseSensitive
	}

	buf, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	return append(buf, '\n'), nil
}
