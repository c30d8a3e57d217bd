// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package overlay

// NodeKind discriminates the two node variants of an overlay tree.
type NodeKind int

const (
	// A directory node groups child nodes under a common path.
	KindDirectory NodeKind = iota
	// A file node maps a single virtual file to its real path.
	KindFile
)

// Node is a single entry of a built overlay tree.
//
// Top-level directory nodes carry full absolute paths as names. Nested
// directory names may span multiple segments where a chain of
// single-child directories was compressed into one node. File nodes
// carry the leaf segment as name and the mapped real path.
type Node struct {
	Kind             NodeKind
	Name             string
	Contents         []*Node
	ExternalContents string
}

// IsDir returns true if the [Node] is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDirectory
}
