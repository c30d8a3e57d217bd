// SPDX-FileCopyrightText: 2026 The overlaygen authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package overlay

import (
	"slices"
	"strings"
)

// openDir is a directory frame on the builder stack. path is the full
// virtual directory the frame's node represents.
type openDir struct {
	path string
	node *Node
}

// buildRoots builds the minimal tree for the given mappings in one
// batch.
//
// The mappings are sorted by virtual path first, so the result never
// depends on registration order. Walking the sorted list, a stack of
// open directories groups consecutive mappings that share a directory
// prefix. Prefixes are compared whole path segments at a time. A
// directory that only leads down to a single deeper directory is
// compressed into that directory's node, so node names may span
// multiple segments.
func buildRoots(mappings []Mapping) []*Node {
	sorted := slices.Clone(mappings)
	slices.SortFunc(sorted, func(a, b Mapping) int {
		return strings.Compare(a.VirtualPath, b.VirtualPath)
	})

	roots := []*Node{}

	var stack []openDir

	for _, mapping := range sorted {
		dir, name := splitDir(mapping.VirtualPath)

		for len(stack) > 0 && !containedIn(stack[len(stack)-1].path, dir) {
			stack = stack[:len(stack)-1]
		}

		var parent *Node

		switch {
		case len(stack) == 0:
			parent = &Node{Kind: KindDirectory, Name: dir}
			roots = append(roots, parent)
			stack = append(stack, openDir{path: dir, node: parent})
		case stack[len(stack)-1].path != dir:
			top := stack[len(stack)-1]
			parent = &Node{
				Kind: KindDirectory,
				Name: containedPart(top.path, dir),
			}
			top.node.Contents = append(top.node.Contents, parent)
			stack = append(stack, openDir{path: dir, node: parent})
		default:
			// The sorted walk returned to a directory that is still
			// open on the stack.
			parent = stack[len(stack)-1].node
		}

		parent.Contents = append(parent.Contents, &Node{
			Kind:             KindFile,
			Name:             name,
			ExternalContents: mapping.RealPath,
		})
	}

	return roots
}
