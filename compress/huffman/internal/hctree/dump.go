// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

import (
	"fmt"
	"io"
	"strings"
)

// Walk calls fn for every node in order: "0" subtree, node, "1" subtree.
// depth is 0 for the root.
func (t *Tree) Walk(fn func(id NodeID, n Node, depth int)) {
	if t.root != NoNode {
		t.walk(t.root, 0, fn)
	}
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, Node, int)) {
	n := t.nodes[id]
	if n.Kind == InternalKind {
		t.walk(n.Child[0], depth+1, fn)
	}
	fn(id, n, depth)
	if n.Kind == InternalKind {
		t.walk(n.Child[1], depth+1, fn)
	}
}

// Dump writes one indented line per node, in order.
func (t *Tree) Dump(w io.Writer) error {
	var err error
	t.Walk(func(_ NodeID, n Node, depth int) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", depth), n)
		}
	})
	return err
}
