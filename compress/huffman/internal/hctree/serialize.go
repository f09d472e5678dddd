// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

import "fmt"

// maxDepth is the deepest level an internal node can sit at: a tree over the
// whole alphabet has at most NumSymbols-1 internal nodes.
const maxDepth = NumSymbols - 2

// Serialize writes the tree shape in pre-order: a 0 bit for an internal node
// followed by its "0" and "1" subtrees, or a 1 bit and the 8-bit symbol for
// a leaf. An empty tree writes nothing.
func (t *Tree) Serialize(w BitWriter) error {
	if t.root == NoNode {
		return nil
	}
	return t.serialize(w, t.root)
}

func (t *Tree) serialize(w BitWriter, id NodeID) error {
	n := &t.nodes[id]
	if n.Kind == LeafKind {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteByte(n.Symbol)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := t.serialize(w, n.Child[0]); err != nil {
		return err
	}
	return t.serialize(w, n.Child[1])
}

// Deserialize reads a tree written by Serialize, consuming exactly its bits.
// Node weights of the result are zero.
func Deserialize(r BitReader) (*Tree, error) {
	t := newTree()
	root, err := t.deserialize(r, 0)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Tree) deserialize(r BitReader, depth int) (NodeID, error) {
	isLeaf, err := r.ReadBool()
	if err != nil {
		return NoNode, malformed(err)
	}
	if isLeaf {
		sym, err := r.ReadByte()
		if err != nil {
			return NoNode, malformed(err)
		}
		if t.leafOf[sym] != NoNode {
			return NoNode, fmt.Errorf("%w: symbol %#02x appears twice", ErrMalformedTree, sym)
		}
		return t.newLeaf(sym, 0), nil
	}
	if depth > maxDepth {
		return NoNode, fmt.Errorf("%w: internal node deeper than %d", ErrMalformedTree, maxDepth)
	}
	zero, err := t.deserialize(r, depth+1)
	if err != nil {
		return NoNode, err
	}
	one, err := t.deserialize(r, depth+1)
	if err != nil {
		return NoNode, err
	}
	return t.newInternal(zero, one), nil
}
