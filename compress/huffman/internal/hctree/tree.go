// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package hctree implements a static Huffman coding tree over bytes: tree
// construction from a frequency table, per-symbol bit encoding and decoding,
// and a self-delimiting pre-order serialization of the tree shape.
package hctree

import (
	"fmt"
	"strings"
)

// Tree is a Huffman coding tree. Nodes live in an arena owned by the tree;
// parent and child links are indexes into it. A Tree is not safe for
// concurrent mutation, but Encode and Decode do not modify it.
type Tree struct {
	nodes  []Node // nodes[0] is unused so that NoNode is never valid
	root   NodeID
	leafOf [NumSymbols]NodeID
}

func newTree() *Tree {
	return &Tree{nodes: make([]Node, 1, 2*NumSymbols)}
}

func (t *Tree) newLeaf(sym byte, weight uint64) NodeID {
	t.nodes = append(t.nodes, Node{Kind: LeafKind, Symbol: sym, Weight: weight})
	id := NodeID(len(t.nodes) - 1)
	t.leafOf[sym] = id
	return id
}

// newInternal merges zero and one under a new node and links them back to it.
func (t *Tree) newInternal(zero, one NodeID) NodeID {
	z, o := t.nodes[zero], t.nodes[one]
	t.nodes = append(t.nodes, Node{
		Kind:   InternalKind,
		Symbol: z.Symbol,
		Weight: z.Weight + o.Weight,
		Child:  [2]NodeID{zero, one},
	})
	id := NodeID(len(t.nodes) - 1)
	t.nodes[zero].Parent = id
	t.nodes[one].Parent = id
	return id
}

// Empty reports whether the tree has no nodes, which is the case for a tree
// built from an all-zero frequency table.
func (t *Tree) Empty() bool {
	return t.root == NoNode
}

// Root returns the root node id, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns a copy of the node with the given id.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Leaf returns the leaf holding sym, or NoNode.
func (t *Tree) Leaf(sym byte) NodeID {
	return t.leafOf[sym]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Encode writes the code of sym to w, root-to-leaf. A tree made of a single
// leaf writes no bits at all.
func (t *Tree) Encode(w BitWriter, sym byte) error {
	id := t.leafOf[sym]
	if id == NoNode {
		return fmt.Errorf("%w: %#02x is not in the tree", ErrInvalidSymbol, sym)
	}
	// codes are at most NumSymbols-1 bits long
	var path [NumSymbols]bool
	n := 0
	for id != t.root {
		parent := t.nodes[id].Parent
		path[n] = t.nodes[parent].Child[1] == id
		n++
		id = parent
	}
	for n > 0 {
		n--
		if err := w.WriteBool(path[n]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one code from r and returns its symbol. When the root is a
// leaf no bits are consumed.
func (t *Tree) Decode(r BitReader) (byte, error) {
	if t.root == NoNode {
		return 0, fmt.Errorf("%w: decoding with an empty tree", ErrMalformedTree)
	}
	id := t.root
	for t.nodes[id].Kind == InternalKind {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, endOfStream(err)
		}
		id = t.nodes[id].Child[branch(bit)]
	}
	return t.nodes[id].Symbol, nil
}

// CodeLen returns the length in bits of the code of sym.
// ok is false if sym is not in the tree.
func (t *Tree) CodeLen(sym byte) (n int, ok bool) {
	id := t.leafOf[sym]
	if id == NoNode {
		return 0, false
	}
	for ; id != t.root; id = t.nodes[id].Parent {
		n++
	}
	return n, true
}

// Code returns the code of sym as a string of '0' and '1', root first.
// It is empty for absent symbols and for a single-leaf tree.
func (t *Tree) Code(sym byte) string {
	n, ok := t.CodeLen(sym)
	if !ok || n == 0 {
		return ""
	}
	code := make([]byte, n)
	for id := t.leafOf[sym]; id != t.root; id = t.nodes[id].Parent {
		n--
		code[n] = '0' + byte(branch(t.nodes[t.nodes[id].Parent].Child[1] == id))
	}
	return string(code)
}

// EncodedBits returns the payload size in bits of encoding the input that
// freq was counted from. Symbols missing from the tree are ignored.
func (t *Tree) EncodedBits(freq *FrequencyTable) (bits uint64) {
	for sym, count := range freq {
		if count == 0 {
			continue
		}
		if n, ok := t.CodeLen(byte(sym)); ok {
			bits += count * uint64(n)
		}
	}
	return bits
}

func (t *Tree) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}
