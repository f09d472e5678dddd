// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

import "fmt"

// Kind tags a Node as a leaf or an internal node.
type Kind uint8

const (
	LeafKind Kind = iota + 1
	InternalKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "leaf"
	case InternalKind:
		return "internal"
	}
	return "unknown"
}

// NodeID indexes a node in the arena of its Tree.
type NodeID uint16

// NoNode is the zero NodeID; it never refers to a node.
const NoNode NodeID = 0

// Node is one entry of a tree arena.
//
// Child[0] is the "0" branch and Child[1] the "1" branch; both are NoNode for
// leaves. Parent is a back-edge used to walk from a leaf to the root and is
// NoNode for the root.
type Node struct {
	Kind Kind
	// Symbol is the byte of a leaf. For internal nodes it is the symbol
	// inherited from the "0" child at merge time and only breaks weight ties.
	Symbol byte
	Weight uint64
	Child  [2]NodeID
	Parent NodeID
}

func (n Node) IsLeaf() bool {
	return n.Kind == LeafKind
}

func (n Node) String() string {
	if n.Kind == LeafKind {
		return fmt.Sprintf("leaf %q weight=%d", rune(n.Symbol), n.Weight)
	}
	return fmt.Sprintf("internal rep=%q weight=%d", rune(n.Symbol), n.Weight)
}
