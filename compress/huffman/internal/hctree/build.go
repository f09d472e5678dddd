// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

import "container/heap"

// queue is a min-heap of node ids ordered by weight, then by the
// representative symbol. Representative symbols of queued nodes are distinct,
// so the order is total and the pop sequence does not depend on heap layout.
type queue struct {
	t   *Tree
	ids []NodeID
}

func (q *queue) Len() int {
	return len(q.ids)
}

func (q *queue) Less(i, j int) bool {
	a, b := &q.t.nodes[q.ids[i]], &q.t.nodes[q.ids[j]]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.Symbol < b.Symbol
}

func (q *queue) Swap(i, j int) {
	q.ids[i], q.ids[j] = q.ids[j], q.ids[i]
}

func (q *queue) Push(x any) {
	q.ids = append(q.ids, x.(NodeID))
}

func (q *queue) Pop() any {
	n := len(q.ids) - 1
	id := q.ids[n]
	q.ids = q.ids[:n]
	return id
}

// Build constructs the Huffman tree of freq.
//
// The two lowest nodes are merged repeatedly; the first one popped becomes
// the "0" child and passes its symbol on to the new node for later tie
// breaks. An all-zero table gives an empty tree and a table with one
// non-zero entry gives a single leaf.
func Build(freq *FrequencyTable) *Tree {
	t := newTree()
	q := &queue{t: t, ids: make([]NodeID, 0, NumSymbols)}
	for sym, weight := range freq {
		if weight > 0 {
			q.ids = append(q.ids, t.newLeaf(byte(sym), weight))
		}
	}
	if q.Len() == 0 {
		return t
	}
	heap.Init(q)
	for q.Len() > 1 {
		first := heap.Pop(q).(NodeID)
		second := heap.Pop(q).(NodeID)
		heap.Push(q, t.newInternal(first, second))
	}
	t.root = q.ids[0]
	return t
}
