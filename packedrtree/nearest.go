// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"container/heap"
	"math"
)

// A Neighbor is a single nearest-neighbor query result: a feature's
// row index and the Euclidean distance from the query point to the
// feature's bounding box. The distance is to the box, not to the exact
// geometry; callers needing exact geometric distance should refine the
// candidates themselves.
type Neighbor struct {
	// Index is the result feature's row index.
	Index int
	// Distance is the Euclidean distance from the query point to the
	// nearest point of the feature's bounding box. A query point
	// inside the box has distance zero.
	Distance float64
}

// A cand is a candidate on the best-first search frontier: either an
// unexpanded subtree or a leaf, keyed by its minimum possible squared
// distance to the query point.
type cand struct {
	dist2 float64
	// level is the tree level of the node; leaf candidates have level
	// 0 and carry a row index, internal candidates carry a node index.
	level int
	// index is the row index (leaf) or first-child node index
	// (internal).
	index int
}

// candHeap is a min-heap over the search frontier. Candidates order by
// ascending squared distance; at equal distance internal nodes come
// before leaves so that every subtree which could still contribute an
// equally-near, lower-indexed row is expanded before any tied leaf is
// emitted, and tied leaves order by ascending row index so result
// order is deterministic.
type candHeap []cand

func (h candHeap) Len() int { return len(h) }

func (h candHeap) Less(i, j int) bool {
	if h[i].dist2 != h[j].dist2 {
		return h[i].dist2 < h[j].dist2
	}
	if (h[i].level == 0) != (h[j].level == 0) {
		return h[i].level != 0
	}
	return h[i].index < h[j].index
}

func (h candHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candHeap) Push(x interface{}) { *h = append(*h, x.(cand)) }

func (h *candHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Nearest returns the k features whose bounding boxes are nearest to
// the query point (x, y), in ascending order of Euclidean point-to-box
// distance, ties broken by ascending row index. If k is at least the
// number of references in the tree, every reference is returned. A
// non-positive k returns no results.
//
// The search is best-first branch-and-bound: subtrees are expanded in
// order of their minimum possible distance, so only the part of the
// tree that can still contain one of the k nearest boxes is visited.
func (prt *PackedRTree) Nearest(x, y float64, k int) []Neighbor {
	if k <= 0 || prt.numRefs == 0 {
		return nil
	}
	if k > prt.numRefs {
		k = prt.numRefs
	}

	h := make(candHeap, 0, prt.nodeSize+1)
	root := &prt.nodes[0]
	heap.Push(&h, cand{
		dist2: root.Box.dist2(x, y),
		level: len(prt.levels) - 1,
		index: root.Index,
	})

	result := make([]Neighbor, 0, k)
	for h.Len() > 0 && len(result) < k {
		c := heap.Pop(&h).(cand)
		if c.level == 0 {
			result = append(result, Neighbor{Index: c.index, Distance: math.Sqrt(c.dist2)})
			continue
		}
		// Expand the internal node: push each child with its own
		// minimum distance bound.
		start := c.index
		end := start + prt.nodeSize
		if prt.levels[c.level-1].end < end {
			end = prt.levels[c.level-1].end
		}
		for pos := start; pos < end; pos++ {
			n := &prt.nodes[pos]
			heap.Push(&h, cand{
				dist2: n.Box.dist2(x, y),
				level: c.level - 1,
				index: n.Index,
			})
		}
	}
	return result
}
