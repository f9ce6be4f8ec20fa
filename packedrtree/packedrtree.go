// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"fmt"
	"math"
	"sort"
)

// DefaultNodeSize is the tree fanout used when a caller has no reason
// to choose another value. It matches the node size the FlatGeobuf
// ecosystem settled on for bulk-loaded Hilbert R-Trees.
const DefaultNodeSize uint16 = 16

// A Ref is a single item indexed by the PackedRTree: the bounding box
// of one feature plus the feature's row index in the dataset the tree
// was built from.
type Ref struct {
	Box

	// Index is the referenced feature's row index.
	Index int
}

// String returns a compact text representation of the feature
// reference.
func (r Ref) String() string {
	return fmt.Sprintf("Ref{%s,Index:%d}", r.Box, r.Index)
}

// A node is a private version of Ref used to (hopefully) reduce
// confusion. A leaf node is exactly the same as a Ref and has the same
// meaning. A non-leaf node is subtly different: the Box is the extent
// of the entire subtree rooted at the non-leaf node; and the index is
// the node index of the node's first child node.
type node struct {
	Ref
}

// A levelRange represents the range of node indices that comprise a
// level. Each levelRange is a closed/open node index pair [start, end)
// where start is the index (into PackedRTree's node list) of the first
// node in the level and end is the index that is one past the last
// node in the level.
type levelRange struct {
	start, end int
}

// levelify creates the list of levelRange structures which
// deterministically results from a given leaf node count (numRefs) and
// child node count (nodeSize).
//
// For example, assume numRefs = 4, nodeSize = 2. The output of this
// function will be [[3, 7], [1, 3], [0, 1]], where the first item in
// the list represents the leaf node level, and the last item in the
// list is the root level.
func levelify(numRefs, nodeSize int) ([]levelRange, error) {
	// numInternal is the number of internal nodes in the tree, a
	// number strictly less than numRefs.
	var numInternal int

	// Generate a list of node counts per level, leaf level first.
	//
	// Keeping with the example numRefs = 4, nodeSize = 2, the result
	// of this logic is nodesPerLevel = [4, 2, 1].
	nodesThisLevel := numRefs
	nodesPerLevel := make([]int, 1, 16)
	nodesPerLevel[0] = nodesThisLevel
	for {
		nodesThisLevel = (nodesThisLevel + nodeSize - 1) / nodeSize
		nodesPerLevel = append(nodesPerLevel, nodesThisLevel)
		numInternal += nodesThisLevel
		if nodesThisLevel == 1 {
			break
		}
	}

	// Sum up the total number of nodes, guarding against overflow.
	if numInternal > math.MaxInt-numRefs {
		return nil, textErr("total node count overflows int")
	}
	numNodes := numRefs + numInternal

	// Generate a list of node start indices per level, in the same
	// order as the final levelRange list.
	//
	// Keeping with the example numRefs = 4, nodeSize = 2, the result
	// of this logic is levelIndices = [3, 1, 0].
	levelIndices := make([]int, len(nodesPerLevel))
	nodesRemaining := numNodes
	for i := range nodesPerLevel {
		nodesRemaining -= nodesPerLevel[i]
		levelIndices[i] = nodesRemaining
	}

	// Generate and return the final list of levelRange structures.
	levels := make([]levelRange, len(levelIndices))
	for i := range levelIndices {
		levels[i].start = levelIndices[i]
		levels[i].end = levelIndices[i] + nodesPerLevel[i]
	}
	return levels, nil
}

// A ticket is a pending work item in the stack driving a PackedRTree
// search loop.
type ticket struct {
	// nodeIndex is the index of the first node to search.
	nodeIndex int
	// level is the R-Tree level that nodeIndex belongs to. Level 0
	// contains the leaf nodes.
	level int
}

// PackedRTree is a packed Hilbert R-Tree over feature bounding boxes.
// The zero value is not usable; obtain a tree from Build.
type PackedRTree struct {
	// numRefs is the number of leaf nodes, i.e. Ref values, in the
	// tree. A tree with numRefs == 0 is valid: every query on it
	// returns no results.
	numRefs int
	// nodeSize is the number of child nodes per parent node.
	nodeSize int
	// levels is the list of levelRange boundaries. In keeping with the
	// Hilbert R-Tree literature, the leaf nodes are at level 0 and the
	// root node is at len(levels)-1.
	levels []levelRange
	// nodes is the complete list of nodes in the tree, internal nodes
	// first, leaf nodes last.
	nodes []node
}

// Build bulk-loads a packed Hilbert R-Tree from a list of feature
// references. The input slice is copied and Hilbert-sorted internally,
// so the caller's slice is not modified and its order does not matter.
// References whose box is EmptyBox (null or empty features) should be
// omitted by the caller; if present they cluster at curve position
// zero and can never match a query.
//
// The fanout of every node is nodeSize, fixed for the lifetime of the
// tree. Build panics if nodeSize is less than 2. An empty reference
// list yields a valid empty tree.
func Build(refs []Ref, nodeSize uint16) (*PackedRTree, error) {
	if nodeSize < 2 {
		textPanic("node size must be at least 2")
	}
	if len(refs) == 0 {
		return &PackedRTree{nodeSize: int(nodeSize)}, nil
	}

	// Compute the extent of the reference set and Hilbert-sort a copy
	// of the references within it.
	extent := EmptyBox
	for i := range refs {
		extent.Expand(&refs[i].Box)
	}
	sorted := make([]Ref, len(refs))
	copy(sorted, refs)
	HilbertSort(sorted, extent)

	levels, err := levelify(len(sorted), int(nodeSize))
	if err != nil {
		return nil, err
	}
	prt := &PackedRTree{
		numRefs:  len(sorted),
		nodeSize: int(nodeSize),
		levels:   levels,
		nodes:    make([]node, levels[0].end),
	}

	// Save copies of the leaf nodes.
	i := prt.levels[0].start
	for j := range sorted {
		prt.nodes[i] = node{sorted[j]}
		i++
	}
	// Generate the internal nodes bottom-up. Each parent records the
	// node index of its first child and the box enclosing all of its
	// children.
	for i = 0; i < len(prt.levels)-1; i++ {
		level := prt.levels[i]
		nodeIndex := level.start
		parentIndex := prt.levels[i+1].start
		for nodeIndex < level.end {
			parent := &prt.nodes[parentIndex]
			*parent = node{Ref: Ref{Box: EmptyBox, Index: nodeIndex}}
			var j int
			for {
				parent.Expand(&prt.nodes[nodeIndex].Box)
				j++
				nodeIndex++
				if j == prt.nodeSize || nodeIndex == level.end {
					break
				}
			}
			parentIndex++
		}
	}

	return prt, nil
}

// Bounds returns the bounding box around all features referenced by
// the tree, or EmptyBox for an empty tree.
func (prt *PackedRTree) Bounds() Box {
	if prt.numRefs == 0 {
		return EmptyBox
	}
	return prt.nodes[0].Box
}

// NumRefs returns the number of feature references stored in the tree.
func (prt *PackedRTree) NumRefs() int {
	return prt.numRefs
}

// NodeSize returns the child node count of the tree.
func (prt *PackedRTree) NodeSize() uint16 {
	return uint16(prt.nodeSize)
}

// String returns a summary description of the tree.
func (prt *PackedRTree) String() string {
	return fmt.Sprintf("PackedRTree{Bounds:%s,NumRefs:%d,NodeSize:%d}", prt.Bounds(), prt.numRefs, prt.nodeSize)
}

// Results is a list of row indices returned by Search. The traversal
// order is deterministic for a given tree and query box but otherwise
// unspecified; Sort puts the indices in ascending order.
type Results []int

// Sort sorts the results in ascending row index order.
func (rs Results) Sort() {
	sort.Ints(rs)
}

// Search returns the row index of every feature whose bounding box
// intersects the query box. Boxes touching the query box only at an
// edge or corner are included.
func (prt *PackedRTree) Search(b Box) Results {
	r := make(Results, 0)
	if prt.numRefs == 0 {
		return r
	}

	// Depth-first traversal using an explicit ticket stack, starting
	// from the root node.
	q := make([]ticket, 1, 16)
	q[0] = ticket{nodeIndex: 0, level: len(prt.levels) - 1}

	for len(q) > 0 {
		t := q[len(q)-1]
		q = q[:len(q)-1]
		// Find the end node index to search this iteration and decide
		// if the target nodes to search are leaves.
		end := t.nodeIndex + prt.nodeSize
		if prt.levels[t.level].end < end {
			end = prt.levels[t.level].end
		}
		isLeafLevel := t.nodeIndex >= prt.levels[0].start
		// Search the nodes.
		for pos := t.nodeIndex; pos < end; pos++ {
			n := &prt.nodes[pos]
			if !b.Intersects(&n.Box) {
				continue
			} else if isLeafLevel {
				r = append(r, n.Index)
			} else {
				q = append(q, ticket{nodeIndex: n.Index, level: t.level - 1})
			}
		}
	}
	return r
}
