// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"github.com/paulmach/orb"

	"github.com/gogama/geoarray/packedrtree"
)

// NewIndex derives the bounding box of every row of the array and
// bulk-loads a packed Hilbert R-Tree over them. Query results refer
// back to array rows by index. Null rows and empty geometries have no
// extent and are not indexed, so they can never appear in a query
// result.
//
// The index is a snapshot: it remains valid only as long as the caller
// keeps using it with the array it was built from. Because arrays are
// immutable this cannot be violated accidentally; a rebuilt array
// needs a new index.
func NewIndex(a Array, nodeSize uint16) (*packedrtree.PackedRTree, error) {
	refs := make([]packedrtree.Ref, 0, a.Len())
	for i := 0; i < a.Len(); i++ {
		b, ok := a.Bound(i)
		if !ok {
			continue
		}
		refs = append(refs, packedrtree.Ref{Box: boxOf(b), Index: i})
	}
	return packedrtree.Build(refs, nodeSize)
}

// boxOf converts an orb.Bound to the index's box representation.
func boxOf(b orb.Bound) packedrtree.Box {
	return packedrtree.Box{
		XMin: b.Min[0],
		YMin: b.Min[1],
		XMax: b.Max[0],
		YMax: b.Max[1],
	}
}
