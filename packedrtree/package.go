// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package packedrtree provides a packed Hilbert R-Tree: a static,
// bulk-loaded spatial index over bounding boxes that answers
// intersection and nearest-neighbor queries with row indices.
//
// The tree is built once from a complete set of feature references and
// is immutable afterward, so a built tree may be queried concurrently
// without locking. There is no incremental insert or remove; a changed
// dataset requires a rebuild from the new box set. Bulk loading packs
// every node to the configured fanout, which keeps the tree shallow
// and sibling overlap low.
package packedrtree
