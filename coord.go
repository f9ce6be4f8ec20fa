// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"math"

	"github.com/paulmach/orb"
)

// coords is the flat coordinate storage shared by every array type:
// separated X and Y buffers of equal length. Coordinate i of the array
// is (x[i], y[i]).
type coords struct {
	x []float64
	y []float64
}

func (c *coords) len() int {
	return len(c.x)
}

func (c *coords) push(p orb.Point) {
	c.x = append(c.x, p[0])
	c.y = append(c.y, p[1])
}

// point returns coordinate i as an orb.Point.
func (c *coords) point(i int) orb.Point {
	return orb.Point{c.x[i], c.y[i]}
}

// line materializes the coordinate range [i, j) as an orb.LineString.
func (c *coords) line(i, j int) orb.LineString {
	ls := make(orb.LineString, j-i)
	for k := i; k < j; k++ {
		ls[k-i] = c.point(k)
	}
	return ls
}

// bound returns the bounding box of the coordinate range [i, j). The
// second return value is false when the range is empty, in which case
// the bound is meaningless.
func (c *coords) bound(i, j int) (orb.Bound, bool) {
	if i >= j {
		return orb.Bound{}, false
	}
	b := orb.Bound{Min: c.point(i), Max: c.point(i)}
	for k := i + 1; k < j; k++ {
		if c.x[k] < b.Min[0] {
			b.Min[0] = c.x[k]
		}
		if c.x[k] > b.Max[0] {
			b.Max[0] = c.x[k]
		}
		if c.y[k] < b.Min[1] {
			b.Min[1] = c.y[k]
		}
		if c.y[k] > b.Max[1] {
			b.Max[1] = c.y[k]
		}
	}
	return b, true
}

// offset32 converts a buffer length to an int32 offset, panicking when
// the length no longer fits the offset space. Wrapping instead would
// corrupt every row past the overflow point.
func offset32(n int) int32 {
	if n > math.MaxInt32 {
		fmtPanic("buffer length %d overflows int32 offset space", n)
	}
	return int32(n)
}

// validOffsets reports whether offsets is a well-formed offset buffer
// indexing a lower-level buffer of length end: non-empty, starting at
// 0, non-decreasing, and terminating exactly at end.
func validOffsets(offsets []int32, end int) bool {
	if len(offsets) == 0 || offsets[0] != 0 {
		return false
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return false
		}
	}
	return int(offsets[len(offsets)-1]) == end
}
