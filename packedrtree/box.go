// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"fmt"
	"math"
)

// A Box is an axis-aligned bounding rectangle.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the empty bounding rectangle. Expanding an EmptyBox by a
// non-empty box yields that box, and an EmptyBox intersects nothing,
// which makes it the correct seed value for accumulating extents.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// Width returns the width of the box.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the height of the box.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Expand grows b to the smallest box enclosing both b and c.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// Intersects reports whether b and o share at least one point. Boxes
// that touch only at an edge or corner intersect.
func (b *Box) Intersects(o *Box) bool {
	if b.XMax < o.XMin || b.XMin > o.XMax {
		return false
	}
	if b.YMax < o.YMin || b.YMin > o.YMax {
		return false
	}
	return true
}

// dist2 returns the squared Euclidean distance from the point (x, y)
// to the nearest point of the box. A point inside the box has distance
// zero. The distance to EmptyBox is +Inf.
func (b *Box) dist2(x, y float64) float64 {
	var dx, dy float64
	if x < b.XMin {
		dx = b.XMin - x
	} else if x > b.XMax {
		dx = x - b.XMax
	}
	if y < b.YMin {
		dy = b.YMin - y
	} else if y > b.YMax {
		dy = y - b.YMax
	}
	return dx*dx + dy*dy
}

// String returns a compact text representation of the box.
func (b Box) String() string {
	return fmt.Sprintf("[%s,%s,%s,%s]", f2s(b.XMin), f2s(b.YMin), f2s(b.XMax), f2s(b.YMax))
}

// f2s formats a float64 compactly, trimming to 8 significant digits.
func f2s(f float64) string {
	return fmt.Sprintf("%.8g", f)
}
