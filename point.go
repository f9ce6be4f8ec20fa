// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"math"

	"github.com/paulmach/orb"
)

// PointArray is a columnar array of points. It has no offset buffers:
// row i is simply coordinate i. A null row stores NaN coordinates so
// that the coordinate buffers keep one entry per row.
type PointArray struct {
	coords   coords
	validity []byte
	nulls    int
}

// NewPointArray assembles a PointArray from raw parts: separated x and
// y coordinate buffers and an optional packed validity bitmap (nil
// means all rows are valid). The buffers are owned by the array after
// the call and must not be modified.
//
// Returns ErrDimensionMismatch if the x and y buffers differ in length
// or the bitmap is too short for the row count.
func NewPointArray(x, y []float64, validityBitmap []byte) (*PointArray, error) {
	if len(x) != len(y) {
		return nil, mismatchErr(ErrDimensionMismatch, "x buffer has %d values, y buffer has %d", len(x), len(y))
	}
	nulls, err := checkBitmap(validityBitmap, len(x))
	if err != nil {
		return nil, err
	}
	return &PointArray{coords: coords{x: x, y: y}, validity: validityBitmap, nulls: nulls}, nil
}

// checkBitmap validates a caller-supplied bitmap against a row count
// and returns the null count.
func checkBitmap(bits []byte, rows int) (int, error) {
	if bits == nil {
		return 0, nil
	}
	if !bitmapCovers(bits, rows) {
		return 0, mismatchErr(ErrDimensionMismatch, "validity bitmap holds %d bits, need %d", len(bits)*8, rows)
	}
	nulls := 0
	for i := 0; i < rows; i++ {
		if !bitmapValid(bits, i) {
			nulls++
		}
	}
	return nulls, nil
}

// Type returns TypePoint.
func (a *PointArray) Type() GeomType { return TypePoint }

// Len returns the number of logical rows, nulls included.
func (a *PointArray) Len() int { return a.coords.len() }

// NullN returns the number of null rows.
func (a *PointArray) NullN() int { return a.nulls }

// ValidityBitmap returns the packed validity bitmap, or nil if every
// row is valid.
func (a *PointArray) ValidityBitmap() []byte { return a.validity }

// IsValid reports whether row i is non-null.
func (a *PointArray) IsValid(i int) bool {
	checkBounds(i, a.Len())
	return bitmapValid(a.validity, i)
}

// Value returns row i as an orb.Point. The value of a null row is
// unspecified.
func (a *PointArray) Value(i int) orb.Point {
	checkBounds(i, a.Len())
	return a.coords.point(i)
}

// Geometry returns row i as an orb.Geometry, or nil for a null row.
func (a *PointArray) Geometry(i int) orb.Geometry {
	if !a.IsValid(i) {
		return nil
	}
	return a.Value(i)
}

// Bound returns the degenerate bounding box of row i, or false for a
// null row.
func (a *PointArray) Bound(i int) (orb.Bound, bool) {
	if !a.IsValid(i) {
		return orb.Bound{}, false
	}
	p := a.coords.point(i)
	return orb.Bound{Min: p, Max: p}, true
}

// PointBuilder builds a PointArray row by row.
type PointBuilder struct {
	coords   coords
	validity validity
}

// NewPointBuilder returns an empty PointBuilder.
func NewPointBuilder() *PointBuilder {
	return &PointBuilder{}
}

// Append appends one point row.
func (b *PointBuilder) Append(p orb.Point) {
	b.coords.push(p)
	b.validity.append(true)
}

// AppendNull appends a null row.
func (b *PointBuilder) AppendNull() {
	b.coords.push(orb.Point{math.NaN(), math.NaN()})
	b.validity.append(false)
}

// AppendGeometry implements Builder. Only orb.Point geometries (and
// nil, for a null row) are accepted.
func (b *PointBuilder) AppendGeometry(g orb.Geometry) error {
	if g == nil {
		b.AppendNull()
		return nil
	}
	p, ok := g.(orb.Point)
	if !ok {
		return mismatchErr(ErrTypeMismatch, "cannot store %T in a Point array", g)
	}
	b.Append(p)
	return nil
}

// Len returns the number of rows appended so far.
func (b *PointBuilder) Len() int { return b.coords.len() }

// NewArray finishes the builder and returns the built array. The
// builder is reset to empty.
func (b *PointBuilder) NewArray() *PointArray {
	a := &PointArray{
		coords:   b.coords,
		validity: b.validity.finish(),
		nulls:    b.validity.nulls,
	}
	*b = PointBuilder{}
	return a
}
