// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "github.com/paulmach/orb"

// LineStringArray is a columnar array of line strings. One offset
// level maps each row to its coordinate range: row i spans coordinates
// [geomOffsets[i], geomOffsets[i+1]). An empty line string has an
// offset range of length zero, which is distinct from a null row.
type LineStringArray struct {
	coords      coords
	geomOffsets []int32
	validity    []byte
	nulls       int
}

// NewLineStringArray assembles a LineStringArray from raw parts. The
// offset buffer must have one more entry than the row count, start at
// 0, be non-decreasing, and terminate at the coordinate count;
// otherwise ErrDimensionMismatch is returned. The buffers are owned by
// the array after the call.
func NewLineStringArray(x, y []float64, geomOffsets []int32, validityBitmap []byte) (*LineStringArray, error) {
	if len(x) != len(y) {
		return nil, mismatchErr(ErrDimensionMismatch, "x buffer has %d values, y buffer has %d", len(x), len(y))
	}
	if !validOffsets(geomOffsets, len(x)) {
		return nil, mismatchErr(ErrDimensionMismatch, "geometry offsets do not tile %d coordinates", len(x))
	}
	nulls, err := checkBitmap(validityBitmap, len(geomOffsets)-1)
	if err != nil {
		return nil, err
	}
	return &LineStringArray{
		coords:      coords{x: x, y: y},
		geomOffsets: geomOffsets,
		validity:    validityBitmap,
		nulls:       nulls,
	}, nil
}

// Type returns TypeLineString.
func (a *LineStringArray) Type() GeomType { return TypeLineString }

// Len returns the number of logical rows, nulls included.
func (a *LineStringArray) Len() int { return len(a.geomOffsets) - 1 }

// NullN returns the number of null rows.
func (a *LineStringArray) NullN() int { return a.nulls }

// ValidityBitmap returns the packed validity bitmap, or nil if every
// row is valid.
func (a *LineStringArray) ValidityBitmap() []byte { return a.validity }

// IsValid reports whether row i is non-null.
func (a *LineStringArray) IsValid(i int) bool {
	checkBounds(i, a.Len())
	return bitmapValid(a.validity, i)
}

// Value materializes row i as an orb.LineString. A null row
// materializes as an empty line string.
func (a *LineStringArray) Value(i int) orb.LineString {
	checkBounds(i, a.Len())
	return a.coords.line(int(a.geomOffsets[i]), int(a.geomOffsets[i+1]))
}

// Geometry returns row i as an orb.Geometry, or nil for a null row.
func (a *LineStringArray) Geometry(i int) orb.Geometry {
	if !a.IsValid(i) {
		return nil
	}
	return a.Value(i)
}

// Bound returns the bounding box of row i, or false for a null or
// empty row.
func (a *LineStringArray) Bound(i int) (orb.Bound, bool) {
	if !a.IsValid(i) {
		return orb.Bound{}, false
	}
	return a.coords.bound(int(a.geomOffsets[i]), int(a.geomOffsets[i+1]))
}

// LineStringBuilder builds a LineStringArray row by row.
type LineStringBuilder struct {
	coords      coords
	geomOffsets []int32
	validity    validity
}

// NewLineStringBuilder returns an empty LineStringBuilder.
func NewLineStringBuilder() *LineStringBuilder {
	return &LineStringBuilder{geomOffsets: []int32{0}}
}

// Append appends one line string row. An empty line string appends a
// valid row whose coordinate range is empty.
func (b *LineStringBuilder) Append(ls orb.LineString) {
	for _, p := range ls {
		b.coords.push(p)
	}
	b.geomOffsets = append(b.geomOffsets, offset32(b.coords.len()))
	b.validity.append(true)
}

// AppendNull appends a null row.
func (b *LineStringBuilder) AppendNull() {
	b.geomOffsets = append(b.geomOffsets, offset32(b.coords.len()))
	b.validity.append(false)
}

// AppendGeometry implements Builder. Only orb.LineString geometries
// (and nil, for a null row) are accepted.
func (b *LineStringBuilder) AppendGeometry(g orb.Geometry) error {
	if g == nil {
		b.AppendNull()
		return nil
	}
	ls, ok := g.(orb.LineString)
	if !ok {
		return mismatchErr(ErrTypeMismatch, "cannot store %T in a LineString array", g)
	}
	b.Append(ls)
	return nil
}

// Len returns the number of rows appended so far.
func (b *LineStringBuilder) Len() int { return len(b.geomOffsets) - 1 }

// NewArray finishes the builder and returns the built array. The
// builder is reset to empty.
func (b *LineStringBuilder) NewArray() *LineStringArray {
	a := &LineStringArray{
		coords:      b.coords,
		geomOffsets: b.geomOffsets,
		validity:    b.validity.finish(),
		nulls:       b.validity.nulls,
	}
	*b = *NewLineStringBuilder()
	return a
}
