// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "github.com/paulmach/orb"

// MultiLineStringArray is a columnar array of multi-line-strings. Two
// offset levels map each row to its part range and each part to its
// coordinate range, the same discipline PolygonArray uses for rings.
type MultiLineStringArray struct {
	coords      coords
	geomOffsets []int32
	partOffsets []int32
	validity    []byte
	nulls       int
}

// NewMultiLineStringArray assembles a MultiLineStringArray from raw
// parts, validating both offset levels. See NewPolygonArray for the
// validation rules.
func NewMultiLineStringArray(x, y []float64, geomOffsets, partOffsets []int32, validityBitmap []byte) (*MultiLineStringArray, error) {
	p, err := NewPolygonArray(x, y, geomOffsets, partOffsets, validityBitmap)
	if err != nil {
		return nil, err
	}
	return &MultiLineStringArray{
		coords:      p.coords,
		geomOffsets: p.geomOffsets,
		partOffsets: p.ringOffsets,
		validity:    p.validity,
		nulls:       p.nulls,
	}, nil
}

// Type returns TypeMultiLineString.
func (a *MultiLineStringArray) Type() GeomType { return TypeMultiLineString }

// Len returns the number of logical rows, nulls included.
func (a *MultiLineStringArray) Len() int { return len(a.geomOffsets) - 1 }

// NullN returns the number of null rows.
func (a *MultiLineStringArray) NullN() int { return a.nulls }

// ValidityBitmap returns the packed validity bitmap, or nil if every
// row is valid.
func (a *MultiLineStringArray) ValidityBitmap() []byte { return a.validity }

// IsValid reports whether row i is non-null.
func (a *MultiLineStringArray) IsValid(i int) bool {
	checkBounds(i, a.Len())
	return bitmapValid(a.validity, i)
}

// Value materializes row i as an orb.MultiLineString.
func (a *MultiLineStringArray) Value(i int) orb.MultiLineString {
	checkBounds(i, a.Len())
	lo, hi := a.geomOffsets[i], a.geomOffsets[i+1]
	mls := make(orb.MultiLineString, 0, hi-lo)
	for p := lo; p < hi; p++ {
		mls = append(mls, a.coords.line(int(a.partOffsets[p]), int(a.partOffsets[p+1])))
	}
	return mls
}

// Geometry returns row i as an orb.Geometry, or nil for a null row.
func (a *MultiLineStringArray) Geometry(i int) orb.Geometry {
	if !a.IsValid(i) {
		return nil
	}
	return a.Value(i)
}

// Bound returns the bounding box of row i, or false for a null or
// empty row.
func (a *MultiLineStringArray) Bound(i int) (orb.Bound, bool) {
	if !a.IsValid(i) {
		return orb.Bound{}, false
	}
	lo, hi := a.geomOffsets[i], a.geomOffsets[i+1]
	if lo == hi {
		return orb.Bound{}, false
	}
	return a.coords.bound(int(a.partOffsets[lo]), int(a.partOffsets[hi]))
}

// MultiLineStringBuilder builds a MultiLineStringArray row by row.
type MultiLineStringBuilder struct {
	inner PolygonBuilder
}

// NewMultiLineStringBuilder returns an empty MultiLineStringBuilder.
func NewMultiLineStringBuilder() *MultiLineStringBuilder {
	return &MultiLineStringBuilder{inner: *NewPolygonBuilder()}
}

// Append appends one multi-line-string row.
func (b *MultiLineStringBuilder) Append(mls orb.MultiLineString) {
	poly := make(orb.Polygon, len(mls))
	for i, ls := range mls {
		poly[i] = orb.Ring(ls)
	}
	b.inner.Append(poly)
}

// AppendNull appends a null row.
func (b *MultiLineStringBuilder) AppendNull() {
	b.inner.AppendNull()
}

// AppendGeometry implements Builder. Only orb.MultiLineString
// geometries (and nil, for a null row) are accepted.
func (b *MultiLineStringBuilder) AppendGeometry(g orb.Geometry) error {
	if g == nil {
		b.AppendNull()
		return nil
	}
	mls, ok := g.(orb.MultiLineString)
	if !ok {
		return mismatchErr(ErrTypeMismatch, "cannot store %T in a MultiLineString array", g)
	}
	b.Append(mls)
	return nil
}

// Len returns the number of rows appended so far.
func (b *MultiLineStringBuilder) Len() int { return b.inner.Len() }

// NewArray finishes the builder and returns the built array. The
// builder is reset to empty.
func (b *MultiLineStringBuilder) NewArray() *MultiLineStringArray {
	p := b.inner.NewArray()
	return &MultiLineStringArray{
		coords:      p.coords,
		geomOffsets: p.geomOffsets,
		partOffsets: p.ringOffsets,
		validity:    p.validity,
		nulls:       p.nulls,
	}
}
