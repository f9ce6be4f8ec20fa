// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "github.com/paulmach/orb"

// MultiPointArray is a columnar array of multi-points. The buffer
// discipline is identical to LineStringArray: one offset level from
// row to coordinate range. Only the materialized geometry type
// differs.
type MultiPointArray struct {
	coords      coords
	geomOffsets []int32
	validity    []byte
	nulls       int
}

// NewMultiPointArray assembles a MultiPointArray from raw parts. See
// NewLineStringArray for the validation rules.
func NewMultiPointArray(x, y []float64, geomOffsets []int32, validityBitmap []byte) (*MultiPointArray, error) {
	ls, err := NewLineStringArray(x, y, geomOffsets, validityBitmap)
	if err != nil {
		return nil, err
	}
	return &MultiPointArray{coords: ls.coords, geomOffsets: ls.geomOffsets, validity: ls.validity, nulls: ls.nulls}, nil
}

// Type returns TypeMultiPoint.
func (a *MultiPointArray) Type() GeomType { return TypeMultiPoint }

// Len returns the number of logical rows, nulls included.
func (a *MultiPointArray) Len() int { return len(a.geomOffsets) - 1 }

// NullN returns the number of null rows.
func (a *MultiPointArray) NullN() int { return a.nulls }

// ValidityBitmap returns the packed validity bitmap, or nil if every
// row is valid.
func (a *MultiPointArray) ValidityBitmap() []byte { return a.validity }

// IsValid reports whether row i is non-null.
func (a *MultiPointArray) IsValid(i int) bool {
	checkBounds(i, a.Len())
	return bitmapValid(a.validity, i)
}

// Value materializes row i as an orb.MultiPoint.
func (a *MultiPointArray) Value(i int) orb.MultiPoint {
	checkBounds(i, a.Len())
	return orb.MultiPoint(a.coords.line(int(a.geomOffsets[i]), int(a.geomOffsets[i+1])))
}

// Geometry returns row i as an orb.Geometry, or nil for a null row.
func (a *MultiPointArray) Geometry(i int) orb.Geometry {
	if !a.IsValid(i) {
		return nil
	}
	return a.Value(i)
}

// Bound returns the bounding box of row i, or false for a null or
// empty row.
func (a *MultiPointArray) Bound(i int) (orb.Bound, bool) {
	if !a.IsValid(i) {
		return orb.Bound{}, false
	}
	return a.coords.bound(int(a.geomOffsets[i]), int(a.geomOffsets[i+1]))
}

// MultiPointBuilder builds a MultiPointArray row by row.
type MultiPointBuilder struct {
	inner LineStringBuilder
}

// NewMultiPointBuilder returns an empty MultiPointBuilder.
func NewMultiPointBuilder() *MultiPointBuilder {
	return &MultiPointBuilder{inner: *NewLineStringBuilder()}
}

// Append appends one multi-point row.
func (b *MultiPointBuilder) Append(mp orb.MultiPoint) {
	b.inner.Append(orb.LineString(mp))
}

// AppendNull appends a null row.
func (b *MultiPointBuilder) AppendNull() {
	b.inner.AppendNull()
}

// AppendGeometry implements Builder. Only orb.MultiPoint geometries
// (and nil, for a null row) are accepted.
func (b *MultiPointBuilder) AppendGeometry(g orb.Geometry) error {
	if g == nil {
		b.AppendNull()
		return nil
	}
	mp, ok := g.(orb.MultiPoint)
	if !ok {
		return mismatchErr(ErrTypeMismatch, "cannot store %T in a MultiPoint array", g)
	}
	b.Append(mp)
	return nil
}

// Len returns the number of rows appended so far.
func (b *MultiPointBuilder) Len() int { return b.inner.Len() }

// NewArray finishes the builder and returns the built array. The
// builder is reset to empty.
func (b *MultiPointBuilder) NewArray() *MultiPointArray {
	ls := b.inner.NewArray()
	return &MultiPointArray{coords: ls.coords, geomOffsets: ls.geomOffsets, validity: ls.validity, nulls: ls.nulls}
}
