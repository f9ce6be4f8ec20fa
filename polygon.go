// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "github.com/paulmach/orb"

// PolygonArray is a columnar array of polygons. Two offset levels map
// each row to its ring range and each ring to its coordinate range:
// row i spans rings [geomOffsets[i], geomOffsets[i+1]), and ring r
// spans coordinates [ringOffsets[r], ringOffsets[r+1]).
type PolygonArray struct {
	coords      coords
	geomOffsets []int32
	ringOffsets []int32
	validity    []byte
	nulls       int
}

// NewPolygonArray assembles a PolygonArray from raw parts, validating
// both offset levels. The buffers are owned by the array after the
// call. Returns ErrDimensionMismatch on any buffer inconsistency.
func NewPolygonArray(x, y []float64, geomOffsets, ringOffsets []int32, validityBitmap []byte) (*PolygonArray, error) {
	if len(x) != len(y) {
		return nil, mismatchErr(ErrDimensionMismatch, "x buffer has %d values, y buffer has %d", len(x), len(y))
	}
	if !validOffsets(ringOffsets, len(x)) {
		return nil, mismatchErr(ErrDimensionMismatch, "ring offsets do not tile %d coordinates", len(x))
	}
	if !validOffsets(geomOffsets, len(ringOffsets)-1) {
		return nil, mismatchErr(ErrDimensionMismatch, "geometry offsets do not tile %d rings", len(ringOffsets)-1)
	}
	nulls, err := checkBitmap(validityBitmap, len(geomOffsets)-1)
	if err != nil {
		return nil, err
	}
	return &PolygonArray{
		coords:      coords{x: x, y: y},
		geomOffsets: geomOffsets,
		ringOffsets: ringOffsets,
		validity:    validityBitmap,
		nulls:       nulls,
	}, nil
}

// Type returns TypePolygon.
func (a *PolygonArray) Type() GeomType { return TypePolygon }

// Len returns the number of logical rows, nulls included.
func (a *PolygonArray) Len() int { return len(a.geomOffsets) - 1 }

// NullN returns the number of null rows.
func (a *PolygonArray) NullN() int { return a.nulls }

// ValidityBitmap returns the packed validity bitmap, or nil if every
// row is valid.
func (a *PolygonArray) ValidityBitmap() []byte { return a.validity }

// IsValid reports whether row i is non-null.
func (a *PolygonArray) IsValid(i int) bool {
	checkBounds(i, a.Len())
	return bitmapValid(a.validity, i)
}

// Value materializes row i as an orb.Polygon. A null row materializes
// as an empty polygon.
func (a *PolygonArray) Value(i int) orb.Polygon {
	checkBounds(i, a.Len())
	lo, hi := a.geomOffsets[i], a.geomOffsets[i+1]
	poly := make(orb.Polygon, 0, hi-lo)
	for r := lo; r < hi; r++ {
		ring := orb.Ring(a.coords.line(int(a.ringOffsets[r]), int(a.ringOffsets[r+1])))
		poly = append(poly, ring)
	}
	return poly
}

// Geometry returns row i as an orb.Geometry, or nil for a null row.
func (a *PolygonArray) Geometry(i int) orb.Geometry {
	if !a.IsValid(i) {
		return nil
	}
	return a.Value(i)
}

// Bound returns the bounding box of row i, or false for a null or
// empty row. The box spans every ring of the polygon.
func (a *PolygonArray) Bound(i int) (orb.Bound, bool) {
	if !a.IsValid(i) {
		return orb.Bound{}, false
	}
	lo, hi := a.geomOffsets[i], a.geomOffsets[i+1]
	if lo == hi {
		return orb.Bound{}, false
	}
	return a.coords.bound(int(a.ringOffsets[lo]), int(a.ringOffsets[hi]))
}

// PolygonBuilder builds a PolygonArray row by row.
type PolygonBuilder struct {
	coords      coords
	geomOffsets []int32
	ringOffsets []int32
	validity    validity
}

// NewPolygonBuilder returns an empty PolygonBuilder.
func NewPolygonBuilder() *PolygonBuilder {
	return &PolygonBuilder{geomOffsets: []int32{0}, ringOffsets: []int32{0}}
}

// Append appends one polygon row.
func (b *PolygonBuilder) Append(poly orb.Polygon) {
	for _, ring := range poly {
		for _, p := range ring {
			b.coords.push(p)
		}
		b.ringOffsets = append(b.ringOffsets, offset32(b.coords.len()))
	}
	b.geomOffsets = append(b.geomOffsets, offset32(len(b.ringOffsets)-1))
	b.validity.append(true)
}

// AppendNull appends a null row.
func (b *PolygonBuilder) AppendNull() {
	b.geomOffsets = append(b.geomOffsets, offset32(len(b.ringOffsets)-1))
	b.validity.append(false)
}

// AppendGeometry implements Builder. orb.Polygon, orb.Ring and
// orb.Bound geometries (and nil, for a null row) are accepted; rings
// and bounds are stored as single-ring polygons.
func (b *PolygonBuilder) AppendGeometry(g orb.Geometry) error {
	if g == nil {
		b.AppendNull()
		return nil
	}
	poly, ok := asPolygon(g)
	if !ok {
		return mismatchErr(ErrTypeMismatch, "cannot store %T in a Polygon array", g)
	}
	b.Append(poly)
	return nil
}

// Len returns the number of rows appended so far.
func (b *PolygonBuilder) Len() int { return len(b.geomOffsets) - 1 }

// NewArray finishes the builder and returns the built array. The
// builder is reset to empty.
func (b *PolygonBuilder) NewArray() *PolygonArray {
	a := &PolygonArray{
		coords:      b.coords,
		geomOffsets: b.geomOffsets,
		ringOffsets: b.ringOffsets,
		validity:    b.validity.finish(),
		nulls:       b.validity.nulls,
	}
	*b = *NewPolygonBuilder()
	return a
}
