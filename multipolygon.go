// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "github.com/paulmach/orb"

// MultiPolygonArray is the deepest-nested columnar array: three offset
// levels map each row to its polygon range, each polygon to its ring
// range, and each ring to its coordinate range.
type MultiPolygonArray struct {
	coords      coords
	geomOffsets []int32
	polyOffsets []int32
	ringOffsets []int32
	validity    []byte
	nulls       int
}

// NewMultiPolygonArray assembles a MultiPolygonArray from raw parts,
// validating all three offset levels outermost-last so the first
// inconsistency reported is the innermost one. Returns
// ErrDimensionMismatch on any buffer inconsistency. The buffers are
// owned by the array after the call.
func NewMultiPolygonArray(x, y []float64, geomOffsets, polyOffsets, ringOffsets []int32, validityBitmap []byte) (*MultiPolygonArray, error) {
	if len(x) != len(y) {
		return nil, mismatchErr(ErrDimensionMismatch, "x buffer has %d values, y buffer has %d", len(x), len(y))
	}
	if !validOffsets(ringOffsets, len(x)) {
		return nil, mismatchErr(ErrDimensionMismatch, "ring offsets do not tile %d coordinates", len(x))
	}
	if !validOffsets(polyOffsets, len(ringOffsets)-1) {
		return nil, mismatchErr(ErrDimensionMismatch, "polygon offsets do not tile %d rings", len(ringOffsets)-1)
	}
	if !validOffsets(geomOffsets, len(polyOffsets)-1) {
		return nil, mismatchErr(ErrDimensionMismatch, "geometry offsets do not tile %d polygons", len(polyOffsets)-1)
	}
	nulls, err := checkBitmap(validityBitmap, len(geomOffsets)-1)
	if err != nil {
		return nil, err
	}
	return &MultiPolygonArray{
		coords:      coords{x: x, y: y},
		geomOffsets: geomOffsets,
		polyOffsets: polyOffsets,
		ringOffsets: ringOffsets,
		validity:    validityBitmap,
		nulls:       nulls,
	}, nil
}

// Type returns TypeMultiPolygon.
func (a *MultiPolygonArray) Type() GeomType { return TypeMultiPolygon }

// Len returns the number of logical rows, nulls included.
func (a *MultiPolygonArray) Len() int { return len(a.geomOffsets) - 1 }

// NullN returns the number of null rows.
func (a *MultiPolygonArray) NullN() int { return a.nulls }

// ValidityBitmap returns the packed validity bitmap, or nil if every
// row is valid.
func (a *MultiPolygonArray) ValidityBitmap() []byte { return a.validity }

// IsValid reports whether row i is non-null.
func (a *MultiPolygonArray) IsValid(i int) bool {
	checkBounds(i, a.Len())
	return bitmapValid(a.validity, i)
}

// Value materializes row i as an orb.MultiPolygon.
func (a *MultiPolygonArray) Value(i int) orb.MultiPolygon {
	checkBounds(i, a.Len())
	pLo, pHi := a.geomOffsets[i], a.geomOffsets[i+1]
	mp := make(orb.MultiPolygon, 0, pHi-pLo)
	for p := pLo; p < pHi; p++ {
		rLo, rHi := a.polyOffsets[p], a.polyOffsets[p+1]
		poly := make(orb.Polygon, 0, rHi-rLo)
		for r := rLo; r < rHi; r++ {
			poly = append(poly, orb.Ring(a.coords.line(int(a.ringOffsets[r]), int(a.ringOffsets[r+1]))))
		}
		mp = append(mp, poly)
	}
	return mp
}

// Geometry returns row i as an orb.Geometry, or nil for a null row.
func (a *MultiPolygonArray) Geometry(i int) orb.Geometry {
	if !a.IsValid(i) {
		return nil
	}
	return a.Value(i)
}

// Bound returns the bounding box of row i, or false for a null or
// empty row.
func (a *MultiPolygonArray) Bound(i int) (orb.Bound, bool) {
	if !a.IsValid(i) {
		return orb.Bound{}, false
	}
	pLo, pHi := a.geomOffsets[i], a.geomOffsets[i+1]
	if pLo == pHi {
		return orb.Bound{}, false
	}
	rLo, rHi := a.polyOffsets[pLo], a.polyOffsets[pHi]
	if rLo == rHi {
		return orb.Bound{}, false
	}
	return a.coords.bound(int(a.ringOffsets[rLo]), int(a.ringOffsets[rHi]))
}

// MultiPolygonBuilder builds a MultiPolygonArray row by row.
type MultiPolygonBuilder struct {
	coords      coords
	geomOffsets []int32
	polyOffsets []int32
	ringOffsets []int32
	validity    validity
}

// NewMultiPolygonBuilder returns an empty MultiPolygonBuilder.
func NewMultiPolygonBuilder() *MultiPolygonBuilder {
	return &MultiPolygonBuilder{
		geomOffsets: []int32{0},
		polyOffsets: []int32{0},
		ringOffsets: []int32{0},
	}
}

// Append appends one multi-polygon row.
func (b *MultiPolygonBuilder) Append(mp orb.MultiPolygon) {
	for _, poly := range mp {
		for _, ring := range poly {
			for _, p := range ring {
				b.coords.push(p)
			}
			b.ringOffsets = append(b.ringOffsets, offset32(b.coords.len()))
		}
		b.polyOffsets = append(b.polyOffsets, offset32(len(b.ringOffsets)-1))
	}
	b.geomOffsets = append(b.geomOffsets, offset32(len(b.polyOffsets)-1))
	b.validity.append(true)
}

// AppendNull appends a null row.
func (b *MultiPolygonBuilder) AppendNull() {
	b.geomOffsets = append(b.geomOffsets, offset32(len(b.polyOffsets)-1))
	b.validity.append(false)
}

// AppendGeometry implements Builder. Only orb.MultiPolygon geometries
// (and nil, for a null row) are accepted.
func (b *MultiPolygonBuilder) AppendGeometry(g orb.Geometry) error {
	if g == nil {
		b.AppendNull()
		return nil
	}
	mp, ok := g.(orb.MultiPolygon)
	if !ok {
		return mismatchErr(ErrTypeMismatch, "cannot store %T in a MultiPolygon array", g)
	}
	b.Append(mp)
	return nil
}

// Len returns the number of rows appended so far.
func (b *MultiPolygonBuilder) Len() int { return len(b.geomOffsets) - 1 }

// NewArray finishes the builder and returns the built array. The
// builder is reset to empty.
func (b *MultiPolygonBuilder) NewArray() *MultiPolygonArray {
	a := &MultiPolygonArray{
		coords:      b.coords,
		geomOffsets: b.geomOffsets,
		polyOffsets: b.polyOffsets,
		ringOffsets: b.ringOffsets,
		validity:    b.validity.finish(),
		nulls:       b.validity.nulls,
	}
	*b = *NewMultiPolygonBuilder()
	return a
}
