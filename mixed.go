// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "github.com/paulmach/orb"

// MixedArray is a columnar array whose rows may each have a different
// concrete geometry type. It stores one child array per concrete type
// plus, per row, a type tag and a sub-index into the child array of
// that type. Row access dispatches on the tag, so callers pay one
// branch over the cost of the equivalent typed array.
//
// Null rows are tracked by the validity bitmap alone: a null row's tag
// is TypeUnknown and its sub-index is never read.
type MixedArray struct {
	tags     []GeomType
	subIndex []int32
	validity []byte
	nulls    int

	points      *PointArray
	lines       *LineStringArray
	polygons    *PolygonArray
	multiPoints *MultiPointArray
	multiLines  *MultiLineStringArray
	multiPolys  *MultiPolygonArray
}

// Type returns TypeMixed.
func (a *MixedArray) Type() GeomType { return TypeMixed }

// Len returns the number of logical rows, nulls included.
func (a *MixedArray) Len() int { return len(a.tags) }

// NullN returns the number of null rows.
func (a *MixedArray) NullN() int { return a.nulls }

// ValidityBitmap returns the packed validity bitmap, or nil if every
// row is valid.
func (a *MixedArray) ValidityBitmap() []byte { return a.validity }

// IsValid reports whether row i is non-null.
func (a *MixedArray) IsValid(i int) bool {
	checkBounds(i, a.Len())
	return bitmapValid(a.validity, i)
}

// TypeOf returns the concrete geometry type of row i, or TypeUnknown
// for a null row.
func (a *MixedArray) TypeOf(i int) GeomType {
	checkBounds(i, a.Len())
	return a.tags[i]
}

// Geometry materializes row i by dispatching on its type tag. Null
// rows return nil.
func (a *MixedArray) Geometry(i int) orb.Geometry {
	if !a.IsValid(i) {
		return nil
	}
	j := int(a.subIndex[i])
	switch a.tags[i] {
	case TypePoint:
		return a.points.Value(j)
	case TypeLineString:
		return a.lines.Value(j)
	case TypePolygon:
		return a.polygons.Value(j)
	case TypeMultiPoint:
		return a.multiPoints.Value(j)
	case TypeMultiLineString:
		return a.multiLines.Value(j)
	case TypeMultiPolygon:
		return a.multiPolys.Value(j)
	default:
		fmtPanic("row %d has corrupt type tag %d", i, a.tags[i])
		return nil
	}
}

// Bound returns the bounding box of row i, or false for a null or
// empty row.
func (a *MixedArray) Bound(i int) (orb.Bound, bool) {
	if !a.IsValid(i) {
		return orb.Bound{}, false
	}
	j := int(a.subIndex[i])
	switch a.tags[i] {
	case TypePoint:
		return a.points.Bound(j)
	case TypeLineString:
		return a.lines.Bound(j)
	case TypePolygon:
		return a.polygons.Bound(j)
	case TypeMultiPoint:
		return a.multiPoints.Bound(j)
	case TypeMultiLineString:
		return a.multiLines.Bound(j)
	case TypeMultiPolygon:
		return a.multiPolys.Bound(j)
	default:
		fmtPanic("row %d has corrupt type tag %d", i, a.tags[i])
		return orb.Bound{}, false
	}
}

// MixedBuilder builds a MixedArray row by row. It accepts every
// supported concrete geometry type and never reports a type mismatch
// for them.
type MixedBuilder struct {
	tags     []GeomType
	subIndex []int32
	validity validity

	points      PointBuilder
	lines       LineStringBuilder
	polygons    PolygonBuilder
	multiPoints MultiPointBuilder
	multiLines  MultiLineStringBuilder
	multiPolys  MultiPolygonBuilder
}

// NewMixedBuilder returns an empty MixedBuilder.
func NewMixedBuilder() *MixedBuilder {
	return &MixedBuilder{
		lines:       *NewLineStringBuilder(),
		polygons:    *NewPolygonBuilder(),
		multiPoints: *NewMultiPointBuilder(),
		multiLines:  *NewMultiLineStringBuilder(),
		multiPolys:  *NewMultiPolygonBuilder(),
	}
}

// AppendGeometry implements Builder. All concrete geometry types are
// accepted; only orb.Collection (which has no array representation)
// returns ErrTypeMismatch.
func (b *MixedBuilder) AppendGeometry(g orb.Geometry) error {
	if g == nil {
		b.AppendNull()
		return nil
	}
	switch v := g.(type) {
	case orb.Point:
		b.tag(TypePoint, b.points.Len())
		b.points.Append(v)
	case orb.LineString:
		b.tag(TypeLineString, b.lines.Len())
		b.lines.Append(v)
	case orb.Polygon, orb.Ring, orb.Bound:
		poly, _ := asPolygon(v)
		b.tag(TypePolygon, b.polygons.Len())
		b.polygons.Append(poly)
	case orb.MultiPoint:
		b.tag(TypeMultiPoint, b.multiPoints.Len())
		b.multiPoints.Append(v)
	case orb.MultiLineString:
		b.tag(TypeMultiLineString, b.multiLines.Len())
		b.multiLines.Append(v)
	case orb.MultiPolygon:
		b.tag(TypeMultiPolygon, b.multiPolys.Len())
		b.multiPolys.Append(v)
	default:
		return mismatchErr(ErrTypeMismatch, "cannot store %T in a Mixed array", g)
	}
	return nil
}

func (b *MixedBuilder) tag(t GeomType, sub int) {
	b.tags = append(b.tags, t)
	b.subIndex = append(b.subIndex, offset32(sub))
	b.validity.append(true)
}

// AppendNull appends a null row.
func (b *MixedBuilder) AppendNull() {
	b.tags = append(b.tags, TypeUnknown)
	b.subIndex = append(b.subIndex, 0)
	b.validity.append(false)
}

// Len returns the number of rows appended so far.
func (b *MixedBuilder) Len() int { return len(b.tags) }

// NewArray finishes the builder and returns the built array. The
// builder is reset to empty.
func (b *MixedBuilder) NewArray() *MixedArray {
	a := &MixedArray{
		tags:        b.tags,
		subIndex:    b.subIndex,
		validity:    b.validity.finish(),
		nulls:       b.validity.nulls,
		points:      b.points.NewArray(),
		lines:       b.lines.NewArray(),
		polygons:    b.polygons.NewArray(),
		multiPoints: b.multiPoints.NewArray(),
		multiLines:  b.multiLines.NewArray(),
		multiPolys:  b.multiPolys.NewArray(),
	}
	*b = *NewMixedBuilder()
	return a
}
