// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"github.com/paulmach/orb"
)

// Array is a columnar geometry array. All implementations are
// immutable after construction and safe for concurrent readers.
//
// Row access methods panic with a descriptive message if the row index
// is out of range.
type Array interface {
	// Type returns the geometry type of the array.
	Type() GeomType
	// Len returns the number of logical rows, nulls included.
	Len() int
	// IsValid reports whether row i is non-null. An array without a
	// validity bitmap has only valid rows.
	IsValid(i int) bool
	// Geometry materializes row i as an orb.Geometry, or nil if the
	// row is null. The content of a null row is unspecified; callers
	// that care about the null/empty distinction should consult
	// IsValid first.
	Geometry(i int) orb.Geometry
	// Bound returns the bounding box of row i. The second return
	// value is false for null rows and for empty geometries, which
	// have no extent.
	Bound(i int) (orb.Bound, bool)
	// NullN returns the number of null rows.
	NullN() int
	// ValidityBitmap returns the packed validity bitmap, or nil if
	// every row is valid. The returned slice is the array's own
	// storage and must not be modified.
	ValidityBitmap() []byte
}

// Builder is the common interface of the typed array builders. Each
// builder also exposes a strongly typed Append method and a NewArray
// method returning the concrete array type.
type Builder interface {
	// AppendGeometry appends one row. A nil geometry appends a null
	// row. Appending a geometry whose concrete type the builder does
	// not store returns ErrTypeMismatch and leaves the builder
	// unchanged.
	AppendGeometry(g orb.Geometry) error
	// AppendNull appends a null row.
	AppendNull()
	// Len returns the number of rows appended so far.
	Len() int
}

// FromGeometries builds an array from a slice of geometries in a
// single pass. A nil element produces a null row. If every non-nil
// element has the same concrete type the result is the corresponding
// typed array; otherwise the result is a MixedArray. An empty or
// all-nil input produces an empty MixedArray.
//
// orb.Ring and orb.Bound inputs are stored as single-ring polygons.
// orb.Collection is not a supported row type and yields
// ErrTypeMismatch.
func FromGeometries(geoms []orb.Geometry) (Array, error) {
	t := TypeUnknown
	mixed := false
	for _, g := range geoms {
		if g == nil {
			continue
		}
		gt := typeOf(g)
		if gt == TypeUnknown {
			return nil, mismatchErr(ErrTypeMismatch, "unsupported geometry %T", g)
		}
		if t == TypeUnknown {
			t = gt
		} else if t != gt {
			mixed = true
		}
	}
	if mixed || t == TypeUnknown {
		b := NewMixedBuilder()
		for _, g := range geoms {
			if err := b.AppendGeometry(g); err != nil {
				return nil, err
			}
		}
		return b.NewArray(), nil
	}
	b := builderFor(t)
	for _, g := range geoms {
		if err := b.AppendGeometry(g); err != nil {
			return nil, err
		}
	}
	return newArrayOf(b), nil
}

// BuildArray builds an array of a specific type from a slice of
// geometries in a single pass. A nil element produces a null row.
// Geometries whose concrete type the target array cannot store cause
// ErrTypeMismatch and abort the whole construction; a TypeMixed target
// accepts every supported type and never fails on heterogeneity.
func BuildArray(t GeomType, geoms []orb.Geometry) (Array, error) {
	b := builderFor(t)
	for _, g := range geoms {
		if err := b.AppendGeometry(g); err != nil {
			return nil, err
		}
	}
	return newArrayOf(b), nil
}

// Geometries materializes every row of an array in row order, with nil
// elements for null rows. It is the counterpart of FromGeometries.
func Geometries(a Array) []orb.Geometry {
	geoms := make([]orb.Geometry, a.Len())
	for i := range geoms {
		geoms[i] = a.Geometry(i)
	}
	return geoms
}

// typeOf maps a concrete orb geometry to its array type tag. Rings and
// bounds are polygons for storage purposes. Unsupported geometries map
// to TypeUnknown.
func typeOf(g orb.Geometry) GeomType {
	switch g.(type) {
	case orb.Point:
		return TypePoint
	case orb.LineString:
		return TypeLineString
	case orb.Ring, orb.Polygon, orb.Bound:
		return TypePolygon
	case orb.MultiPoint:
		return TypeMultiPoint
	case orb.MultiLineString:
		return TypeMultiLineString
	case orb.MultiPolygon:
		return TypeMultiPolygon
	default:
		return TypeUnknown
	}
}

func builderFor(t GeomType) Builder {
	switch t {
	case TypePoint:
		return NewPointBuilder()
	case TypeLineString:
		return NewLineStringBuilder()
	case TypePolygon:
		return NewPolygonBuilder()
	case TypeMultiPoint:
		return NewMultiPointBuilder()
	case TypeMultiLineString:
		return NewMultiLineStringBuilder()
	case TypeMultiPolygon:
		return NewMultiPolygonBuilder()
	default:
		return NewMixedBuilder()
	}
}

func newArrayOf(b Builder) Array {
	switch tb := b.(type) {
	case *PointBuilder:
		return tb.NewArray()
	case *LineStringBuilder:
		return tb.NewArray()
	case *PolygonBuilder:
		return tb.NewArray()
	case *MultiPointBuilder:
		return tb.NewArray()
	case *MultiLineStringBuilder:
		return tb.NewArray()
	case *MultiPolygonBuilder:
		return tb.NewArray()
	case *MixedBuilder:
		return tb.NewArray()
	default:
		textPanic("unknown builder type")
		return nil
	}
}

// asPolygon normalizes the polygon-like orb types to orb.Polygon.
func asPolygon(g orb.Geometry) (orb.Polygon, bool) {
	switch v := g.(type) {
	case orb.Polygon:
		return v, true
	case orb.Ring:
		return orb.Polygon{v}, true
	case orb.Bound:
		return orb.Polygon{orb.Ring{
			v.Min,
			{v.Max[0], v.Min[1]},
			v.Max,
			{v.Min[0], v.Max[1]},
			v.Min,
		}}, true
	default:
		return nil, false
	}
}
