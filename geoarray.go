// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geoarray stores geometries in flat, Arrow-compatible columnar
// buffers while retaining O(1) random access to any row.
//
// Each array type owns a pair of coordinate buffers (separated X and Y
// values), zero or more int32 offset buffers whose count depends on the
// nesting depth of the geometry type, and an optional validity bitmap
// with one bit per logical row. Arrays are immutable once built: they
// expose no mutating methods, so a built array may be shared freely
// between goroutines without locking. A changed dataset is represented
// by building a new array.
//
// Arrays are built through the typed builders (PointBuilder,
// LineStringBuilder, and so on), through FromGeometries, or by decoding
// interchange bytes with the wkb subpackage. Spatial queries are
// answered by the packedrtree subpackage over bounding boxes derived
// with NewIndex.
//
// Coordinates are always float64 and strictly two-dimensional.
package geoarray

// GeomType identifies the concrete geometry type of an array or of a
// single row within a MixedArray. The numeric values of the concrete
// types match the corresponding interchange type codes.
type GeomType uint8

const (
	// TypeUnknown is the zero GeomType. It is never the type of a
	// built array; within a MixedArray it is the tag stored for null
	// rows, whose content is unspecified.
	TypeUnknown GeomType = iota
	TypePoint
	TypeLineString
	TypePolygon
	TypeMultiPoint
	TypeMultiLineString
	TypeMultiPolygon
	// TypeMixed is the type of a MixedArray, whose rows may each have
	// a different concrete geometry type. It has no interchange type
	// code.
	TypeMixed
)

// String returns the name of the geometry type.
func (t GeomType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeMixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}
