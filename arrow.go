// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paulmach/orb"
)

// Arrow export.
//
// Every typed array converts to an Apache Arrow array whose physical
// layout is the standard columnar geometry layout: coordinates as a
// struct<x: float64, y: float64> of the separated coordinate buffers,
// wrapped in one Arrow list per nesting level. The conversion shares
// the underlying buffers with the Arrow array rather than copying
// them, which is what makes the arrays here zero-copy interchangeable
// with engines that speak Arrow.

// CoordType is the Arrow data type of the coordinate level:
// struct<x: float64, y: float64>.
var CoordType = arrow.StructOf(
	arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Float64},
	arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Float64},
)

// coordData assembles the Arrow struct-level data over the coordinate
// buffers. The struct level itself is never nullable; validity lives
// on the outermost level only.
func coordData(c *coords) arrow.ArrayData {
	n := c.len()
	x := array.NewData(arrow.PrimitiveTypes.Float64, n,
		[]*memory.Buffer{nil, memory.NewBufferBytes(arrow.Float64Traits.CastToBytes(c.x))},
		nil, 0, 0)
	y := array.NewData(arrow.PrimitiveTypes.Float64, n,
		[]*memory.Buffer{nil, memory.NewBufferBytes(arrow.Float64Traits.CastToBytes(c.y))},
		nil, 0, 0)
	return array.NewData(CoordType, n, []*memory.Buffer{nil}, []arrow.ArrayData{x, y}, 0, 0)
}

// listData wraps child data in one Arrow list level described by the
// given offsets. Validity applies only when the list level is the
// outermost (row) level; pass nil bits and zero nulls otherwise.
func listData(child arrow.ArrayData, offsets []int32, bits []byte, nulls int) arrow.ArrayData {
	var validityBuf *memory.Buffer
	if bits != nil {
		validityBuf = memory.NewBufferBytes(bits)
	}
	dt := arrow.ListOf(child.DataType())
	return array.NewData(dt, len(offsets)-1,
		[]*memory.Buffer{validityBuf, memory.NewBufferBytes(arrow.Int32Traits.CastToBytes(offsets))},
		[]arrow.ArrayData{child}, nulls, 0)
}

// ToArrow returns the array as an Arrow struct array of x and y
// columns, sharing the coordinate buffers.
func (a *PointArray) ToArrow() arrow.Array {
	var validityBuf *memory.Buffer
	if a.validity != nil {
		validityBuf = memory.NewBufferBytes(a.validity)
	}
	coords := coordData(&a.coords)
	data := array.NewData(CoordType, a.Len(),
		[]*memory.Buffer{validityBuf},
		[]arrow.ArrayData{coords.Children()[0], coords.Children()[1]}, a.nulls, 0)
	return array.NewStructData(data)
}

// ToArrow returns the array as an Arrow list-of-coordinates array,
// sharing the coordinate and offset buffers.
func (a *LineStringArray) ToArrow() arrow.Array {
	return array.NewListData(listData(coordData(&a.coords), a.geomOffsets, a.validity, a.nulls))
}

// ToArrow returns the array as an Arrow list-of-list-of-coordinates
// array, sharing the coordinate and offset buffers.
func (a *PolygonArray) ToArrow() arrow.Array {
	rings := listData(coordData(&a.coords), a.ringOffsets, nil, 0)
	return array.NewListData(listData(rings, a.geomOffsets, a.validity, a.nulls))
}

// ToArrow returns the array as an Arrow list-of-coordinates array,
// sharing the coordinate and offset buffers.
func (a *MultiPointArray) ToArrow() arrow.Array {
	return array.NewListData(listData(coordData(&a.coords), a.geomOffsets, a.validity, a.nulls))
}

// ToArrow returns the array as an Arrow list-of-list-of-coordinates
// array, sharing the coordinate and offset buffers.
func (a *MultiLineStringArray) ToArrow() arrow.Array {
	parts := listData(coordData(&a.coords), a.partOffsets, nil, 0)
	return array.NewListData(listData(parts, a.geomOffsets, a.validity, a.nulls))
}

// ToArrow returns the array as a triple-nested Arrow list array,
// sharing the coordinate and offset buffers.
func (a *MultiPolygonArray) ToArrow() arrow.Array {
	rings := listData(coordData(&a.coords), a.ringOffsets, nil, 0)
	polys := listData(rings, a.polyOffsets, nil, 0)
	return array.NewListData(listData(polys, a.geomOffsets, a.validity, a.nulls))
}

// Arrow import.
//
// The ...FromArrow constructors ingest Arrow arrays in the layout
// ToArrow produces: a coordinate struct for points, plus one list
// level per nesting level. Because list<struct> is LineString or
// MultiPoint and list<list<struct>> is Polygon or MultiLineString
// depending only on intent, the caller picks the constructor for the
// geometry type the data represents. The coordinate values are
// copied, so the returned arrays do not retain the Arrow arrays.

// coordColumns extracts the x and y float64 columns from an Arrow
// coordinate struct array.
func coordColumns(a arrow.Array) (*array.Float64, *array.Float64, error) {
	st, ok := a.DataType().(*arrow.StructType)
	if !ok || st.NumFields() != 2 {
		return nil, nil, mismatchErr(ErrTypeMismatch, "not a coordinate struct array: %s", a.DataType())
	}
	s := a.(*array.Struct)
	fx, okx := s.Field(0).(*array.Float64)
	fy, oky := s.Field(1).(*array.Float64)
	if !okx || !oky {
		return nil, nil, mismatchErr(ErrTypeMismatch, "coordinate fields must be float64, got %s", a.DataType())
	}
	return fx, fy, nil
}

// innerList asserts one more list nesting level below a list array.
func innerList(a arrow.Array) (*array.List, error) {
	l, ok := a.(*array.List)
	if !ok {
		return nil, mismatchErr(ErrTypeMismatch, "expected a nested list level, got %s", a.DataType())
	}
	return l, nil
}

// arrowLine materializes the coordinate range [lo, hi) of the x and y
// columns as an orb.LineString.
func arrowLine(x, y *array.Float64, lo, hi int64) orb.LineString {
	ls := make(orb.LineString, 0, hi-lo)
	for j := lo; j < hi; j++ {
		ls = append(ls, orb.Point{x.Value(int(j)), y.Value(int(j))})
	}
	return ls
}

// PointArrayFromArrow builds a PointArray from an Arrow struct array
// of float64 x and y fields.
func PointArrayFromArrow(s *array.Struct) (*PointArray, error) {
	fx, fy, err := coordColumns(s)
	if err != nil {
		return nil, err
	}
	b := NewPointBuilder()
	for i := 0; i < s.Len(); i++ {
		if s.IsNull(i) {
			b.AppendNull()
			continue
		}
		b.Append(orb.Point{fx.Value(i), fy.Value(i)})
	}
	return b.NewArray(), nil
}

// LineStringArrayFromArrow builds a LineStringArray from an Arrow
// list-of-coordinates array.
func LineStringArrayFromArrow(l *array.List) (*LineStringArray, error) {
	fx, fy, err := coordColumns(l.ListValues())
	if err != nil {
		return nil, err
	}
	b := NewLineStringBuilder()
	for i := 0; i < l.Len(); i++ {
		if l.IsNull(i) {
			b.AppendNull()
			continue
		}
		lo, hi := l.ValueOffsets(i)
		b.Append(arrowLine(fx, fy, lo, hi))
	}
	return b.NewArray(), nil
}

// MultiPointArrayFromArrow builds a MultiPointArray from an Arrow
// list-of-coordinates array.
func MultiPointArrayFromArrow(l *array.List) (*MultiPointArray, error) {
	fx, fy, err := coordColumns(l.ListValues())
	if err != nil {
		return nil, err
	}
	b := NewMultiPointBuilder()
	for i := 0; i < l.Len(); i++ {
		if l.IsNull(i) {
			b.AppendNull()
			continue
		}
		lo, hi := l.ValueOffsets(i)
		b.Append(orb.MultiPoint(arrowLine(fx, fy, lo, hi)))
	}
	return b.NewArray(), nil
}

// PolygonArrayFromArrow builds a PolygonArray from an Arrow
// list-of-list-of-coordinates array.
func PolygonArrayFromArrow(l *array.List) (*PolygonArray, error) {
	rings, err := innerList(l.ListValues())
	if err != nil {
		return nil, err
	}
	fx, fy, err := coordColumns(rings.ListValues())
	if err != nil {
		return nil, err
	}
	b := NewPolygonBuilder()
	for i := 0; i < l.Len(); i++ {
		if l.IsNull(i) {
			b.AppendNull()
			continue
		}
		rLo, rHi := l.ValueOffsets(i)
		poly := make(orb.Polygon, 0, rHi-rLo)
		for r := rLo; r < rHi; r++ {
			cLo, cHi := rings.ValueOffsets(int(r))
			poly = append(poly, orb.Ring(arrowLine(fx, fy, cLo, cHi)))
		}
		b.Append(poly)
	}
	return b.NewArray(), nil
}

// MultiLineStringArrayFromArrow builds a MultiLineStringArray from an
// Arrow list-of-list-of-coordinates array.
func MultiLineStringArrayFromArrow(l *array.List) (*MultiLineStringArray, error) {
	parts, err := innerList(l.ListValues())
	if err != nil {
		return nil, err
	}
	fx, fy, err := coordColumns(parts.ListValues())
	if err != nil {
		return nil, err
	}
	b := NewMultiLineStringBuilder()
	for i := 0; i < l.Len(); i++ {
		if l.IsNull(i) {
			b.AppendNull()
			continue
		}
		pLo, pHi := l.ValueOffsets(i)
		mls := make(orb.MultiLineString, 0, pHi-pLo)
		for p := pLo; p < pHi; p++ {
			cLo, cHi := parts.ValueOffsets(int(p))
			mls = append(mls, arrowLine(fx, fy, cLo, cHi))
		}
		b.Append(mls)
	}
	return b.NewArray(), nil
}

// MultiPolygonArrayFromArrow builds a MultiPolygonArray from a
// triple-nested Arrow list array.
func MultiPolygonArrayFromArrow(l *array.List) (*MultiPolygonArray, error) {
	polys, err := innerList(l.ListValues())
	if err != nil {
		return nil, err
	}
	rings, err := innerList(polys.ListValues())
	if err != nil {
		return nil, err
	}
	fx, fy, err := coordColumns(rings.ListValues())
	if err != nil {
		return nil, err
	}
	b := NewMultiPolygonBuilder()
	for i := 0; i < l.Len(); i++ {
		if l.IsNull(i) {
			b.AppendNull()
			continue
		}
		pLo, pHi := l.ValueOffsets(i)
		mp := make(orb.MultiPolygon, 0, pHi-pLo)
		for p := pLo; p < pHi; p++ {
			rLo, rHi := polys.ValueOffsets(int(p))
			poly := make(orb.Polygon, 0, rHi-rLo)
			for r := rLo; r < rHi; r++ {
				cLo, cHi := rings.ValueOffsets(int(r))
				poly = append(poly, orb.Ring(arrowLine(fx, fy, cLo, cHi)))
			}
			mp = append(mp, poly)
		}
		b.Append(mp)
	}
	return b.NewArray(), nil
}
