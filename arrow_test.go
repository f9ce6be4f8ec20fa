// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArray_ToArrow(t *testing.T) {
	b := NewPointBuilder()
	b.Append(orb.Point{1, 2})
	b.AppendNull()
	b.Append(orb.Point{3, 4})
	a := b.NewArray()

	arr := a.ToArrow()
	s, ok := arr.(*array.Struct)
	require.True(t, ok)

	assert.True(t, arrow.TypeEqual(CoordType, s.DataType()))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.NullN())
	assert.False(t, s.IsNull(0))
	assert.True(t, s.IsNull(1))

	x := s.Field(0).(*array.Float64)
	y := s.Field(1).(*array.Float64)
	assert.Equal(t, 1.0, x.Value(0))
	assert.Equal(t, 2.0, y.Value(0))
	assert.Equal(t, 3.0, x.Value(2))
	assert.Equal(t, 4.0, y.Value(2))
}

func TestLineStringArray_ToArrow(t *testing.T) {
	b := NewLineStringBuilder()
	b.Append(orb.LineString{{0, 0}, {1, 1}, {2, 0}})
	b.AppendNull()
	b.Append(orb.LineString{})
	a := b.NewArray()

	arr := a.ToArrow()
	l, ok := arr.(*array.List)
	require.True(t, ok)

	assert.True(t, arrow.TypeEqual(arrow.ListOf(CoordType), l.DataType()))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.NullN())
	assert.True(t, l.IsNull(1))
	assert.False(t, l.IsNull(2))
	assert.Equal(t, []int32{0, 3, 3, 3}, l.Offsets())

	coords := l.ListValues().(*array.Struct)
	x := coords.Field(0).(*array.Float64)
	assert.Equal(t, []float64{0, 1, 2}, x.Values())
}

func TestPolygonArray_ToArrow(t *testing.T) {
	b := NewPolygonBuilder()
	b.Append(orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 0}},
		{{1, 1}, {2, 1}, {1, 2}, {1, 1}},
	})
	a := b.NewArray()

	arr := a.ToArrow()
	l, ok := arr.(*array.List)
	require.True(t, ok)

	assert.True(t, arrow.TypeEqual(arrow.ListOf(arrow.ListOf(CoordType)), l.DataType()))
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []int32{0, 2}, l.Offsets())

	rings := l.ListValues().(*array.List)
	assert.Equal(t, []int32{0, 4, 8}, rings.Offsets())
}

func TestMultiPolygonArray_ToArrow(t *testing.T) {
	b := NewMultiPolygonBuilder()
	b.Append(orb.MultiPolygon{
		{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}},
	})
	b.AppendNull()
	a := b.NewArray()

	arr := a.ToArrow()
	l, ok := arr.(*array.List)
	require.True(t, ok)

	assert.True(t, arrow.TypeEqual(arrow.ListOf(arrow.ListOf(arrow.ListOf(CoordType))), l.DataType()))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 1, l.NullN())
}

func TestPointArrayFromArrow(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewPointBuilder()
		b.Append(orb.Point{-1, -2})
		b.AppendNull()
		b.Append(orb.Point{5, 6})
		a := b.NewArray()

		back, err := PointArrayFromArrow(a.ToArrow().(*array.Struct))

		require.NoError(t, err)
		require.Equal(t, a.Len(), back.Len())
		assert.Equal(t, a.NullN(), back.NullN())
		for i := 0; i < a.Len(); i++ {
			assert.Equal(t, a.IsValid(i), back.IsValid(i))
			if a.IsValid(i) {
				assert.Equal(t, a.Value(i), back.Value(i))
			}
		}
	})

	t.Run("WrongFieldType", func(t *testing.T) {
		pool := memory.NewGoAllocator()
		sb := array.NewStructBuilder(pool, arrow.StructOf(
			arrow.Field{Name: "x", Type: arrow.PrimitiveTypes.Int64},
			arrow.Field{Name: "y", Type: arrow.PrimitiveTypes.Int64},
		))
		defer sb.Release()
		s := sb.NewArray().(*array.Struct)
		defer s.Release()

		_, err := PointArrayFromArrow(s)

		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestLineStringArrayFromArrow(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewLineStringBuilder()
		b.Append(orb.LineString{{0, 0}, {1, 1}, {2, 0}})
		b.AppendNull()
		b.Append(orb.LineString{})
		a := b.NewArray()

		back, err := LineStringArrayFromArrow(a.ToArrow().(*array.List))

		require.NoError(t, err)
		assert.Equal(t, a.NullN(), back.NullN())
		assert.Equal(t, Geometries(a), Geometries(back))
	})

	t.Run("WrongNesting", func(t *testing.T) {
		b := NewPolygonBuilder()
		b.Append(orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}})
		l := b.NewArray().ToArrow().(*array.List)

		_, err := LineStringArrayFromArrow(l)

		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestMultiPointArrayFromArrow(t *testing.T) {
	b := NewMultiPointBuilder()
	b.Append(orb.MultiPoint{{7, 8}, {9, 10}})
	b.AppendNull()
	a := b.NewArray()

	back, err := MultiPointArrayFromArrow(a.ToArrow().(*array.List))

	require.NoError(t, err)
	assert.Equal(t, a.NullN(), back.NullN())
	assert.Equal(t, Geometries(a), Geometries(back))
}

func TestPolygonArrayFromArrow(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewPolygonBuilder()
		b.Append(orb.Polygon{
			{{0, 0}, {4, 0}, {4, 4}, {0, 0}},
			{{1, 1}, {2, 1}, {1, 2}, {1, 1}},
		})
		b.AppendNull()
		b.Append(orb.Polygon{})
		a := b.NewArray()

		back, err := PolygonArrayFromArrow(a.ToArrow().(*array.List))

		require.NoError(t, err)
		assert.Equal(t, a.NullN(), back.NullN())
		assert.Equal(t, Geometries(a), Geometries(back))
	})

	t.Run("WrongNesting", func(t *testing.T) {
		b := NewLineStringBuilder()
		b.Append(orb.LineString{{0, 0}, {1, 1}})
		l := b.NewArray().ToArrow().(*array.List)

		_, err := PolygonArrayFromArrow(l)

		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestMultiLineStringArrayFromArrow(t *testing.T) {
	b := NewMultiLineStringBuilder()
	b.Append(orb.MultiLineString{
		{{0, 0}, {1, 1}},
		{{2, 2}, {3, 3}},
	})
	b.AppendNull()
	b.Append(orb.MultiLineString{})
	a := b.NewArray()

	back, err := MultiLineStringArrayFromArrow(a.ToArrow().(*array.List))

	require.NoError(t, err)
	assert.Equal(t, a.NullN(), back.NullN())
	assert.Equal(t, Geometries(a), Geometries(back))
}

func TestMultiPolygonArrayFromArrow(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewMultiPolygonBuilder()
		b.Append(orb.MultiPolygon{
			{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}},
			{{{5, 5}, {6, 5}, {5, 6}, {5, 5}}},
		})
		b.AppendNull()
		b.Append(orb.MultiPolygon{})
		a := b.NewArray()

		back, err := MultiPolygonArrayFromArrow(a.ToArrow().(*array.List))

		require.NoError(t, err)
		assert.Equal(t, a.NullN(), back.NullN())
		assert.Equal(t, Geometries(a), Geometries(back))
	})

	t.Run("WrongNesting", func(t *testing.T) {
		b := NewPolygonBuilder()
		b.Append(orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}})
		l := b.NewArray().ToArrow().(*array.List)

		_, err := MultiPolygonArrayFromArrow(l)

		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}
