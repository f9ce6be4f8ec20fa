// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGeometries(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		a, err := FromGeometries(nil)

		require.NoError(t, err)
		assert.Equal(t, TypeMixed, a.Type())
		assert.Equal(t, 0, a.Len())
	})

	t.Run("AllNil", func(t *testing.T) {
		a, err := FromGeometries([]orb.Geometry{nil, nil})

		require.NoError(t, err)
		assert.Equal(t, TypeMixed, a.Type())
		assert.Equal(t, 2, a.Len())
		assert.Equal(t, 2, a.NullN())
	})

	t.Run("Uniform", func(t *testing.T) {
		testCases := []struct {
			expected GeomType
			geoms    []orb.Geometry
		}{
			{TypePoint, []orb.Geometry{orb.Point{0, 0}, nil, orb.Point{1, 1}}},
			{TypeLineString, []orb.Geometry{orb.LineString{{0, 0}, {1, 1}}}},
			{TypePolygon, []orb.Geometry{orb.Polygon{}, orb.Ring{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}},
			{TypeMultiPoint, []orb.Geometry{orb.MultiPoint{{0, 0}}}},
			{TypeMultiLineString, []orb.Geometry{orb.MultiLineString{{{0, 0}, {1, 1}}}}},
			{TypeMultiPolygon, []orb.Geometry{orb.MultiPolygon{}}},
		}

		for _, testCase := range testCases {
			t.Run(testCase.expected.String(), func(t *testing.T) {
				a, err := FromGeometries(testCase.geoms)

				require.NoError(t, err)
				assert.Equal(t, testCase.expected, a.Type())
				assert.Equal(t, len(testCase.geoms), a.Len())
				for i, g := range testCase.geoms {
					if g == nil {
						assert.False(t, a.IsValid(i))
					} else {
						assert.True(t, a.IsValid(i))
					}
				}
			})
		}
	})

	t.Run("Heterogeneous", func(t *testing.T) {
		a, err := FromGeometries([]orb.Geometry{
			orb.Point{0, 0},
			orb.LineString{{0, 0}, {1, 1}},
		})

		require.NoError(t, err)
		assert.Equal(t, TypeMixed, a.Type())
		assert.Equal(t, 2, a.Len())
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := FromGeometries([]orb.Geometry{orb.Collection{}})

		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestBuildArray(t *testing.T) {
	t.Run("Typed", func(t *testing.T) {
		a, err := BuildArray(TypePoint, []orb.Geometry{orb.Point{1, 2}, nil})

		require.NoError(t, err)
		assert.Equal(t, TypePoint, a.Type())
		assert.Equal(t, 2, a.Len())
	})

	t.Run("TypedMismatch", func(t *testing.T) {
		_, err := BuildArray(TypePoint, []orb.Geometry{orb.LineString{{0, 0}, {1, 1}}})

		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("MixedNeverMismatches", func(t *testing.T) {
		a, err := BuildArray(TypeMixed, []orb.Geometry{
			orb.Point{0, 0},
			orb.MultiPolygon{},
			nil,
		})

		require.NoError(t, err)
		assert.Equal(t, TypeMixed, a.Type())
		assert.Equal(t, 3, a.Len())
	})
}

func TestGeometries(t *testing.T) {
	t.Run("Mixed", func(t *testing.T) {
		geoms := []orb.Geometry{
			orb.Point{1, 2},
			nil,
			orb.LineString{{0, 0}, {3, 4}},
		}
		a, err := FromGeometries(geoms)
		require.NoError(t, err)

		assert.Equal(t, geoms, Geometries(a))
	})

	t.Run("Uniform", func(t *testing.T) {
		geoms := []orb.Geometry{
			orb.Polygon{{{0, 0}, {2, 0}, {0, 2}, {0, 0}}},
			nil,
		}
		a, err := FromGeometries(geoms)
		require.NoError(t, err)
		require.IsType(t, &PolygonArray{}, a)

		assert.Equal(t, geoms, Geometries(a))
	})

	t.Run("Empty", func(t *testing.T) {
		a, err := FromGeometries(nil)
		require.NoError(t, err)

		assert.Empty(t, Geometries(a))
	})
}

func TestGeomType_String(t *testing.T) {
	testCases := []struct {
		t        GeomType
		expected string
	}{
		{TypeUnknown, "Unknown"},
		{TypePoint, "Point"},
		{TypeLineString, "LineString"},
		{TypePolygon, "Polygon"},
		{TypeMultiPoint, "MultiPoint"},
		{TypeMultiLineString, "MultiLineString"},
		{TypeMultiPolygon, "MultiPolygon"},
		{TypeMixed, "Mixed"},
		{GeomType(200), "Unknown"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.expected+fmt.Sprintf("(%d)", testCase.t), func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.t.String())
		})
	}
}

func TestArray_String(t *testing.T) {
	b := NewPointBuilder()
	b.Append(orb.Point{0, 0})
	b.AppendNull()

	assert.Equal(t, "PointArray{Len:2,Nulls:1}", b.NewArray().String())
	assert.Equal(t, "MixedArray{Len:0,Nulls:0}", NewMixedBuilder().NewArray().String())
}

func TestValidOffsets(t *testing.T) {
	testCases := []struct {
		name     string
		offsets  []int32
		end      int
		expected bool
	}{
		{"Nil", nil, 0, false},
		{"ZeroOnly", []int32{0}, 0, true},
		{"Simple", []int32{0, 2, 5}, 5, true},
		{"Repeats", []int32{0, 0, 3, 3}, 3, true},
		{"BadStart", []int32{1, 3}, 3, false},
		{"Decreasing", []int32{0, 3, 2, 4}, 4, false},
		{"ShortEnd", []int32{0, 2}, 3, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, validOffsets(testCase.offsets, testCase.end))
		})
	}
}
