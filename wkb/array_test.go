// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/geoarray"
)

func TestDecodeArray(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		a, err := DecodeArray(nil)

		require.NoError(t, err)
		assert.Equal(t, 0, a.Len())
	})

	t.Run("Uniform", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.Point{0, 0}),
			nil,
			mustEncode(t, orb.Point{3, 4}),
		}

		a, err := DecodeArray(bufs)

		require.NoError(t, err)
		assert.Equal(t, geoarray.TypePoint, a.Type())
		assert.Equal(t, 3, a.Len())
		assert.Equal(t, 1, a.NullN())
		assert.Equal(t, orb.Point{3, 4}, a.Geometry(2))
	})

	t.Run("Heterogeneous", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.Point{0, 0}),
			mustEncode(t, orb.LineString{{0, 0}, {1, 1}}),
		}

		a, err := DecodeArray(bufs)

		require.NoError(t, err)
		assert.Equal(t, geoarray.TypeMixed, a.Type())
	})

	t.Run("Malformed", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.Point{0, 0}),
			{0xff},
		}

		_, err := DecodeArray(bufs)

		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestDecodeArrayAs(t *testing.T) {
	t.Run("Typed", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.LineString{{0, 0}, {1, 1}}),
			nil,
		}

		a, err := DecodeArrayAs(bufs, geoarray.TypeLineString)

		require.NoError(t, err)
		assert.Equal(t, geoarray.TypeLineString, a.Type())
		assert.Equal(t, 2, a.Len())
	})

	t.Run("Mismatch", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.Point{0, 0}),
		}

		_, err := DecodeArrayAs(bufs, geoarray.TypePolygon)

		assert.ErrorIs(t, err, geoarray.ErrTypeMismatch)
	})

	t.Run("MixedNeverMismatches", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.Point{0, 0}),
			mustEncode(t, orb.MultiPolygon{}),
			nil,
		}

		a, err := DecodeArrayAs(bufs, geoarray.TypeMixed)

		require.NoError(t, err)
		assert.Equal(t, geoarray.TypeMixed, a.Type())
		assert.Equal(t, 3, a.Len())
	})
}

func TestDecodeArrayParallel(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		a, err := DecodeArrayParallel(context.Background(), nil, 4)

		require.NoError(t, err)
		assert.Equal(t, 0, a.Len())
	})

	t.Run("MatchesSerial", func(t *testing.T) {
		bufs := make([][]byte, 100)
		for i := range bufs {
			if i%7 == 0 {
				continue // null row
			}
			bufs[i] = mustEncode(t, orb.Point{float64(i), float64(-i)})
		}

		for _, workers := range []int{0, 1, 3, 8, 200} {
			serial, err := DecodeArray(bufs)
			require.NoError(t, err)

			parallel, err := DecodeArrayParallel(context.Background(), bufs, workers)
			require.NoError(t, err)

			require.Equal(t, serial.Len(), parallel.Len())
			for i := 0; i < serial.Len(); i++ {
				assert.Equal(t, serial.IsValid(i), parallel.IsValid(i))
				assert.Equal(t, serial.Geometry(i), parallel.Geometry(i))
			}
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.Point{0, 0}),
			{0x01, 0x02},
			mustEncode(t, orb.Point{1, 1}),
		}

		_, err := DecodeArrayParallel(context.Background(), bufs, 2)

		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		bufs := [][]byte{mustEncode(t, orb.Point{0, 0})}

		_, err := DecodeArrayParallel(ctx, bufs, 2)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEncodeArray(t *testing.T) {
	t.Run("PreservesNulls", func(t *testing.T) {
		b := geoarray.NewPointBuilder()
		b.Append(orb.Point{1, 2})
		b.AppendNull()
		a := b.NewArray()

		bufs, err := EncodeArray(a)

		require.NoError(t, err)
		require.Len(t, bufs, 2)
		assert.Equal(t, mustEncode(t, orb.Point{1, 2}), bufs[0])
		assert.Nil(t, bufs[1])
	})

	t.Run("RoundTrip", func(t *testing.T) {
		src := []orb.Geometry{
			orb.Point{0, 0},
			nil,
			orb.MultiLineString{{{0, 0}, {1, 1}}},
			orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}},
		}
		a, err := geoarray.FromGeometries(src)
		require.NoError(t, err)

		bufs, err := EncodeArray(a)
		require.NoError(t, err)
		back, err := DecodeArray(bufs)
		require.NoError(t, err)

		require.Equal(t, a.Len(), back.Len())
		for i := range src {
			assert.Equal(t, a.Geometry(i), back.Geometry(i))
		}
	})

	t.Run("CanonicalBytes", func(t *testing.T) {
		bufs := [][]byte{
			mustEncode(t, orb.Point{1, 2}),
			nil,
			mustEncode(t, orb.LineString{{5, 5}, {6, 6}}),
			mustEncode(t, orb.MultiPolygon{{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}}),
		}

		a, err := DecodeArray(bufs)
		require.NoError(t, err)
		back, err := EncodeArray(a)
		require.NoError(t, err)

		assert.Equal(t, bufs, back)
	})
}
