// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"context"

	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"

	"github.com/gogama/geoarray"
)

// DecodeArray decodes a sequence of interchange buffers into a
// geometry array in a single pass. A nil buffer produces a null row.
// If every non-nil buffer decodes to the same geometry type the result
// is the corresponding typed array; otherwise it is a MixedArray. Any
// malformed buffer aborts the whole construction.
func DecodeArray(bufs [][]byte) (geoarray.Array, error) {
	geoms, err := decodeAll(bufs)
	if err != nil {
		return nil, err
	}
	return geoarray.FromGeometries(geoms)
}

// DecodeArrayAs decodes a sequence of interchange buffers into an
// array of the given type. A nil buffer produces a null row. A buffer
// decoding to a geometry the target type cannot store causes
// geoarray.ErrTypeMismatch and aborts the whole construction; a
// TypeMixed target never fails on heterogeneous input.
func DecodeArrayAs(bufs [][]byte, t geoarray.GeomType) (geoarray.Array, error) {
	geoms, err := decodeAll(bufs)
	if err != nil {
		return nil, err
	}
	return geoarray.BuildArray(t, geoms)
}

// DecodeArrayParallel is DecodeArray with the per-row decoding fanned
// out over at most workers goroutines. Rows are decoded in disjoint
// ranges and assembled in input order, so the result is identical to
// DecodeArray's. The first decode error cancels the remaining work.
//
// Worth using only when the input is large; for small inputs the
// goroutine overhead exceeds the decode cost.
func DecodeArrayParallel(ctx context.Context, bufs [][]byte, workers int) (geoarray.Array, error) {
	if workers < 1 {
		workers = 1
	}
	chunk := (len(bufs) + workers - 1) / workers
	if chunk == 0 {
		return geoarray.FromGeometries(nil)
	}

	geoms := make([]orb.Geometry, len(bufs))
	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(bufs); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(bufs) {
			hi = len(bufs)
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if bufs[i] == nil {
					continue
				}
				geom, err := Decode(bufs[i])
				if err != nil {
					return err
				}
				geoms[i] = geom
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return geoarray.FromGeometries(geoms)
}

// EncodeArray encodes every row of an array to canonical interchange
// bytes. Null rows encode as nil buffers, preserving the array's
// validity information.
func EncodeArray(a geoarray.Array) ([][]byte, error) {
	bufs := make([][]byte, a.Len())
	for i := 0; i < a.Len(); i++ {
		g := a.Geometry(i)
		if g == nil {
			continue
		}
		b, err := Encode(g)
		if err != nil {
			return nil, err
		}
		bufs[i] = b
	}
	return bufs, nil
}

func decodeAll(bufs [][]byte) ([]orb.Geometry, error) {
	geoms := make([]orb.Geometry, len(bufs))
	for i, b := range bufs {
		if b == nil {
			continue
		}
		g, err := Decode(b)
		if err != nil {
			return nil, err
		}
		geoms[i] = g
	}
	return geoms, nil
}
