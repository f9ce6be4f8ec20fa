// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/gogama/geoarray"
)

// Encode encodes a single geometry to canonical interchange bytes:
// little-endian byte order throughout. Encoding is deterministic, so
// decoding the result yields a geometry that re-encodes to the same
// bytes.
//
// orb.Ring and orb.Bound encode as polygons. orb.Collection has no
// interchange representation here and returns
// geoarray.ErrTypeMismatch.
func Encode(g orb.Geometry) ([]byte, error) {
	n, err := encodedLen(g)
	if err != nil {
		return nil, err
	}
	e := encoder{buf: make([]byte, 0, n)}
	e.geometry(g)
	return e.buf, nil
}

// encodedLen returns the exact encoded size of a geometry, so Encode
// allocates once. It also rejects unsupported geometry types before
// any bytes are produced.
func encodedLen(g orb.Geometry) (int, error) {
	switch v := g.(type) {
	case orb.Point:
		return headerLen + coordLen, nil
	case orb.LineString:
		return headerLen + 4 + coordLen*len(v), nil
	case orb.Ring:
		return encodedLen(orb.Polygon{v})
	case orb.Bound:
		p, _ := polygonOf(v)
		return encodedLen(p)
	case orb.Polygon:
		n := headerLen + 4
		for _, ring := range v {
			n += 4 + coordLen*len(ring)
		}
		return n, nil
	case orb.MultiPoint:
		return headerLen + 4 + coordLen*len(v), nil
	case orb.MultiLineString:
		n := headerLen + 4
		for _, ls := range v {
			n += 4 + coordLen*len(ls)
		}
		return n, nil
	case orb.MultiPolygon:
		n := headerLen + 4
		for _, p := range v {
			n += 4
			for _, ring := range p {
				n += 4 + coordLen*len(ring)
			}
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: cannot encode %T", geoarray.ErrTypeMismatch, g)
	}
}

// polygonOf converts the polygon-like orb types to a plain polygon.
func polygonOf(g orb.Geometry) (orb.Polygon, bool) {
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

// encoder appends canonical little-endian interchange bytes to buf.
// Size validation happens in encodedLen, so the append methods cannot
// fail.
type encoder struct {
	buf []byte
}

func (e *encoder) geometry(g orb.Geometry) {
	switch v := g.(type) {
	case orb.Point:
		e.header(geoarray.TypePoint)
		e.point(v)
	case orb.LineString:
		e.header(geoarray.TypeLineString)
		e.lineString(v)
	case orb.Ring, orb.Bound, orb.Polygon:
		p, _ := polygonOf(v)
		e.header(geoarray.TypePolygon)
		e.polygon(p)
	case orb.MultiPoint:
		e.header(geoarray.TypeMultiPoint)
		e.u32(uint32(len(v)))
		for _, p := range v {
			e.point(p)
		}
	case orb.MultiLineString:
		e.header(geoarray.TypeMultiLineString)
		e.u32(uint32(len(v)))
		for _, ls := range v {
			e.lineString(ls)
		}
	case orb.MultiPolygon:
		e.header(geoarray.TypeMultiPolygon)
		e.u32(uint32(len(v)))
		for _, p := range v {
			e.polygon(p)
		}
	}
}

func (e *encoder) header(t geoarray.GeomType) {
	e.buf = append(e.buf, orderLittle)
	e.u32(uint32(t))
}

func (e *encoder) point(p orb.Point) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(p[0]))
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(p[1]))
}

func (e *encoder) lineString(ls orb.LineString) {
	e.u32(uint32(len(ls)))
	for _, p := range ls {
		e.point(p)
	}
}

func (e *encoder) polygon(p orb.Polygon) {
	e.u32(uint32(len(p)))
	for _, ring := range p {
		e.lineString(orb.LineString(ring))
	}
}

func (e *encoder) u32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}
