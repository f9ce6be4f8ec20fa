// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"encoding/binary"
	"math"

	"github.com/paulmach/orb"

	"github.com/gogama/geoarray"
)

// Decode decodes a single geometry from interchange bytes. The whole
// input must be consumed: trailing bytes after the geometry are
// malformed.
func Decode(b []byte) (orb.Geometry, error) {
	d := decoder{buf: b}
	g, err := d.geometry()
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.buf) {
		return nil, malformedErr("%d trailing bytes after geometry", len(d.buf)-d.pos)
	}
	return g, nil
}

// decoder is a cursor over an interchange byte buffer.
type decoder struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

// geometry decodes one full geometry: header plus body.
func (d *decoder) geometry() (orb.Geometry, error) {
	t, err := d.header()
	if err != nil {
		return nil, err
	}
	return d.body(t)
}

// header decodes the byte-order flag and type code, configures the
// decoder's byte order, and returns the geometry type.
func (d *decoder) header() (geoarray.GeomType, error) {
	if len(d.buf)-d.pos < headerLen {
		return 0, malformedErr("%d bytes cannot hold a geometry header", len(d.buf)-d.pos)
	}
	switch d.buf[d.pos] {
	case orderBig:
		d.order = binary.BigEndian
	case orderLittle:
		d.order = binary.LittleEndian
	default:
		return 0, malformedErr("invalid byte order flag 0x%02x", d.buf[d.pos])
	}
	d.pos++
	code := d.order.Uint32(d.buf[d.pos:])
	d.pos += 4

	if code&(ewkbZ|ewkbM) != 0 {
		return 0, dimensionErr("extended type code 0x%08x declares Z or M values", code)
	}
	if code&ewkbSRID != 0 {
		return 0, malformedErr("embedded SRID (type code 0x%08x) is not supported", code)
	}
	if dim := code / 1000; dim != 0 {
		return 0, dimensionErr("type code %d declares a %d00x coordinate variant", code, dim)
	}
	if code < uint32(geoarray.TypePoint) || code > uint32(geoarray.TypeMultiPolygon) {
		return 0, malformedErr("unrecognized geometry type code %d", code)
	}
	return geoarray.GeomType(code), nil
}

// body decodes the type-specific payload following a header.
func (d *decoder) body(t geoarray.GeomType) (g orb.Geometry, err error) {
	switch t {
	case geoarray.TypePoint:
		g, err = d.point()
	case geoarray.TypeLineString:
		g, err = d.lineString()
	case geoarray.TypePolygon:
		g, err = d.polygon()
	case geoarray.TypeMultiPoint:
		g, err = d.multiPoint()
	case geoarray.TypeMultiLineString:
		g, err = d.multiLineString()
	case geoarray.TypeMultiPolygon:
		g, err = d.multiPolygon()
	default:
		err = malformedErr("unrecognized geometry type code %d", t)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (d *decoder) point() (orb.Point, error) {
	if err := d.need(coordLen); err != nil {
		return orb.Point{}, err
	}
	x := math.Float64frombits(d.order.Uint64(d.buf[d.pos:]))
	y := math.Float64frombits(d.order.Uint64(d.buf[d.pos+8:]))
	d.pos += coordLen
	return orb.Point{x, y}, nil
}

func (d *decoder) lineString() (orb.LineString, error) {
	n, err := d.count(coordLen)
	if err != nil {
		return nil, err
	}
	ls := make(orb.LineString, n)
	for i := range ls {
		if ls[i], err = d.point(); err != nil {
			return nil, err
		}
	}
	return ls, nil
}

func (d *decoder) polygon() (orb.Polygon, error) {
	// A ring needs at least a count, so 4 is the tightest static bound
	// for pre-validating the ring count.
	n, err := d.count(4)
	if err != nil {
		return nil, err
	}
	poly := make(orb.Polygon, n)
	for i := range poly {
		ls, err := d.lineString()
		if err != nil {
			return nil, err
		}
		poly[i] = orb.Ring(ls)
	}
	return poly, nil
}

func (d *decoder) multiPoint() (orb.MultiPoint, error) {
	n, err := d.count(coordLen)
	if err != nil {
		return nil, err
	}
	mp := make(orb.MultiPoint, n)
	for i := range mp {
		if mp[i], err = d.point(); err != nil {
			return nil, err
		}
	}
	return mp, nil
}

func (d *decoder) multiLineString() (orb.MultiLineString, error) {
	n, err := d.count(4)
	if err != nil {
		return nil, err
	}
	mls := make(orb.MultiLineString, n)
	for i := range mls {
		var err error
		if mls[i], err = d.lineString(); err != nil {
			return nil, err
		}
	}
	return mls, nil
}

func (d *decoder) multiPolygon() (orb.MultiPolygon, error) {
	n, err := d.count(4)
	if err != nil {
		return nil, err
	}
	mp := make(orb.MultiPolygon, n)
	for i := range mp {
		var err error
		if mp[i], err = d.polygon(); err != nil {
			return nil, err
		}
	}
	return mp, nil
}

// need returns ErrMalformed unless at least n bytes remain.
func (d *decoder) need(n int) error {
	if len(d.buf)-d.pos < n {
		return malformedErr("need %d bytes at offset %d, have %d", n, d.pos, len(d.buf)-d.pos)
	}
	return nil
}

// count decodes an element count and checks it against the remaining
// byte length, given a lower bound on the encoded size of one element.
// Checking before allocating keeps a corrupt count from causing a huge
// pointless allocation.
func (d *decoder) count(minElemLen int) (int, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	n := d.order.Uint32(d.buf[d.pos:])
	d.pos += 4
	if int64(n)*int64(minElemLen) > int64(len(d.buf)-d.pos) {
		return 0, malformedErr("count %d at offset %d exceeds %d remaining bytes", n, d.pos-4, len(d.buf)-d.pos)
	}
	return int(n), nil
}
