// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package wkb converts between geoarray arrays (or single orb
// geometries) and the well-known-binary style interchange encoding:
// one byte-order flag, a 4-byte geometry type code, then the
// type-specific body of counts and float64 coordinate pairs. The parts
// of a multi geometry are encoded as their singular bodies, without
// repeating the byte-order/type header.
//
// Both byte orders are accepted on decode. Encoding always produces
// little-endian bytes, so decode-then-encode round-trips byte for byte
// exactly when the source used little-endian order.
//
// The codec validates structure, not geometry: NaN and infinite
// coordinates pass through unchanged. Only two-dimensional data is
// supported; type-code variants carrying Z or M dimensions are
// rejected with ErrDimension.
package wkb

import (
	"errors"
	"fmt"
)

const (
	// orderBig and orderLittle are the values of the leading
	// byte-order flag.
	orderBig    = 0x00
	orderLittle = 0x01

	// headerLen is the length of the byte-order flag plus the type
	// code.
	headerLen = 1 + 4

	// coordLen is the encoded length of one coordinate pair.
	coordLen = 16

	// ewkbZ, ewkbM and ewkbSRID are the extended-WKB flag bits some
	// producers set in the type code. Z and M indicate extra
	// dimensions; SRID indicates an embedded spatial reference id.
	ewkbZ    = 0x80000000
	ewkbM    = 0x40000000
	ewkbSRID = 0x20000000
)

var (
	// ErrMalformed is returned when interchange bytes are structurally
	// invalid: an unknown byte-order flag, an unrecognized geometry
	// type code, a count inconsistent with the remaining byte length,
	// or trailing bytes after the geometry. Malformed input cannot be
	// recovered; the producer must fix it.
	ErrMalformed = textErr("malformed encoding")
	// ErrDimension is returned for type codes declaring Z or M
	// coordinate dimensions, which this package does not store.
	ErrDimension = textErr("unsupported coordinate dimension")
)

const packageName = "wkb: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

// malformedErr returns an error wrapping ErrMalformed with detail
// text.
func malformedErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformed}, a...)...)
}

// dimensionErr returns an error wrapping ErrDimension with detail
// text.
func dimensionErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDimension}, a...)...)
}
