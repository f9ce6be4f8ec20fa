// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when a geometry of one concrete type
	// is appended to a builder, or decoded into an array, of another
	// concrete type. A MixedArray never produces this error.
	ErrTypeMismatch = textErr("geometry type mismatch")
	// ErrDimensionMismatch is returned when hand-built array parts are
	// inconsistent: coordinate buffers of unequal length, an offset
	// buffer that does not start at 0, decreases, or does not
	// terminate at the length of the buffer it indexes, or a validity
	// bitmap too short for the row count.
	ErrDimensionMismatch = textErr("buffer dimension mismatch")
)

const packageName = "geoarray: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

// mismatchErr wraps one of the exported sentinel errors with detail
// text, preserving errors.Is compatibility.
func mismatchErr(sentinel error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}

// checkBounds panics if row index i is outside the half-open interval
// [0, n). Out-of-range access is a caller programming error, so it is
// surfaced as a panic rather than an error value, consistent with Go
// slice indexing.
func checkBounds(i, n int) {
	if i < 0 || i >= n {
		fmtPanic("row index %d out of range [0,%d)", i, n)
	}
}
