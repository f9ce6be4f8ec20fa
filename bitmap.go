// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geoarray

import "github.com/apache/arrow-go/v18/arrow/bitutil"

// validity is an append-only builder for an Arrow packed validity
// bitmap. The bitmap is allocated lazily on the first null append: an
// array in which every row is valid carries no bitmap at all.
type validity struct {
	bits  []byte
	nulls int
	rows  int
}

func (v *validity) append(valid bool) {
	if !valid && v.bits == nil {
		// First null: materialize the bitmap and back-fill the rows
		// appended so far as valid.
		v.bits = make([]byte, bitutil.CeilByte(v.rows+1)/8+growBitmapSlack)
		for i := 0; i < v.rows; i++ {
			bitutil.SetBit(v.bits, i)
		}
	}
	if v.bits != nil {
		if need := bitutil.CeilByte(v.rows+1) / 8; need > len(v.bits) {
			grown := make([]byte, need+growBitmapSlack)
			copy(grown, v.bits)
			v.bits = grown
		}
		if valid {
			bitutil.SetBit(v.bits, v.rows)
		} else {
			bitutil.ClearBit(v.bits, v.rows)
			v.nulls++
		}
	}
	v.rows++
}

// growBitmapSlack is extra bytes allocated beyond the immediate need
// whenever the bitmap grows, to amortize reallocation.
const growBitmapSlack = 64

// finish returns the packed bitmap trimmed to the built row count, or
// nil if every row is valid.
func (v *validity) finish() []byte {
	if v.bits == nil {
		return nil
	}
	return v.bits[:bitutil.CeilByte(v.rows)/8]
}

// bitmapValid reports whether row i of a bitmap is valid. A nil bitmap
// means all rows are valid.
func bitmapValid(bits []byte, i int) bool {
	return bits == nil || bitutil.BitIsSet(bits, i)
}

// bitmapCovers reports whether bits can hold at least rows bits.
func bitmapCovers(bits []byte, rows int) bool {
	return len(bits)*8 >= rows
}
