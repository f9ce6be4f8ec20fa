// Copyright 2024 The geoarray (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// hilbertInputs is kept sorted in ascending order of Hilbert curve
// position within hilbertInputsBounds.
//
// ...	[B]                 ^                  [C]
// ...	                    |
// ...                      |
// ...                      |
// ...                      |
// ...                      |
// ...                      |
// ...                      |
// ... <--------------------+-------------------->
// ...                      | [D]
// ...                      |
// ...                      |
// ...                      |
// ...                      |
// ...                      |
// ...                      |                  [E]
// ... [A]                  v                  [F]
var hilbertInputs = []struct {
	name string
	b    Box
}{
	{"A", Box{-10, -10, -8, -8}},
	{"B", Box{-10, 8, -8, 10}},
	{"C", Box{8, 8, 10, 10}},
	{"D", Box{1, -2, 2, -1}},
	{"E", Box{8, -8, 10, -6}},
	{"F", Box{8, -10, 10, -8}},
}

var hilbertInputsBounds = EmptyBox

func init() {
	for i := range hilbertInputs {
		hilbertInputsBounds.Expand(&hilbertInputs[i].b)
	}
}

func hilbertInputRefs() []Ref {
	refs := make([]Ref, len(hilbertInputs))
	for i := range hilbertInputs {
		refs[i] = Ref{Box: hilbertInputs[i].b, Index: i}
	}
	return refs
}

func TestHilbertSortable_Len(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		var zero hilbertSortable

		assert.Equal(t, 0, zero.Len())
	})

	t.Run("Value", func(t *testing.T) {
		value := hilbertSortable{refs: make([]Ref, 6), x: 0, y: 1, w: 2, h: 3}

		assert.Equal(t, 6, value.Len())
	})
}

func TestHilbertSortable_Less(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		hs := hilbertSortable{
			refs: make([]Ref, 1),
		}

		assert.False(t, hs.Less(0, 0))
	})

	t.Run("TieBreakOnIndex", func(t *testing.T) {
		b := Box{0, 0, 1, 1}
		hs := hilbertSortable{
			refs: []Ref{{Box: b, Index: 7}, {Box: b, Index: 3}},
			x:    0, y: 0, w: 1, h: 1,
		}

		assert.False(t, hs.Less(0, 1))
		assert.True(t, hs.Less(1, 0))
	})

	t.Run("hilbertInputs", func(t *testing.T) {
		hs := hilbertSortable{
			refs: hilbertInputRefs(),
			x:    hilbertInputsBounds.XMin,
			y:    hilbertInputsBounds.YMin,
			w:    hilbertInputsBounds.Width(),
			h:    hilbertInputsBounds.Height(),
		}

		for j := 0; j < len(hilbertInputs); j++ {
			for i := 0; i < j; i++ {
				t.Run(fmt.Sprintf("i=%d < j=%d", i, j), func(t *testing.T) {
					assert.True(t, hs.Less(i, j))
				})
			}

			t.Run(fmt.Sprintf("not(j<j), j=%d", j), func(t *testing.T) {
				assert.False(t, hs.Less(j, j))
			})
		}
	})
}

func TestHilbertSortable_Swap(t *testing.T) {
	zero := Ref{}
	one := Ref{Box: Box{1, 1, 1, 1}, Index: 1}
	two := func() hilbertSortable {
		return hilbertSortable{
			refs: []Ref{zero, one},
			x:    2, y: 2, w: 2, h: 2,
		}
	}

	t.Run("There", func(t *testing.T) {
		x := two()
		x.Swap(0, 1)

		assert.Equal(t, one, x.refs[0])
		assert.Equal(t, zero, x.refs[1])
	})

	t.Run("ThereAndBackAgain", func(t *testing.T) {
		x := two()
		x.Swap(1, 0)
		x.Swap(1, 0)

		assert.Equal(t, zero, x.refs[0])
		assert.Equal(t, one, x.refs[1])
	})
}

func TestHilbertSort(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var refs []Ref

		HilbertSort(refs, EmptyBox)
	})

	t.Run("Singleton", func(t *testing.T) {
		ref := Ref{
			Box:   Box{XMin: -1, YMin: -1, XMax: 1, YMax: 1},
			Index: 555,
		}
		refs := []Ref{ref}

		HilbertSort(refs, ref.Box)

		assert.Equal(t, []Ref{ref}, refs)
	})

	t.Run("hilbertInputs", func(t *testing.T) {
		refs := hilbertInputRefs()
		// Shuffle deterministically so the sort has work to do.
		for i := range refs {
			refs[i], refs[(i*3)%len(refs)] = refs[(i*3)%len(refs)], refs[i]
		}

		HilbertSort(refs, hilbertInputsBounds)

		isSorted := sort.SliceIsSorted(refs, func(i, j int) bool {
			return refs[i].Index < refs[j].Index
		})
		assert.True(t, isSorted, "Slice should be sorted by ascending Hilbert index, but is not.")
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := hilbertInputRefs()
		b := hilbertInputRefs()

		HilbertSort(a, hilbertInputsBounds)
		HilbertSort(b, hilbertInputsBounds)

		assert.Equal(t, a, b)
	})
}

func TestHilbertOfCenter(t *testing.T) {
	t.Run("ZeroWidth", func(t *testing.T) {
		actual := hilbertOfCenter(&Box{0, 0, 0, 0}, 0, 0, 0, 10)

		assert.Equal(t, uint32(0), actual)
	})
	t.Run("ZeroHeight", func(t *testing.T) {
		actual := hilbertOfCenter(&Box{0, 0, 0, 0}, 0, 0, 10, 0)

		assert.Equal(t, uint32(0), actual)
	})
	t.Run("HilbertInputs", func(t *testing.T) {
		var i int
		var hi uint32
		for j := range hilbertInputs {
			hj := hilbertOfCenter(&hilbertInputs[j].b, hilbertInputsBounds.XMin, hilbertInputsBounds.YMin, hilbertInputsBounds.Width(), hilbertInputsBounds.Height())
			assert.Greater(t, hj, hi, "hilbertOfCenter(hilbertInputs[%d]) must be greater than hilbertOfCenter(hilbertInputs[%d])", j, i)
			i = j
			hi = hj
		}
	})
}

func TestHilbertOfXY(t *testing.T) {
	testCases := []struct {
		name     string
		x, y     uint32
		expected uint32
	}{
		{name: "Zero"},
		{name: "OneX", x: 1, y: 0, expected: 1},
		{name: "OneXY", x: 1, y: 1, expected: 2},
		{name: "OneY", x: 0, y: 1, expected: 3},
		{name: "HalfMaxX", x: math.MaxUint32 / math.MaxUint16, y: 0, expected: 0x30001},
		{name: "HalfMaxY", x: 0, y: math.MaxUint32 / math.MaxUint16, expected: 0x30003},
		{name: "HalfMaxXY", x: math.MaxUint32 / math.MaxUint16, y: math.MaxUint32 / math.MaxUint16, expected: 0xaaaaaaaa},
		{name: "MaxY", x: 0, y: math.MaxUint32, expected: 0xffff7777},
		{name: "MaxX", x: math.MaxUint32, y: 0, expected: 0xffffdddd},
		{name: "MaxXY", x: math.MaxUint32, y: math.MaxUint32, expected: 0xaaaaaaaa},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := hilbertOfXY(testCase.x, testCase.y)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}
