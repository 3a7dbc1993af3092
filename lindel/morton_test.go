// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lindel

import (
	mathbits "math/bits"
	"testing"

	"github.com/dsnet/lindel/internal/bitops"
	"github.com/dsnet/lindel/internal/fixture"
)

func TestMortonEncodeFixture(t *testing.T) {
	got := mortonEncode([]uint64{1, 2, 3}, 8)
	want := bitops.FromUint64(29)
	if !got.Equal(want) {
		t.Errorf("mortonEncode([1,2,3], 8) = %+v, want %d", got, 29)
	}
}

func TestMortonRoundTrip(t *testing.T) {
	got := mortonDecode(mortonEncode([]uint64{1, 2, 3}, 8), 3, 8)
	want := []uint64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("round trip mismatch at lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMortonGrid5x5(t *testing.T) {
	want := [5][5]uint64{
		{0, 1, 4, 5, 16},
		{2, 3, 6, 7, 18},
		{8, 9, 12, 13, 24},
		{10, 11, 14, 15, 26},
		{32, 33, 36, 37, 48},
	}
	for a := uint64(0); a < 5; a++ {
		for b := uint64(0); b < 5; b++ {
			got := mortonEncode([]uint64{a, b}, 8)
			if got.Uint64() != want[a][b] {
				t.Errorf("mortonEncode([%d,%d]) = %d, want %d", a, b, got.Uint64(), want[a][b])
			}
		}
	}
}

// TestMortonRoundTripRandom checks decode(encode(L))=L over generated
// corpora for every row of the width table.
func TestMortonRoundTripRandom(t *testing.T) {
	for _, row := range widthTable {
		n := row.nMax
		corpus := fixture.Generate(int(row.w*10+n), 64, n, row.w)
		for _, lanes := range corpus.Tuples {
			code := mortonEncode(lanes, row.w)
			back := mortonDecode(code, n, row.w)
			for j := range lanes {
				if back[j] != lanes[j] {
					t.Fatalf("w=%d n=%d lanes=%v: round trip gave %v", row.w, n, lanes, back)
				}
			}
		}
	}
}

// TestEncodeOutputWidth checks that the all-ones tuple lands in the
// bound code width but above the next smaller standard width, for every
// row of the width table.
func TestEncodeOutputWidth(t *testing.T) {
	stdWidths := []uint{8, 16, 32, 64, 128}
	for _, row := range widthTable {
		for n := row.nMin; n <= row.nMax; n++ {
			lanes := make([]uint64, n)
			for j := range lanes {
				lanes[j] = bitops.Mask64(row.w)
			}
			z := mortonEncode(lanes, row.w)
			got := u128BitLen(z)
			if got != int(n*row.w) {
				t.Errorf("w=%d n=%d: all-ones code has bit length %d, want %d", row.w, n, got, n*row.w)
			}
			if got > int(row.c) {
				t.Errorf("w=%d n=%d: code does not fit in bound width %d", row.w, n, row.c)
			}
			var prev uint
			for _, sw := range stdWidths {
				if sw < row.c {
					prev = sw
				}
			}
			if prev > 0 && n*row.w > prev && got <= int(prev) {
				t.Errorf("w=%d n=%d: code fits in %d bits, so bound width %d is too wide", row.w, n, prev, row.c)
			}
		}
	}
}

func u128BitLen(z bitops.U128) int {
	if z.Hi != 0 {
		return 64 + mathbits.Len64(z.Hi)
	}
	return mathbits.Len64(z.Lo)
}

func TestMortonBitLayout(t *testing.T) {
	// bit (i*n + (n-1-j)) of Z must equal bit i of lane j, for every
	// (w, n) combination in the width table.
	for _, row := range widthTable {
		n := row.nMax
		lanes := make([]uint64, n)
		for j := range lanes {
			lanes[j] = uint64(j+1) & bitops.Mask64(row.w)
		}
		z := mortonEncode(lanes, row.w)
		for i := uint(0); i < row.w; i++ {
			for j := uint(0); j < n; j++ {
				want := (lanes[j] >> i) & 1
				got := bitops.GetBit(z, i*n+(n-1-j))
				if got != want {
					t.Fatalf("w=%d n=%d i=%d j=%d: bit mismatch got=%d want=%d", row.w, n, i, j, got, want)
				}
			}
		}
	}
}
