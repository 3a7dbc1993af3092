// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lindel

// widthRow is one row of the encode width table: for lane width W
// and lane count in [nMin, nMax], the code word is C bits wide.
type widthRow struct {
	w, nMin, nMax, c uint
}

// widthTable is the admissibility table. Any (W, N)
// combination not covered by a row is inadmissible and fails bind with
// a DomainError.
var widthTable = []widthRow{
	{w: 8, nMin: 1, nMax: 1, c: 8},
	{w: 8, nMin: 2, nMax: 2, c: 16},
	{w: 8, nMin: 3, nMax: 4, c: 32},
	{w: 8, nMin: 5, nMax: 8, c: 64},
	{w: 8, nMin: 9, nMax: 16, c: 128},

	{w: 16, nMin: 1, nMax: 1, c: 16},
	{w: 16, nMin: 2, nMax: 2, c: 32},
	{w: 16, nMin: 3, nMax: 4, c: 64},
	{w: 16, nMin: 5, nMax: 8, c: 128},

	{w: 32, nMin: 1, nMax: 1, c: 32},
	{w: 32, nMin: 2, nMax: 2, c: 64},
	{w: 32, nMin: 3, nMax: 4, c: 128},

	{w: 64, nMin: 1, nMax: 1, c: 64},
	{w: 64, nMin: 2, nMax: 2, c: 128},
}

// floatLegal is the set of (W, N) combinations for which a decode bind
// may request return_float=true.
var floatLegal = map[[2]uint]bool{
	{32, 1}: true, {32, 2}: true, {32, 3}: true, {32, 4}: true,
	{64, 1}: true, {64, 2}: true,
}

// lookupCodeWidth returns the code-word width C for lane width w and
// lane count n, per the encode table.
func lookupCodeWidth(w, n uint) (c uint, ok bool) {
	for _, row := range widthTable {
		if row.w == w && n >= row.nMin && n <= row.nMax {
			return row.c, true
		}
	}
	return 0, false
}

// lookupLaneWidth returns the lane width W implied by code-word width c
// and lane count n: the W for which the encode table maps (W, n) to a
// code word of width c.
func lookupLaneWidth(c, n uint) (w uint, ok bool) {
	for _, row := range widthTable {
		if row.c == c && n >= row.nMin && n <= row.nMax {
			return row.w, true
		}
	}
	return 0, false
}
