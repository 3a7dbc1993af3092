// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lindel

import "github.com/dsnet/lindel/internal/bitops"

// mortonEncode interleaves the bits of n lanes of width w into a single
// code word of width n*w. Within the n-bit group formed by bit i of
// every lane, lane 0 occupies the highest position of the group
// (offset n-1) and lane n-1 occupies the lowest (offset 0); group i
// itself occupies code-word bits i*n..i*n+n-1, lowest group first.
// The lane order within a group matches the Hilbert digit order; see
// the "Morton bit layout" entry in DESIGN.md.
func mortonEncode(lanes []uint64, w uint) bitops.U128 {
	n := uint(len(lanes))
	var z bitops.U128
	for i := uint(0); i < w; i++ {
		base := i * n
		for j := uint(0); j < n; j++ {
			bit := (lanes[j] >> i) & 1
			z = bitops.SetBit(z, base+(n-1-j), bit)
		}
	}
	return z
}

// mortonDecode is the inverse of mortonEncode.
func mortonDecode(z bitops.U128, n, w uint) []uint64 {
	lanes := make([]uint64, n)
	for i := uint(0); i < w; i++ {
		base := i * n
		for j := uint(0); j < n; j++ {
			bit := bitops.GetBit(z, base+(n-1-j))
			lanes[j] |= bit << i
		}
	}
	return lanes
}
