// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lindel

import "github.com/dsnet/lindel/internal/bitops"

// hilbertAxesToTranspose converts n coordinates ("axes"), each w bits
// wide, in place into Skilling's transposed Hilbert representation: the
// Hilbert index, read most-significant-bit first, is the interleave of
// x[0]..x[n-1] bit (w-1), then x[0]..x[n-1] bit (w-2), and so on. This
// is the standard Butz/Lawder/Skilling dimension-generic construction.
func hilbertAxesToTranspose(x []uint64, w uint) {
	n := uint(len(x))
	m := uint64(1) << (w - 1)
	for q := m; q > 1; q >>= 1 {
		p := q - 1
		for i := uint(0); i < n; i++ {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}
	for i := uint(1); i < n; i++ {
		x[i] ^= x[i-1]
	}
	var t uint64
	for shift := uint(1); shift < w; shift++ {
		q := uint64(1) << shift
		if x[n-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range x {
		x[i] ^= t
	}
}

// hilbertTransposeToAxes is the inverse of hilbertAxesToTranspose.
func hilbertTransposeToAxes(x []uint64, w uint) {
	n := uint(len(x))
	t := x[n-1] >> 1
	for i := int(n) - 1; i > 0; i-- {
		x[i] ^= x[i-1]
	}
	x[0] ^= t
	for shift := uint(1); shift < w; shift++ {
		q := uint64(1) << shift
		p := q - 1
		for i := int(n) - 1; i >= 0; i-- {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}
}

// hilbertEncode maps n lanes of width w onto the generalized Hilbert
// index, an unsigned integer of width n*w. The bit layout matches
// mortonEncode's group placement (lane 0 highest within each group)
// after the transpose/rotation passes above.
func hilbertEncode(lanes []uint64, w uint) bitops.U128 {
	n := uint(len(lanes))
	var buf [16]uint64
	x := buf[:n]
	mask := bitops.Mask64(w)
	for i, v := range lanes {
		x[i] = v & mask
	}
	hilbertAxesToTranspose(x, w)

	var h bitops.U128
	bitIndex := int(n*w) - 1
	for i := int(w) - 1; i >= 0; i-- {
		for j := uint(0); j < n; j++ {
			bit := (x[j] >> uint(i)) & 1
			h = bitops.SetBit(h, uint(bitIndex), bit)
			bitIndex--
		}
	}
	return h
}

// hilbertDecode is the inverse of hilbertEncode.
func hilbertDecode(h bitops.U128, n, w uint) []uint64 {
	x := make([]uint64, n)
	bitIndex := int(n*w) - 1
	for i := int(w) - 1; i >= 0; i-- {
		for j := uint(0); j < n; j++ {
			bit := bitops.GetBit(h, uint(bitIndex))
			x[j] |= bit << uint(i)
			bitIndex--
		}
	}
	hilbertTransposeToAxes(x, w)
	mask := bitops.Mask64(w)
	for i := range x {
		x[i] &= mask
	}
	return x
}
