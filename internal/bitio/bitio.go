// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio packs fixture tuples into a dense, byte-unaligned
// bitstream. A corpus of W-bit lanes stored as one lane per machine
// word wastes most of each word for small W; packing each lane at
// exactly its lane width keeps generated corpora compact before they
// ever reach the compressor.
package bitio

import (
	"io"

	"github.com/dsnet/golib/bits"
)

// chunk is the largest number of bits written or read per call into the
// underlying bit buffer, keeping val within uint range on all platforms.
const chunk = 16

// Writer packs fixed-width lane values one after another with no
// padding between tuples. Lanes are written low-order bits first.
type Writer struct {
	bb *bits.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{bb: bits.NewBuffer(nil)}
}

// WriteLanes appends every lane of one tuple using laneWidth bits each.
func (w *Writer) WriteLanes(lanes []uint64, laneWidth uint) error {
	for _, v := range lanes {
		for rem := int(laneWidth); rem > 0; rem -= chunk {
			nb := rem
			if nb > chunk {
				nb = chunk
			}
			if _, err := w.bb.WriteBits(uint(v)&(1<<uint(nb)-1), nb); err != nil {
				return err
			}
			v >>= uint(nb)
		}
	}
	return nil
}

// Bytes returns the packed stream, padded with zero bits to the next
// byte boundary.
func (w *Writer) Bytes() []byte {
	return w.bb.Bytes()
}

// Reader unpacks tuples written by a Writer.
type Reader struct {
	bb *bits.Buffer
}

// NewReader returns a Reader over a packed stream.
func NewReader(data []byte) *Reader {
	bb := bits.NewBuffer(nil)
	bb.ResetBuffer(data)
	return &Reader{bb: bb}
}

// ReadLanes reads one tuple of n lanes, each laneWidth bits wide.
func (r *Reader) ReadLanes(n int, laneWidth uint) ([]uint64, error) {
	lanes := make([]uint64, n)
	for i := range lanes {
		var v uint64
		for off := 0; off < int(laneWidth); off += chunk {
			nb := int(laneWidth) - off
			if nb > chunk {
				nb = chunk
			}
			val, _, err := r.bb.ReadBits(nb)
			if err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return nil, err
			}
			v |= uint64(val) << uint(off)
		}
		lanes[i] = v
	}
	return lanes, nil
}
