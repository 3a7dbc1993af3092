// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package fixture generates deterministic tuple corpora for property
// tests and benchmarks, and stores them zstd-compressed so that large
// corpora do not bloat the repository. Lanes are bit-packed at exactly
// their lane width before compression.
package fixture

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/dsnet/lindel/internal/bitio"
	"github.com/dsnet/lindel/internal/testutil"
)

// Corpus is a deterministically generated set of tuples, all sharing
// the same lane count and lane width.
type Corpus struct {
	LaneCount uint
	LaneWidth uint
	Tuples    [][]uint64
}

// Generate produces a Corpus of n tuples with laneCount lanes of
// laneWidth bits each, seeded deterministically so repeated calls with
// the same arguments produce the same corpus.
func Generate(seed int, n int, laneCount, laneWidth uint) Corpus {
	r := testutil.NewRand(seed)
	mask := uint64(1)<<laneWidth - 1
	if laneWidth == 64 {
		mask = ^uint64(0)
	}
	tuples := make([][]uint64, n)
	for i := range tuples {
		lanes := make([]uint64, laneCount)
		for j := range lanes {
			b := r.Bytes(8)
			lanes[j] = binary.LittleEndian.Uint64(b) & mask
		}
		tuples[i] = lanes
	}
	return Corpus{LaneCount: laneCount, LaneWidth: laneWidth, Tuples: tuples}
}

// WriteCorpus serializes c onto w: an 8-byte little-endian tuple count,
// then every lane bit-packed at LaneWidth bits, the whole stream zstd
// compressed.
func WriteCorpus(w io.Writer, c Corpus) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(len(c.Tuples)))
	if _, err := zw.Write(hdr[:]); err != nil {
		zw.Close()
		return err
	}
	bw := bitio.NewWriter()
	for _, lanes := range c.Tuples {
		if err := bw.WriteLanes(lanes, c.LaneWidth); err != nil {
			zw.Close()
			return err
		}
	}
	if _, err := zw.Write(bw.Bytes()); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadCorpus reads back a Corpus previously written by WriteCorpus. The
// caller supplies laneCount and laneWidth since the stream records only
// the tuple count.
func ReadCorpus(r io.Reader, laneCount, laneWidth uint) (Corpus, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Corpus{}, err
	}
	defer zr.Close()

	var hdr [8]byte
	if _, err := io.ReadFull(zr, hdr[:]); err != nil {
		return Corpus{}, err
	}
	n := binary.LittleEndian.Uint64(hdr[:])

	packed, err := io.ReadAll(zr)
	if err != nil {
		return Corpus{}, err
	}
	br := bitio.NewReader(packed)
	c := Corpus{LaneCount: laneCount, LaneWidth: laneWidth}
	c.Tuples = make([][]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		lanes, err := br.ReadLanes(int(laneCount), laneWidth)
		if err != nil {
			return Corpus{}, err
		}
		c.Tuples = append(c.Tuples, lanes)
	}
	return c, nil
}
