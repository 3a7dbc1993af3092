// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package benchmark times Hilbert and Morton encode/decode throughput
// across the lane-width/lane-count table and formats the results as a
// human-readable rate table.
package benchmark

import (
	"fmt"
	"strings"
	"sync"
	"time"

	dsstrconv "github.com/dsnet/golib/strconv"

	"github.com/dsnet/lindel/lindel"
	"github.com/dsnet/lindel/internal/fixture"
)

// Case names one (kind, lane width, lane count) combination to time.
type Case struct {
	Kind      lindel.Kind
	LaneWidth uint
	LaneCount uint
}

// Result is the outcome of timing one Case in one direction.
type Result struct {
	Case      Case
	Op        string // "encode" or "decode"
	TuplesSec float64
}

// defaultCases enumerates a representative subset of the width table
// rather than every possible combination.
func defaultCases() []Case {
	return []Case{
		{lindel.Hilbert, 8, 2}, {lindel.Morton, 8, 2},
		{lindel.Hilbert, 16, 2}, {lindel.Morton, 16, 2},
		{lindel.Hilbert, 32, 2}, {lindel.Morton, 32, 2},
		{lindel.Hilbert, 64, 2}, {lindel.Morton, 64, 2},
		{lindel.Hilbert, 8, 4}, {lindel.Morton, 8, 4},
	}
}

// Run times every case in cases (or defaultCases if cases is nil) over
// n generated tuples and returns one encode and one decode Result per
// case.
func Run(cases []Case, n int) ([]Result, error) {
	if cases == nil {
		cases = defaultCases()
	}
	var results []Result
	for i, c := range cases {
		corpus := fixture.Generate(i, n, c.LaneCount, c.LaneWidth)

		enc, err := lindel.BindEncode(c.Kind, c.LaneWidth, c.LaneCount, lindel.UInt)
		if err != nil {
			return nil, err
		}
		codes := make([]lindel.U128, len(corpus.Tuples))

		start := time.Now()
		for j, lanes := range corpus.Tuples {
			code, err := enc.Encode(lanes)
			if err != nil {
				return nil, err
			}
			codes[j] = code
		}
		elapsed := time.Since(start).Seconds()
		results = append(results, Result{Case: c, Op: "encode", TuplesSec: rate(len(corpus.Tuples), elapsed)})

		dec, err := lindel.BindDecode(c.Kind, enc.CodeWidth(), c.LaneCount, false, true)
		if err != nil {
			return nil, err
		}
		start = time.Now()
		for _, code := range codes {
			if _, err := dec.Decode(code); err != nil {
				return nil, err
			}
		}
		elapsed = time.Since(start).Seconds()
		results = append(results, Result{Case: c, Op: "decode", TuplesSec: rate(len(corpus.Tuples), elapsed)})
	}
	return results, nil
}

// RunParallel times every case the way Run does, but splits each corpus
// across workers goroutines encoding and decoding disjoint slices
// concurrently. Descriptors are shared across the workers without
// synchronization; they are immutable after bind.
func RunParallel(cases []Case, n, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	if cases == nil {
		cases = defaultCases()
	}
	var results []Result
	for i, c := range cases {
		corpus := fixture.Generate(i, n, c.LaneCount, c.LaneWidth)

		enc, err := lindel.BindEncode(c.Kind, c.LaneWidth, c.LaneCount, lindel.UInt)
		if err != nil {
			return nil, err
		}
		codes := make([]lindel.U128, len(corpus.Tuples))

		start := time.Now()
		forEachShard(len(corpus.Tuples), workers, func(lo, hi int) {
			for j := lo; j < hi; j++ {
				code, err := enc.Encode(corpus.Tuples[j])
				if err != nil {
					return
				}
				codes[j] = code
			}
		})
		elapsed := time.Since(start).Seconds()
		results = append(results, Result{Case: c, Op: "encode", TuplesSec: rate(len(corpus.Tuples), elapsed)})

		dec, err := lindel.BindDecode(c.Kind, enc.CodeWidth(), c.LaneCount, false, true)
		if err != nil {
			return nil, err
		}
		start = time.Now()
		forEachShard(len(codes), workers, func(lo, hi int) {
			for j := lo; j < hi; j++ {
				dec.Decode(codes[j])
			}
		})
		elapsed = time.Since(start).Seconds()
		results = append(results, Result{Case: c, Op: "decode", TuplesSec: rate(len(codes), elapsed)})
	}
	return results, nil
}

// forEachShard runs fn over workers roughly equal subranges of [0, n).
func forEachShard(n, workers int, fn func(lo, hi int)) {
	var wg sync.WaitGroup
	per := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += per {
		hi := lo + per
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

func rate(n int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(n) / seconds
}

// FormatTable renders results as an aligned, human-readable table.
func FormatTable(results []Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s %-6s %6s %5s  %s\n", "kind", "op", "width", "lanes", "rate")
	for _, r := range results {
		rate := dsstrconv.FormatPrefix(r.TuplesSec, dsstrconv.Base1024, 2)
		fmt.Fprintf(&sb, "%-8s %-6s %6d %5d  %s tuples/s\n",
			r.Case.Kind, r.Op, r.Case.LaneWidth, r.Case.LaneCount, rate)
	}
	return sb.String()
}
