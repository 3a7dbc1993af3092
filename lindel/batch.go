// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lindel

// Batch is a vectorized collection of tuples, laid out tuple-major the
// way a columnar host hands over its lane buffer: Rows[i] holds the N
// lanes of row i. RowNull marks an entire tuple as null (its code word
// is marked null and no lanes are read). LaneNull, when non-nil, marks
// individual lanes of an otherwise non-null row as null; that is always
// a fatal InputError rather than a per-row null.
type Batch struct {
	Rows     [][]uint64
	RowNull  []bool
	LaneNull [][]bool
}

// Encode linearizes a single tuple of lanes. Each lane carries the
// source value's bit pattern in its low LaneWidth bits; higher bits are
// ignored. The code word is computed over the bit patterns as-is,
// whatever the element representation: signed and floating-point lanes
// are not reordered into unsigned space first, so the decoder recovers
// the original patterns exactly. Callers that want code-word order to
// match numeric order across signs apply
// bitops.PromoteToUnsigned/DemoteFromUnsigned around the call.
// The descriptor must have been bound with BindEncode.
func (d Descriptor) Encode(lanes []uint64) (code U128, err error) {
	defer errRecover(&err)
	if d.direction != EncodeDirection {
		return U128{}, domainErrorf("descriptor is not bound for encode")
	}
	if uint(len(lanes)) != d.laneCount {
		return U128{}, inputErrorf("expected %d lanes, got %d", d.laneCount, len(lanes))
	}
	return d.encodeLanes(lanes), nil
}

// Decode delinearizes a single code word into a tuple of lanes. The
// returned lanes hold bit patterns in their low LaneWidth bits; the
// descriptor's element representation says how the host should
// reinterpret them (unsigned, two's-complement, or IEEE-754). The
// descriptor must have been bound with BindDecode.
func (d Descriptor) Decode(code U128) (lanes []uint64, err error) {
	defer errRecover(&err)
	if d.direction != DecodeDirection {
		return nil, domainErrorf("descriptor is not bound for decode")
	}
	return d.decodeLanes(code), nil
}

// encodeLanes dispatches to the selected inner codec.
func (d Descriptor) encodeLanes(lanes []uint64) U128 {
	switch d.kind {
	case Hilbert:
		return hilbertEncode(lanes, d.laneWidth)
	case Morton:
		return mortonEncode(lanes, d.laneWidth)
	default:
		panic(internalErrorf("invalid codec kind %d reached dispatch", d.kind))
	}
}

// decodeLanes dispatches to the selected inner codec.
func (d Descriptor) decodeLanes(code U128) []uint64 {
	switch d.kind {
	case Hilbert:
		return hilbertDecode(code, d.laneCount, d.laneWidth)
	case Morton:
		return mortonDecode(code, d.laneCount, d.laneWidth)
	default:
		panic(internalErrorf("invalid codec kind %d reached dispatch", d.kind))
	}
}

// EncodeBatch runs Encode over every row of b. A row with RowNull set
// produces a null code word without being read. A row with any
// LaneNull lane set is a fatal InputError that aborts the whole batch;
// see DESIGN.md for the batch error policy decision.
func (d Descriptor) EncodeBatch(b Batch) (codes []U128, codeNull []bool, err error) {
	defer errRecover(&err)
	if d.direction != EncodeDirection {
		return nil, nil, domainErrorf("descriptor is not bound for encode")
	}
	n := len(b.Rows)
	codes = make([]U128, n)
	codeNull = make([]bool, n)
	for i, row := range b.Rows {
		if b.RowNull != nil && b.RowNull[i] {
			codeNull[i] = true
			continue
		}
		if b.LaneNull != nil && b.LaneNull[i] != nil {
			for _, null := range b.LaneNull[i] {
				if null {
					panic(inputErrorf("row %d: array cannot contain null values", i))
				}
			}
		}
		if uint(len(row)) != d.laneCount {
			panic(inputErrorf("row %d: expected %d lanes, got %d", i, d.laneCount, len(row)))
		}
		codes[i] = d.encodeLanes(row)
	}
	return codes, codeNull, nil
}

// DecodeBatch runs Decode over every code word in codes, honoring
// codeNull the same way EncodeBatch honors b.RowNull.
func (d Descriptor) DecodeBatch(codes []U128, codeNull []bool) (b Batch, err error) {
	defer errRecover(&err)
	if d.direction != DecodeDirection {
		return Batch{}, domainErrorf("descriptor is not bound for decode")
	}
	n := len(codes)
	rows := make([][]uint64, n)
	rowNull := make([]bool, n)
	for i, code := range codes {
		if codeNull != nil && codeNull[i] {
			rowNull[i] = true
			continue
		}
		rows[i] = d.decodeLanes(code)
	}
	return Batch{Rows: rows, RowNull: rowNull}, nil
}
