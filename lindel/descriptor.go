// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lindel

import "github.com/dsnet/lindel/internal/bitops"

// Kind selects which space-filling curve a Descriptor drives.
type Kind uint8

const (
	Hilbert Kind = iota
	Morton
)

func (k Kind) String() string {
	switch k {
	case Hilbert:
		return "hilbert"
	case Morton:
		return "morton"
	default:
		return "unknown"
	}
}

// Direction is ENCODE or DECODE.
type Direction uint8

const (
	EncodeDirection Direction = iota
	DecodeDirection
)

// ElementRepr identifies the bit-pattern interpretation of a tuple's
// source type: unsigned integer, signed integer, or IEEE-754 float.
// It is an alias of the internal representation so that callers of
// this package never need to import internal/bitops directly.
type ElementRepr = bitops.ElementRepr

const (
	UInt  = bitops.UInt
	SInt  = bitops.SInt
	Float = bitops.Float
)

// U128 is the unsigned 128-bit code-word type. It is an alias of the
// internal representation for the same reason as ElementRepr.
type U128 = bitops.U128

// Descriptor fully parameterizes one encode or decode call. It is
// immutable once returned by BindEncode/BindDecode: the state machine
// has exactly two states, UNBOUND (under construction, not
// constructible outside this package) and BOUND (invariants checked).
// The transition is one-way and a failed bind returns a DomainError
// and discards the partial descriptor.
type Descriptor struct {
	kind           Kind
	direction      Direction
	laneWidth      uint
	laneCount      uint
	codeWidth      uint
	elementRepr    ElementRepr
	returnFloat    bool
	returnUnsigned bool
}

// Kind returns the codec this descriptor drives.
func (d Descriptor) Kind() Kind { return d.kind }

// Direction returns ENCODE or DECODE.
func (d Descriptor) Direction() Direction { return d.direction }

// LaneWidth returns W, the bit width of one lane.
func (d Descriptor) LaneWidth() uint { return d.laneWidth }

// LaneCount returns N, the number of lanes.
func (d Descriptor) LaneCount() uint { return d.laneCount }

// CodeWidth returns C, the bit width of the code word.
func (d Descriptor) CodeWidth() uint { return d.codeWidth }

// ElementRepr returns the element representation the descriptor was
// bound with. It governs bind-time admissibility and how decoded lanes
// are to be reinterpreted; Encode and Decode do not promote or demote
// lanes.
func (d Descriptor) ElementRepr() ElementRepr { return d.elementRepr }

// ReturnFloat reports whether a decode-bound descriptor was asked to
// present lanes as IEEE-754 floats.
func (d Descriptor) ReturnFloat() bool { return d.returnFloat }

// ReturnUnsigned reports whether a decode-bound descriptor was asked to
// present lanes as unsigned integers.
func (d Descriptor) ReturnUnsigned() bool { return d.returnUnsigned }

// BindEncode validates an encode call's parameters against the
// width table and returns a BOUND Descriptor, or a DomainError if the
// (lane width, lane count) combination is inadmissible.
func BindEncode(kind Kind, laneWidth, laneCount uint, repr ElementRepr) (Descriptor, error) {
	if kind != Hilbert && kind != Morton {
		return Descriptor{}, domainErrorf("unknown codec kind %d", kind)
	}
	if repr == Float && laneWidth != 32 && laneWidth != 64 {
		return Descriptor{}, domainErrorf("%v: float element representation requires lane width 32 or 64, got %d", kind, laneWidth)
	}
	c, ok := lookupCodeWidth(laneWidth, laneCount)
	if !ok {
		return Descriptor{}, domainErrorf("%v: unsupported (lane width=%d, lane count=%d): N*W must be <=128 and land on a standard code width", kind, laneWidth, laneCount)
	}
	return Descriptor{
		kind:        kind,
		direction:   EncodeDirection,
		laneWidth:   laneWidth,
		laneCount:   laneCount,
		codeWidth:   c,
		elementRepr: repr,
	}, nil
}

// BindDecode validates a decode call's parameters against the
// width table and float-legality set and returns a BOUND Descriptor, or
// a DomainError if the combination is inadmissible.
func BindDecode(kind Kind, codeWidth, laneCount uint, returnFloat, returnUnsigned bool) (Descriptor, error) {
	if kind != Hilbert && kind != Morton {
		return Descriptor{}, domainErrorf("unknown codec kind %d", kind)
	}
	if laneCount < 1 || laneCount > 16 {
		return Descriptor{}, domainErrorf("%v: lane count %d out of range 1..16", kind, laneCount)
	}
	laneWidth, ok := lookupLaneWidth(codeWidth, laneCount)
	if !ok {
		return Descriptor{}, domainErrorf("%v: unsupported (code width=%d, lane count=%d): no supported (lane width, lane count) produces this code width", kind, codeWidth, laneCount)
	}

	repr := SInt
	if returnUnsigned {
		repr = UInt
	}
	if returnFloat {
		if laneWidth != 32 && laneWidth != 64 {
			return Descriptor{}, domainErrorf("%v: float decode requires derived lane width 32 or 64, got %d", kind, laneWidth)
		}
		if !floatLegal[[2]uint{laneWidth, laneCount}] {
			return Descriptor{}, domainErrorf("%v: float decode is not legal for (lane width=%d, lane count=%d)", kind, laneWidth, laneCount)
		}
		repr = Float
	}

	return Descriptor{
		kind:           kind,
		direction:      DecodeDirection,
		laneWidth:      laneWidth,
		laneCount:      laneCount,
		codeWidth:      codeWidth,
		elementRepr:    repr,
		returnFloat:    returnFloat,
		returnUnsigned: returnUnsigned,
	}, nil
}
