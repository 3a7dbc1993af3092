// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitops

import "testing"

func TestShl(t *testing.T) {
	vectors := []struct {
		in   U128
		n    uint
		want U128
	}{
		{FromUint64(1), 0, FromUint64(1)},
		{FromUint64(1), 63, U128{Lo: 1 << 63}},
		{FromUint64(1), 64, U128{Hi: 1}},
		{FromUint64(1), 127, U128{Hi: 1 << 63}},
		{FromUint64(1), 128, U128{}},
		{U128{Lo: 1 << 63}, 1, U128{Hi: 1}},
	}
	for i, v := range vectors {
		if got := v.in.Shl(v.n); !got.Equal(v.want) {
			t.Errorf("test %d, Shl(%d): got %+v, want %+v", i, v.n, got, v.want)
		}
	}
}

func TestShr(t *testing.T) {
	vectors := []struct {
		in   U128
		n    uint
		want U128
	}{
		{U128{Hi: 1}, 64, FromUint64(1)},
		{U128{Hi: 1}, 1, U128{Lo: 1 << 63}},
		{U128{Hi: 1 << 63}, 127, FromUint64(1)},
		{FromUint64(8), 1, FromUint64(4)},
		{U128{Hi: 1}, 128, U128{}},
	}
	for i, v := range vectors {
		if got := v.in.Shr(v.n); !got.Equal(v.want) {
			t.Errorf("test %d, Shr(%d): got %+v, want %+v", i, v.n, got, v.want)
		}
	}
}

func TestMask(t *testing.T) {
	vectors := []struct {
		in    U128
		width uint
		want  U128
	}{
		{U128{Hi: 0xff, Lo: 0xff}, 8, FromUint64(0xff)},
		{U128{Hi: 0xff, Lo: 0xff}, 4, FromUint64(0xf)},
		{U128{Hi: 0xff, Lo: 0xff}, 128, U128{Hi: 0xff, Lo: 0xff}},
	}
	for i, v := range vectors {
		if got := Mask(v.in, v.width); !got.Equal(v.want) {
			t.Errorf("test %d, Mask(%d): got %+v, want %+v", i, v.width, got, v.want)
		}
	}
}

func TestAddSub64(t *testing.T) {
	max64 := FromUint64(^uint64(0))
	got := max64.Add64(1)
	want := U128{Hi: 1}
	if !got.Equal(want) {
		t.Errorf("Add64 carry: got %+v, want %+v", got, want)
	}
	back := got.Sub64(1)
	if !back.Equal(max64) {
		t.Errorf("Sub64 borrow: got %+v, want %+v", back, max64)
	}
}

func TestLess(t *testing.T) {
	if !FromUint64(1).Less(FromUint64(2)) {
		t.Error("1 should be less than 2")
	}
	if FromUint64(2).Less(FromUint64(1)) {
		t.Error("2 should not be less than 1")
	}
	if (U128{Hi: 0, Lo: 1}).Less(U128{Hi: 0, Lo: 1}) {
		t.Error("value should not be less than itself")
	}
	if !(U128{Hi: 0}.Less(U128{Hi: 1})) {
		t.Error("lower Hi should sort below higher Hi regardless of Lo")
	}
}
