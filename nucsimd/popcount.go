// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import "math/bits"

var (
	// popcountLUT[x] is the number of set bits in nibble x.
	popcountLUT = [16]byte{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

	// mismatchLUT[x] is the number of nonzero 2-bit fields in nibble x.
	mismatchLUT = [16]byte{0, 1, 1, 1, 1, 2, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2}
)

// The vector kernels add per-byte nibble counts into two 8-bit
// accumulators, and fold them into 64-bit lanes every reduceSteps
// iterations.  One step adds at most 8 (two nibbles of 4 bits), so an
// accumulator holds at most 8*reduceSteps = 64 and their sum 128.
const reduceSteps = 8

// popcountScalar counts the set bits among the first nBits bits, one word
// at a time.
func popcountScalar(packed []uint64, nBits int) int {
	nWord := nBits >> 6
	cnt := 0
	for _, w := range packed[:nWord] {
		cnt += bits.OnesCount64(w)
	}
	if leftover := uint(nBits & 63); leftover != 0 {
		cnt += bits.OnesCount64(packed[nWord] & (1<<leftover - 1))
	}
	return cnt
}

// popcountScalarFast is popcountScalar unrolled four ways.
func popcountScalarFast(packed []uint64, nBits int) int {
	nWord := nBits >> 6
	var c0, c1, c2, c3 int
	i := 0
	for ; i+4 <= nWord; i += 4 {
		c0 += bits.OnesCount64(packed[i])
		c1 += bits.OnesCount64(packed[i+1])
		c2 += bits.OnesCount64(packed[i+2])
		c3 += bits.OnesCount64(packed[i+3])
	}
	for ; i < nWord; i++ {
		c0 += bits.OnesCount64(packed[i])
	}
	if leftover := uint(nBits & 63); leftover != 0 {
		c1 += bits.OnesCount64(packed[nWord] & (1<<leftover - 1))
	}
	return c0 + c1 + c2 + c3
}

func nibbleCount128(v vec128, tbl *[16]byte) vec128 {
	nib := set1x8(0x0f)
	return v.and(nib).lookup(tbl).add8(v.srl16(4).and(nib).lookup(tbl))
}

func nibbleCount256(v vec256, tbl *[16]byte) vec256 {
	nib := set1x8w(0x0f)
	return v.and(nib).lookup(tbl).add8(v.srl16(4).and(nib).lookup(tbl))
}

// Words consumed by one outer iteration of the vector kernels: reduceSteps
// inner steps of two registers each.
const (
	narrowBlockWords = reduceSteps * 2 * 2
	wideBlockWords   = reduceSteps * 2 * 4
)

// countNarrow runs the narrow nibble-table kernel over whole blocks of
// packed (x = a, or a^b if b is non-nil) and returns the total along with
// the number of words consumed.
func countNarrow(a, b []uint64, nWord int, tbl *[16]byte) (int, int) {
	load := func(i int) vec128 {
		v := vec128{a[i], a[i+1]}
		if b != nil {
			v = v.xor(vec128{b[i], b[i+1]})
		}
		return v
	}
	nBlock := nWord / narrowBlockWords
	var res vec128
	idx := 0
	for blk := 0; blk < nBlock; blk++ {
		var acc0, acc1 vec128
		for j := 0; j < reduceSteps; j++ {
			acc0 = acc0.add8(nibbleCount128(load(idx), tbl))
			acc1 = acc1.add8(nibbleCount128(load(idx+2), tbl))
			idx += 4
		}
		res = res.add64(acc0.add8(acc1).sad())
	}
	return int(res.hsum()), idx
}

func countWide(a, b []uint64, nWord int, tbl *[16]byte) (int, int) {
	load := func(i int) vec256 {
		v := vec256{a[i], a[i+1], a[i+2], a[i+3]}
		if b != nil {
			v = v.xor(vec256{b[i], b[i+1], b[i+2], b[i+3]})
		}
		return v
	}
	nBlock := nWord / wideBlockWords
	var res vec256
	idx := 0
	for blk := 0; blk < nBlock; blk++ {
		var acc0, acc1 vec256
		for j := 0; j < reduceSteps; j++ {
			acc0 = acc0.add8(nibbleCount256(load(idx), tbl))
			acc1 = acc1.add8(nibbleCount256(load(idx+4), tbl))
			idx += 8
		}
		res = res.add64(acc0.add8(acc1).sad())
	}
	return int(res.hsum()), idx
}

func popcountNarrow(packed []uint64, nBits int) int {
	cnt, done := countNarrow(packed, nil, nBits>>6, &popcountLUT)
	return cnt + popcountScalarFast(packed[done:], nBits-done<<6)
}

func popcountWide(packed []uint64, nBits int) int {
	cnt, done := countWide(packed, nil, nBits>>6, &popcountLUT)
	return cnt + popcountScalarFast(packed[done:], nBits-done<<6)
}
