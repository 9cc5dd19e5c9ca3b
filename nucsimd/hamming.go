// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import "math/bits"

// mismatches returns the number of nonzero 2-bit fields of x.
func mismatches(x uint64) int {
	return bits.OnesCount64((x | x>>1) & lowBitMask)
}

// hammingScalar compares the first n symbols of a and b one word at a time.
func hammingScalar(a, b []uint64, n int) int {
	nWord := n >> 5
	cnt := 0
	for i := 0; i < nWord; i++ {
		cnt += mismatches(a[i] ^ b[i])
	}
	if leftover := uint(n&31) << 1; leftover != 0 {
		cnt += mismatches((a[nWord] ^ b[nWord]) & (1<<leftover - 1))
	}
	return cnt
}

// hammingScalarFast is hammingScalar unrolled four ways.
func hammingScalarFast(a, b []uint64, n int) int {
	nWord := n >> 5
	var c0, c1, c2, c3 int
	i := 0
	for ; i+4 <= nWord; i += 4 {
		c0 += mismatches(a[i] ^ b[i])
		c1 += mismatches(a[i+1] ^ b[i+1])
		c2 += mismatches(a[i+2] ^ b[i+2])
		c3 += mismatches(a[i+3] ^ b[i+3])
	}
	for ; i < nWord; i++ {
		c0 += mismatches(a[i] ^ b[i])
	}
	if leftover := uint(n&31) << 1; leftover != 0 {
		c1 += mismatches((a[nWord] ^ b[nWord]) & (1<<leftover - 1))
	}
	return c0 + c1 + c2 + c3
}

func hammingNarrow(a, b []uint64, n int) int {
	cnt, done := countNarrow(a, b, n>>5, &mismatchLUT)
	return cnt + hammingScalarFast(a[done:], b[done:], n-done*SymbolsPerWord)
}

func hammingWide(a, b []uint64, n int) int {
	cnt, done := countWide(a, b, n>>5, &mismatchLUT)
	return cnt + hammingScalarFast(a[done:], b[done:], n-done*SymbolsPerWord)
}
