// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import "math/bits"

// reverseCodes reverses the order of the 32 2-bit fields of x.
func reverseCodes(x uint64) uint64 {
	x = bits.ReverseBytes64(x)
	x = (x>>4)&0x0f0f0f0f0f0f0f0f | (x&0x0f0f0f0f0f0f0f0f)<<4
	return (x>>2)&0x3333333333333333 | (x&0x3333333333333333)<<2
}

// ReverseComplement returns the packed reverse complement of the first n
// symbols of packed.  The result has WordCount(n) words and zero padding.
// It returns a *LengthError if n < 0 or n > len(packed)*SymbolsPerWord.
func ReverseComplement(packed []uint64, n int) ([]uint64, error) {
	if err := checkLength("ReverseComplement", n, len(packed)*SymbolsPerWord); err != nil {
		return nil, err
	}
	nWord := WordCount(n)
	res := make([]uint64, nWord)
	for i := 0; i < nWord; i++ {
		res[nWord-1-i] = reverseCodes(packed[i]) ^ ComplementMask
	}
	// The reversed padding now occupies the lowest symbols; shift it out.
	if pad := uint(nWord*SymbolsPerWord-n) << 1; pad != 0 {
		for i := 0; i < nWord-1; i++ {
			res[i] = res[i]>>pad | res[i+1]<<(64-pad)
		}
		res[nWord-1] >>= pad
	}
	return res, nil
}

// GCCount returns the number of C and G symbols among the first n symbols
// of packed.  It panics with a *LengthError if n < 0 or
// n > len(packed)*SymbolsPerWord.
func GCCount(packed []uint64, n int) int {
	mustLength("GCCount", n, len(packed)*SymbolsPerWord)
	nWord := n >> 5
	cnt := 0
	for _, w := range packed[:nWord] {
		cnt += bits.OnesCount64(w & lowBitMask)
	}
	if leftover := uint(n&31) << 1; leftover != 0 {
		cnt += bits.OnesCount64(packed[nWord] & lowBitMask & (1<<leftover - 1))
	}
	return cnt
}
