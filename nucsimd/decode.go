// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import "github.com/grailbio/base/simd"

var decodeTable = [4]byte{'A', 'C', 'T', 'G'}

var (
	// decodeLUT is indexed by the masked 16-bit lanes built in the vector
	// decoders: codes in bits 0-1 index entries 0-3, codes in bits 2-3 index
	// entries 0, 4, 8, 12.
	decodeLUT = [16]byte{'A', 'C', 'T', 'G', 'C', 0, 0, 0, 'T', 0, 0, 0, 'G', 0, 0, 0}

	// dup4Narrow copies bytes 0-3 of a broadcast 32-bit chunk four times
	// each.
	dup4Narrow = vec128{0x0101010100000000, 0x0303030302020202}
	// dup4Wide does the same for bytes 0-7 of a broadcast word; the high half
	// takes bytes 4-7.
	dup4Wide = vec256{0x0101010100000000, 0x0303030302020202, 0x0505050504040404, 0x0707070706060606}
)

// newDecodeBuf returns a length-n buffer whose capacity covers whole words,
// so the vector decoders can store full registers.
func newDecodeBuf(n int) []byte {
	return make([]byte, n, simd.RoundUpPow2(n, SymbolsPerWord))
}

func decodeScalar(packed []uint64, n int) []byte {
	res := newDecodeBuf(n)
	for i := range res {
		res[i] = decodeTable[(packed[i>>5]>>(uint(i&31)<<1))&3]
	}
	return res
}

// decodeNarrow emits 16 bytes per 32-bit chunk.  After the byte
// duplication, the 16-bit lanes of the register hold each source byte
// twice; the odd lanes are shifted right by 4 so that masking with 0x0c03
// leaves code 0, 1, 2, 3 of the byte in the four output bytes, in positions
// the lookup table resolves.
func decodeNarrow(packed []uint64, n int) []byte {
	res := newDecodeBuf(n)
	out := res[:cap(res)]
	mask := set1x16(0x0c03)
	nChunk := (n + 15) >> 4
	for i := 0; i < nChunk; i++ {
		v := set1x32(uint32(packed[i>>1] >> (uint(i&1) << 5))).shuffle(dup4Narrow)
		v = v.blendOdd16(v.srl16(4)).and(mask)
		v.lookup(&decodeLUT).store(out[i<<4:])
	}
	return res
}

// decodeWide emits 32 bytes per word.
func decodeWide(packed []uint64, n int) []byte {
	res := newDecodeBuf(n)
	out := res[:cap(res)]
	mask := set1x16w(0x0c03)
	nWord := WordCount(n)
	for i := 0; i < nWord; i++ {
		v := set1x64w(packed[i]).shuffle(dup4Wide)
		v = v.blendOdd16(v.srl16(4)).and(mask)
		v.lookup(&decodeLUT).store(out[i<<5:])
	}
	return res
}
