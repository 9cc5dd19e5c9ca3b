// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

// encodeTable maps every byte to its 2-bit code: bit 1 of the byte becomes
// the low bit of the code and bit 2 the high bit.  For ACGTU in either case
// this gives A=0, C=1, T=U=2, G=3.
var encodeTable [256]byte

func init() {
	for b := 0; b < 256; b++ {
		encodeTable[b] = byte((b>>1)&1 | ((b>>2)&1)<<1)
	}
}

func encodeScalar(nuc []byte) []uint64 {
	res := make([]uint64, WordCount(len(nuc)))
	for i, b := range nuc {
		res[i>>5] |= uint64(encodeTable[b]) << (uint(i&31) << 1)
	}
	return res
}

// mergeTail encodes nuc[start:] with the scalar kernel and ORs the result
// into res, starting at symbol start.
func mergeTail(res []uint64, nuc []byte, start int) {
	tail := encodeScalar(nuc[start:])
	off := start >> 5
	shift := uint(start&31) << 1
	for j, w := range tail {
		res[off+j] |= w << shift
		if shift != 0 && off+j+1 < len(res) {
			res[off+j+1] |= w >> (64 - shift)
		}
	}
}

// encodeNarrow packs 16 bytes per step into one 32-bit half word.  Shifting
// each 64-bit lane left by 6 (5) moves bit 1 (2) of every byte to its top
// bit; interleaving the two shifted copies and extracting the top bits then
// yields the codes in order.
func encodeNarrow(nuc []byte) []uint64 {
	n := len(nuc)
	res := make([]uint64, WordCount(n))
	nBlock := n >> 4
	for i := 0; i < nBlock; i++ {
		v := load128(nuc[i<<4:])
		lo := v.sll64(6)
		hi := v.sll64(5)
		a := lo.unpackhi8(hi).movemask()
		b := lo.unpacklo8(hi).movemask()
		res[i>>1] |= uint64(a<<16|b) << (uint(i&1) << 5)
	}
	if start := nBlock << 4; start < n {
		mergeTail(res, nuc, start)
	}
	return res
}

// encodeWide packs 32 bytes per step into one word.  The 64-bit lanes are
// reordered 0,2,1,3 first, so the in-lane unpacks see the first and last 16
// bytes in their low and high half respectively.
func encodeWide(nuc []byte) []uint64 {
	n := len(nuc)
	res := make([]uint64, WordCount(n))
	nBlock := n >> 5
	for i := 0; i < nBlock; i++ {
		v := load256(nuc[i<<5:]).permute4x64(0xd8)
		lo := v.sll64(6)
		hi := v.sll64(5)
		a := lo.unpackhi8(hi).movemask()
		b := lo.unpacklo8(hi).movemask()
		res[i] = uint64(a)<<32 | uint64(b)
	}
	if start := nBlock << 5; start < n {
		mergeTail(res, nuc, start)
	}
	return res
}
