// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

var (
	// invalidTable[b] is true iff b is not one of ACGTUacgtu.
	invalidTable [256]bool

	// notMemberLUT[lo] has bit hi set iff byte hi<<4|lo (hi < 8) is not a
	// valid symbol.
	notMemberLUT [16]byte

	// pow2LUT[i] = 1<<i for i < 8.
	pow2LUT = [16]byte{1, 2, 4, 8, 16, 32, 64, 128}
)

func init() {
	for b := range invalidTable {
		invalidTable[b] = true
	}
	for _, b := range []byte("ACGTUacgtu") {
		invalidTable[b] = false
	}
	for b := 0; b < 128; b++ {
		if invalidTable[b] {
			notMemberLUT[b&15] |= 1 << uint(b>>4)
		}
	}
}

func isValidScalar(nuc []byte) bool {
	n := len(nuc)
	i := 0
	for ; i+4 <= n; i += 4 {
		if invalidTable[nuc[i]] || invalidTable[nuc[i+1]] || invalidTable[nuc[i+2]] || invalidTable[nuc[i+3]] {
			return false
		}
	}
	for ; i < n; i++ {
		if invalidTable[nuc[i]] {
			return false
		}
	}
	return true
}

// isValidNarrow tests 16 bytes per step.  Negative bytes are clamped to
// zero, which is itself invalid, so they always fail; for the others the
// low nibble selects a bitmap of invalid high nibbles and the high nibble
// selects the bit to test.
func isValidNarrow(nuc []byte) bool {
	nBlock := len(nuc) >> 4
	hiMask := set1x8(7)
	for i := 0; i < nBlock; i++ {
		v := load128(nuc[i<<4:])
		lo := v.max8zero().lookup(&notMemberLUT)
		hi := v.srl16(4).and(hiMask).lookup(&pow2LUT)
		if !lo.testz(hi) {
			return false
		}
	}
	return isValidScalar(nuc[nBlock<<4:])
}

func isValidWide(nuc []byte) bool {
	nBlock := len(nuc) >> 5
	hiMask := set1x8w(7)
	for i := 0; i < nBlock; i++ {
		v := load256(nuc[i<<5:])
		lo := v.max8zero().lookup(&notMemberLUT)
		hi := v.srl16(4).and(hiMask).lookup(&pow2LUT)
		if !lo.testz(hi) {
			return false
		}
	}
	return isValidScalar(nuc[nBlock<<5:])
}
