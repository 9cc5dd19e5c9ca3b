// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

func complementScalar(packed []uint64) []uint64 {
	res := make([]uint64, len(packed))
	for i, w := range packed {
		res[i] = w ^ ComplementMask
	}
	return res
}

func complementNarrow(packed []uint64) []uint64 {
	res := make([]uint64, len(packed))
	mask := vec128{ComplementMask, ComplementMask}
	i := 0
	for ; i+2 <= len(packed); i += 2 {
		v := vec128{packed[i], packed[i+1]}.xor(mask)
		res[i], res[i+1] = v[0], v[1]
	}
	for ; i < len(packed); i++ {
		res[i] = packed[i] ^ ComplementMask
	}
	return res
}

func complementWide(packed []uint64) []uint64 {
	res := make([]uint64, len(packed))
	mask := set1x64w(ComplementMask)
	i := 0
	for ; i+4 <= len(packed); i += 4 {
		v := vec256{packed[i], packed[i+1], packed[i+2], packed[i+3]}.xor(mask)
		copy(res[i:i+4], v[:])
	}
	for ; i < len(packed); i++ {
		res[i] = packed[i] ^ ComplementMask
	}
	return res
}
