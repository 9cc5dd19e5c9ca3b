// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

// Equal reports whether the first n symbols of a and b are identical; bits
// past the n-th symbol are ignored.  It panics with a *LengthError if n < 0
// or n exceeds the capacity of either buffer.
func Equal(a, b []uint64, n int) bool {
	mustLength("Equal", n, minInt(len(a), len(b))*SymbolsPerWord)
	nWord := n >> 5
	for i := 0; i < nWord; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	if leftover := uint(n&31) << 1; leftover != 0 {
		return (a[nWord]^b[nWord])&(1<<leftover-1) == 0
	}
	return true
}
