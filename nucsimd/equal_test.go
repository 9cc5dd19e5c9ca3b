// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd_test

import (
	"testing"

	"github.com/grailbio/nucpack/nucsimd"
	"github.com/grailbio/testutil/expect"
)

func TestEqual(t *testing.T) {
	a := nucsimd.Encode([]byte("ACGTACGTACGTACGTACGTACGTACGTACGTACGTAC"))
	b := nucsimd.Encode([]byte("ACGTACGTACGTACGTACGTACGTACGTACGTACGTAG"))
	expect.True(t, nucsimd.Equal(a, b, 0))
	expect.True(t, nucsimd.Equal(a, b, 37))
	expect.False(t, nucsimd.Equal(a, b, 38))

	// Garbage past n does not matter.
	c := append([]uint64(nil), a...)
	c[1] |= ^uint64(0) >> 12 << 12
	expect.True(t, nucsimd.Equal(a, c, 38))
	expect.False(t, nucsimd.Equal(a, c, 39))

	d := append([]uint64(nil), a...)
	d[0] ^= 1 << 62
	expect.True(t, nucsimd.Equal(a, d, 31))
	expect.False(t, nucsimd.Equal(a, d, 32))
}
