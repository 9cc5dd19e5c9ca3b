// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd_test

import (
	"testing"

	"github.com/grailbio/nucpack/nucsimd"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allCodecs returns one Codec per tier.
func allCodecs(t testing.TB) []*nucsimd.Codec {
	var codecs []*nucsimd.Codec
	for _, tier := range nucsimd.Tiers() {
		c, err := nucsimd.NewCodec(tier)
		require.NoError(t, err)
		codecs = append(codecs, c)
	}
	return codecs
}

// codeSlow maps a byte to its 2-bit code the long way.
func codeSlow(b byte) uint64 {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'T', 't', 'U', 'u':
		return 2
	case 'G', 'g':
		return 3
	}
	return uint64(b>>1&1 | (b>>2&1)<<1)
}

func encodeSlow(nuc []byte) []uint64 {
	res := make([]uint64, nucsimd.WordCount(len(nuc)))
	for i, b := range nuc {
		res[i/32] |= codeSlow(b) << (2 * uint(i%32))
	}
	return res
}

func TestTierNames(t *testing.T) {
	for _, tier := range nucsimd.Tiers() {
		parsed, err := nucsimd.ParseTier(tier.String())
		assert.NoError(t, err)
		assert.Equal(t, tier, parsed)
	}
	assert.Equal(t, "wide", nucsimd.TierWide.String())
	assert.Equal(t, "Tier(7)", nucsimd.Tier(7).String())
	_, err := nucsimd.ParseTier("avx512")
	assert.Error(t, err)
}

func TestNewCodec(t *testing.T) {
	_, err := nucsimd.NewCodec(nucsimd.Tier(3))
	assert.Error(t, err)
	_, err = nucsimd.NewCodec(nucsimd.Tier(-1))
	assert.Error(t, err)
	for _, c := range allCodecs(t) {
		parsed, err := nucsimd.ParseTier(c.Tier().String())
		require.NoError(t, err)
		assert.Equal(t, c.Tier(), parsed)
	}
	expect.EQ(t, nucsimd.Default().Tier(), nucsimd.DetectTier())
}

func TestWordCount(t *testing.T) {
	for _, tc := range []struct{ n, want int }{
		{0, 0}, {1, 1}, {31, 1}, {32, 1}, {33, 2}, {64, 2}, {65, 3},
	} {
		expect.EQ(t, nucsimd.WordCount(tc.n), tc.want, "n=%d", tc.n)
	}
}

func TestLengthError(t *testing.T) {
	err := &nucsimd.LengthError{Op: "Decode", Len: 65, Cap: 64}
	expect.EQ(t, err.Error(), "nucsimd.Decode: length 65 exceeds capacity 64")
}

// expectLengthPanic runs f and checks that it panics with a *LengthError
// for op.
func expectLengthPanic(t *testing.T, op string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(*nucsimd.LengthError)
		require.True(t, ok, "%s: expected *LengthError panic, got %v", op, r)
		assert.Equal(t, op, err.Op)
	}()
	f()
}

func TestAnalyticsLengthPanics(t *testing.T) {
	a := make([]uint64, 4)
	b := make([]uint64, 3)
	for _, c := range allCodecs(t) {
		expectLengthPanic(t, "Popcount", func() { c.Popcount(a, 257) })
		expectLengthPanic(t, "Popcount", func() { c.Popcount(a, -1) })
		expectLengthPanic(t, "Hamming", func() { c.Hamming(a, b, 97) })
		expectLengthPanic(t, "Hamming", func() { c.Hamming(a, b, -5) })
		expectLengthPanic(t, "Equal", func() { c.Equal(b, a, 97) })
	}
	expectLengthPanic(t, "GCCount", func() { nucsimd.GCCount(a, 129) })
	// Boundaries are fine.
	expect.EQ(t, nucsimd.Popcount(a, 256), 0)
	expect.EQ(t, nucsimd.Hamming(a, b, 96), 0)
	expect.True(t, nucsimd.Equal(a, b, 96))
}
