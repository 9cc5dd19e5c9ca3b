// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/grailbio/nucpack/nucsimd"
	"github.com/grailbio/nucpack/seqgen"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSlow(packed []uint64, n int) []byte {
	res := make([]byte, n)
	for i := range res {
		res[i] = "ACTG"[(packed[i/32]>>(2*uint(i%32)))&3]
	}
	return res
}

func TestRoundTrip(t *testing.T) {
	codecs := allCodecs(t)
	g := seqgen.New(2)
	upper := bytes.ToUpper
	for iter := 0; iter < 300; iter++ {
		n := rand.Intn(1000)
		seq := g.Nucleotides(n, 0.5)
		lower := bytes.ToLower(seq)
		uracil := bytes.Replace(seq, []byte("T"), []byte("U"), -1)
		for _, c := range codecs {
			for _, src := range [][]byte{seq, lower, uracil} {
				dec, err := c.Decode(c.Encode(src), n)
				require.NoError(t, err)
				if !assert.Equal(t, string(upper(seq)), string(dec), "tier %v, n=%d", c.Tier(), n) {
					return
				}
			}
		}
	}
}

func TestDecodeTiers(t *testing.T) {
	codecs := allCodecs(t)
	for iter := 0; iter < 300; iter++ {
		nWord := rand.Intn(40)
		packed := make([]uint64, nWord)
		for i := range packed {
			packed[i] = rand.Uint64()
		}
		n := rand.Intn(nWord*nucsimd.SymbolsPerWord + 1)
		want := decodeSlow(packed, n)
		for _, c := range codecs {
			got, err := c.Decode(packed, n)
			require.NoError(t, err)
			expect.EQ(t, string(got), string(want), "tier %v, n=%d", c.Tier(), n)
			expect.EQ(t, len(got), n)
			expect.EQ(t, cap(got), nucsimd.SymbolsPerWord*nucsimd.WordCount(n))
		}
	}
}

func TestDecodeLength(t *testing.T) {
	packed := []uint64{0xd8}
	for _, c := range allCodecs(t) {
		for _, n := range []int{-1, 33, 1000} {
			_, err := c.Decode(packed, n)
			lerr, ok := err.(*nucsimd.LengthError)
			require.True(t, ok, "n=%d: %v", n, err)
			expect.EQ(t, *lerr, nucsimd.LengthError{Op: "Decode", Len: n, Cap: 32})
		}
		dec, err := c.Decode(packed, 32)
		expect.NoError(t, err)
		expect.EQ(t, string(dec), "ATCG"+string(bytes.Repeat([]byte("A"), 28)))
		dec, err = c.Decode(nil, 0)
		expect.NoError(t, err)
		expect.EQ(t, len(dec), 0)
	}
}

func BenchmarkDecode(b *testing.B) {
	packed, seq := seqgen.New(1).Packed(1<<16, 0.5)
	for _, c := range allCodecs(b) {
		c := c
		b.Run(c.Tier().String(), func(b *testing.B) {
			b.SetBytes(int64(len(seq)))
			for i := 0; i < b.N; i++ {
				_, _ = c.Decode(packed, len(seq))
			}
		})
	}
}
