// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/nucpack/nucsimd"
	"github.com/grailbio/nucpack/seqgen"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
)

func popcountSlow(packed []uint64, nBits int) int {
	cnt := 0
	for i := 0; i < nBits; i++ {
		if packed[i/64]&(1<<uint(i%64)) != 0 {
			cnt++
		}
	}
	return cnt
}

func randomWords(n int) []uint64 {
	res := make([]uint64, n)
	for i := range res {
		res[i] = rand.Uint64()
	}
	return res
}

func TestPopcountTiers(t *testing.T) {
	codecs := allCodecs(t)
	for iter := 0; iter < 300; iter++ {
		packed := randomWords(rand.Intn(300))
		nBits := rand.Intn(64*len(packed) + 1)
		want := popcountSlow(packed, nBits)
		for _, c := range codecs {
			if !assert.Equal(t, want, c.Popcount(packed, nBits), "tier %v, nBits=%d", c.Tier(), nBits) {
				return
			}
		}
	}
}

func TestPopcountAllOnes(t *testing.T) {
	// Saturated input is the worst case for the 8-bit accumulators.
	codecs := allCodecs(t)
	for _, nWord := range []int{0, 1, 8, 9, 31, 32, 33, 63, 64, 65, 127, 128, 129, 1000, 4096} {
		packed := make([]uint64, nWord)
		for i := range packed {
			packed[i] = ^uint64(0)
		}
		for _, c := range codecs {
			expect.EQ(t, c.Popcount(packed, 64*nWord), 64*nWord, "tier %v, nWord=%d", c.Tier(), nWord)
			if nWord > 0 {
				expect.EQ(t, c.Popcount(packed, 64*nWord-3), 64*nWord-3)
			}
		}
	}
}

func TestPopcountAdditive(t *testing.T) {
	codecs := allCodecs(t)
	for iter := 0; iter < 100; iter++ {
		nWord := 1 + rand.Intn(200)
		packed := randomWords(nWord)
		split := rand.Intn(nWord)
		nBits := 64 * nWord
		for _, c := range codecs {
			whole := c.Popcount(packed, nBits)
			parts := c.Popcount(packed[:split], 64*split) + c.Popcount(packed[split:], nBits-64*split)
			expect.EQ(t, parts, whole, "tier %v", c.Tier())
		}
	}
}

// shiftSymbols returns packed with its first s symbols dropped, so that
// symbol s lands at bit 0 of the first word.
func shiftSymbols(packed []uint64, s int) []uint64 {
	word, shift := s/nucsimd.SymbolsPerWord, uint(2*(s%nucsimd.SymbolsPerWord))
	res := make([]uint64, len(packed)-word)
	for i := range res {
		res[i] = packed[word+i] >> shift
		if shift != 0 && word+i+1 < len(packed) {
			res[i] |= packed[word+i+1] << (64 - shift)
		}
	}
	return res
}

func TestPopcountAdditiveAnySymbol(t *testing.T) {
	codecs := allCodecs(t)
	g := seqgen.New(7)
	for iter := 0; iter < 200; iter++ {
		n := 1 + g.Intn(60*nucsimd.SymbolsPerWord)
		packed, _ := g.Packed(n, 0.5)
		split := g.Intn(n + 1)
		rest := shiftSymbols(packed, split)
		for _, c := range codecs {
			whole := c.Popcount(packed, 2*n)
			parts := c.Popcount(packed, 2*split) + c.Popcount(rest, 2*(n-split))
			expect.EQ(t, parts, whole, "tier %v, n=%d, split=%d", c.Tier(), n, split)
		}
	}
}

func TestPopcountScenario(t *testing.T) {
	packed := make([]uint64, 128)
	for i := range packed {
		packed[i] = 0x0101010101010101
	}
	for _, c := range allCodecs(t) {
		expect.EQ(t, c.Popcount(packed, 8192), 1024)
	}
}

func BenchmarkPopcount(b *testing.B) {
	packed, _ := seqgen.New(1).Packed(1<<16, 0.5)
	nBits := 64 * len(packed)
	for _, c := range allCodecs(b) {
		c := c
		b.Run(c.Tier().String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = c.Popcount(packed, nBits)
			}
		})
	}
	b.Run("dispatch", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = nucsimd.Popcount(packed, nBits)
		}
	})
}
