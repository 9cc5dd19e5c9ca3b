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
	"github.com/stretchr/testify/require"
)

var complementSlow = map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}

func TestComplement(t *testing.T) {
	codecs := allCodecs(t)
	g := seqgen.New(4)
	for iter := 0; iter < 200; iter++ {
		n := rand.Intn(600)
		packed, seq := g.Packed(n, 0.5)
		orig := append([]uint64(nil), packed...)
		want := make([]byte, n)
		for i, b := range seq {
			want[i] = complementSlow[b]
		}
		for _, c := range codecs {
			comp := c.Complement(packed)
			expect.EQ(t, packed, orig, "input modified")
			dec, err := c.Decode(comp, n)
			require.NoError(t, err)
			expect.EQ(t, string(dec), string(want), "tier %v, n=%d", c.Tier(), n)
			// Involution, including the padding bits.
			expect.EQ(t, c.Complement(comp), packed)
		}
	}
}

func TestComplementTiers(t *testing.T) {
	codecs := allCodecs(t)
	for nWord := 0; nWord < 20; nWord++ {
		packed := make([]uint64, nWord)
		for i := range packed {
			packed[i] = rand.Uint64()
		}
		want := make([]uint64, nWord)
		for i, w := range packed {
			want[i] = w ^ nucsimd.ComplementMask
		}
		for _, c := range codecs {
			expect.EQ(t, c.Complement(packed), want, "tier %v", c.Tier())
		}
	}
}

func BenchmarkComplement(b *testing.B) {
	packed, _ := seqgen.New(1).Packed(1<<16, 0.5)
	for _, c := range allCodecs(b) {
		c := c
		b.Run(c.Tier().String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = c.Complement(packed)
			}
		})
	}
}
