// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package seqgen generates random nucleotide sequences with a given GC
// content, for tests and benchmarks.
package seqgen

import (
	"math/rand"

	"github.com/grailbio/nucpack/nucsimd"
)

var bases = [4]byte{'A', 'T', 'C', 'G'}

// Generator produces reproducible random sequences.  It is not safe for
// concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Nucleotides returns n random bases drawn with weights 1-gc, 1-gc, gc, gc
// for A, T, C and G.  gc is clamped to [0, 1].
func (g *Generator) Nucleotides(n int, gc float64) []byte {
	if gc < 0 {
		gc = 0
	} else if gc > 1 {
		gc = 1
	}
	seq := make([]byte, n)
	for i := range seq {
		// Total weight is 2; halve it to pick the side, then the base.
		x := g.rnd.Float64() * 2
		switch {
		case x < 1-gc:
			seq[i] = bases[0]
		case x < 2*(1-gc):
			seq[i] = bases[1]
		case x < 2*(1-gc)+gc:
			seq[i] = bases[2]
		default:
			seq[i] = bases[3]
		}
	}
	return seq
}

// Packed returns n random bases in both packed and ASCII form.
func (g *Generator) Packed(n int, gc float64) ([]uint64, []byte) {
	seq := g.Nucleotides(n, gc)
	return nucsimd.Encode(seq), seq
}

// Bytes fills a slice of length n with arbitrary byte values, valid
// nucleotides or not.
func (g *Generator) Bytes(n int) []byte {
	b := make([]byte, n)
	g.rnd.Read(b)
	return b
}

// Intn returns a random int in [0, n).
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}
