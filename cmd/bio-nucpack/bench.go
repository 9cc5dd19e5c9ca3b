package main

import (
	"fmt"
	"io"
	"time"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/nucpack/nucsimd"
	"github.com/grailbio/nucpack/seqgen"
)

type benchOpts struct {
	length int
	gc     float64
	iters  int
	seed   int64
}

type benchOp struct {
	name string
	run  func(c *nucsimd.Codec)
}

// bench times every operation on every tier, plus the package-level
// functions ("auto"), and writes "op tier len ns_per_op".
func bench(opts benchOpts, out io.Writer) error {
	if opts.length < 0 {
		return fmt.Errorf("bench: -len must be nonnegative, got %d", opts.length)
	}
	if opts.iters <= 0 {
		opts.iters = 1
	}
	g := seqgen.New(opts.seed)
	seq := g.Nucleotides(opts.length, opts.gc)
	a := nucsimd.Encode(seq)
	b, _ := g.Packed(opts.length, opts.gc)
	n := opts.length
	var sink int
	ops := []benchOp{
		{"encode", func(c *nucsimd.Codec) { sink += len(c.Encode(seq)) }},
		{"decode", func(c *nucsimd.Codec) {
			dec, _ := c.Decode(a, n)
			sink += len(dec)
		}},
		{"check", func(c *nucsimd.Codec) {
			if c.IsValid(seq) {
				sink++
			}
		}},
		{"complement", func(c *nucsimd.Codec) { sink += len(c.Complement(a)) }},
		{"popcount", func(c *nucsimd.Codec) { sink += c.Popcount(a, 2*n) }},
		{"hamming", func(c *nucsimd.Codec) { sink += c.Hamming(a, b, n) }},
	}

	type target struct {
		name  string
		codec *nucsimd.Codec
	}
	var targets []target
	for _, tier := range nucsimd.Tiers() {
		c, err := nucsimd.NewCodec(tier)
		if err != nil {
			return err
		}
		targets = append(targets, target{tier.String(), c})
	}
	targets = append(targets, target{"auto", nucsimd.Default()})

	w := tsv.NewWriter(out)
	w.WriteString("op\ttier\tlen\tns_per_op")
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, op := range ops {
		for _, t := range targets {
			start := time.Now()
			for i := 0; i < opts.iters; i++ {
				op.run(t.codec)
			}
			elapsed := time.Since(start)
			w.WriteString(op.name)
			w.WriteString(t.name)
			w.WriteInt64(int64(n))
			w.WriteInt64(elapsed.Nanoseconds() / int64(opts.iters))
			if err := w.EndLine(); err != nil {
				return err
			}
		}
	}
	_ = sink
	return w.Flush()
}
