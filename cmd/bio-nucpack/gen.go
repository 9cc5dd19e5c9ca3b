package main

import (
	"context"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/nucpack/encoding/fasta"
	"github.com/grailbio/nucpack/seqgen"
)

type genOpts struct {
	// n is the number of records.
	n int
	// length is the number of bases per record.
	length int
	gc     float64
	seed   int64
	width  int
}

// gen writes opts.n random records named seq0, seq1, ... to path.
func gen(ctx context.Context, path string, opts genOpts) (err error) {
	if opts.n < 0 || opts.length < 0 {
		return fmt.Errorf("gen: -n and -len must be nonnegative, got %d and %d", opts.n, opts.length)
	}
	out, closeFn, err := createOutput(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		e := errors.Once{}
		e.Set(err)
		e.Set(closeFn())
		err = e.Err()
	}()
	g := seqgen.New(opts.seed)
	w := fasta.NewWriter(out, opts.width)
	for i := 0; i < opts.n; i++ {
		if err := w.Write(fmt.Sprintf("seq%d", i), g.Nucleotides(opts.length, opts.gc)); err != nil {
			return err
		}
	}
	return w.Flush()
}
