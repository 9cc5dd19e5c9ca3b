package main

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/nucpack/encoding/fasta"
	"github.com/grailbio/nucpack/nucsimd"
)

// revcomp writes the reverse complement of every record of srcPath (FASTA or
// FASTQ) to destPath as FASTA.  Output is upper case, with U written as T.
func revcomp(ctx context.Context, codec *nucsimd.Codec, srcPath, destPath string, width int) (err error) {
	recs, err := readRecords(ctx, srcPath)
	if err != nil {
		return err
	}
	out, closeFn, err := createOutput(ctx, destPath)
	if err != nil {
		return err
	}
	defer func() {
		e := errors.Once{}
		e.Set(err)
		e.Set(closeFn())
		err = e.Err()
	}()
	w := fasta.NewWriter(out, width)
	for _, rec := range recs {
		seq := rec.seq
		if !codec.IsValid(seq) {
			return errors.E(errors.Invalid, "revcomp", srcPath, rec.name, "record contains symbols other than ACGTU")
		}
		rc, err := nucsimd.ReverseComplement(codec.Encode(seq), len(seq))
		if err != nil {
			return err
		}
		dec, err := codec.Decode(rc, len(seq))
		if err != nil {
			return err
		}
		if err := w.Write(rec.name, dec); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Printf("revcomp: wrote %d records to %s", len(recs), destPath)
	return nil
}
