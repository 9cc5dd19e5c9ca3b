package main

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/nucpack/nucsimd"
)

// check writes "name len valid" for every record of the FASTA or FASTQ file
// at path.
// It returns an error if any record is invalid.
func check(ctx context.Context, codec *nucsimd.Codec, path string, out io.Writer) error {
	recs, err := readRecords(ctx, path)
	if err != nil {
		return err
	}
	w := tsv.NewWriter(out)
	w.WriteString("name\tlen\tvalid")
	if err := w.EndLine(); err != nil {
		return err
	}
	nInvalid := 0
	for _, rec := range recs {
		valid := codec.IsValid(rec.seq)
		if !valid {
			nInvalid++
		}
		w.WriteString(rec.name)
		w.WriteInt64(int64(len(rec.seq)))
		w.WriteString(fmt.Sprint(valid))
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if nInvalid > 0 {
		return fmt.Errorf("%s: %d of %d records contain symbols other than ACGTU", path, nInvalid, len(recs))
	}
	return nil
}
