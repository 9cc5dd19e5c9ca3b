package main

import (
	"context"
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/nucpack/nucsimd"
)

// hamming writes "name1 name2 len distance" for every pair of valid records
// of equal length, in file order.
func hamming(ctx context.Context, codec *nucsimd.Codec, path string, out io.Writer) error {
	in, err := readRecords(ctx, path)
	if err != nil {
		return err
	}
	type record struct {
		name   string
		n      int
		packed []uint64
	}
	var recs []record
	for _, rec := range in {
		if !codec.IsValid(rec.seq) {
			log.Printf("hamming: %s: skipping record %s with invalid symbols", path, rec.name)
			continue
		}
		recs = append(recs, record{rec.name, len(rec.seq), codec.Encode(rec.seq)})
	}
	w := tsv.NewWriter(out)
	w.WriteString("name1\tname2\tlen\tdistance")
	if err := w.EndLine(); err != nil {
		return err
	}
	for i := range recs {
		for j := i + 1; j < len(recs); j++ {
			if recs[i].n != recs[j].n {
				continue
			}
			w.WriteString(recs[i].name)
			w.WriteString(recs[j].name)
			w.WriteInt64(int64(recs[i].n))
			w.WriteInt64(int64(codec.Hamming(recs[i].packed, recs[j].packed, recs[i].n)))
			if err := w.EndLine(); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
