package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/nucpack/nucsimd"
)

type recordStats struct {
	name     string
	length   int
	gc       int
	popcount int
	hash     uint64
	valid    bool
}

// packedHash hashes the little-endian bytes of packed.  Encode leaves the
// padding zero, so the hash depends only on the symbols, not on their case
// or on T/U.
func packedHash(packed []uint64) uint64 {
	h := seahash.New()
	var buf [8]byte
	for _, w := range packed {
		binary.LittleEndian.PutUint64(buf[:], w)
		h.Write(buf[:]) // nolint: errcheck
	}
	return h.Sum64()
}

func computeStats(codec *nucsimd.Codec, name string, seq []byte) recordStats {
	st := recordStats{name: name, length: len(seq)}
	if st.valid = codec.IsValid(seq); !st.valid {
		return st
	}
	packed := codec.Encode(seq)
	st.gc = nucsimd.GCCount(packed, len(seq))
	st.popcount = codec.Popcount(packed, 2*len(seq))
	st.hash = packedHash(packed)
	return st
}

// stats writes "name len gc gc_frac popcount seahash" for every valid record
// of the FASTA or FASTQ file at path.  Records are processed in parallel but printed
// in file order.
func stats(ctx context.Context, codec *nucsimd.Codec, path string, parallelism int, out io.Writer) error {
	recs, err := readRecords(ctx, path)
	if err != nil {
		return err
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	results := make([]recordStats, len(recs))
	if parallelism > len(recs) {
		parallelism = len(recs)
	}
	err = traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(recs)) / parallelism
		endIdx := ((jobIdx + 1) * len(recs)) / parallelism
		for i := startIdx; i < endIdx; i++ {
			results[i] = computeStats(codec, recs[i].name, recs[i].seq)
		}
		return nil
	})
	if err != nil {
		return err
	}
	w := tsv.NewWriter(out)
	w.WriteString("name\tlen\tgc\tgc_frac\tpopcount\tseahash")
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, st := range results {
		if !st.valid {
			log.Printf("stats: %s: skipping record %s with invalid symbols", path, st.name)
			continue
		}
		frac := 0.0
		if st.length > 0 {
			frac = float64(st.gc) / float64(st.length)
		}
		w.WriteString(st.name)
		w.WriteInt64(int64(st.length))
		w.WriteInt64(int64(st.gc))
		w.WriteString(strconv.FormatFloat(frac, 'f', 4, 64))
		w.WriteInt64(int64(st.popcount))
		w.WriteString(fmt.Sprintf("%016x", st.hash))
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
