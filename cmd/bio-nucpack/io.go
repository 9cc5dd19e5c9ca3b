package main

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/nucpack/encoding/fasta"
	"github.com/grailbio/nucpack/encoding/fastq"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// compression returns the compressed-file suffix of path: ".gz", ".zst",
// ".lz4", or "" for plain files.
func compression(path string) string {
	for _, ext := range []string{".gz", ".zst", ".lz4"} {
		if strings.HasSuffix(path, ext) {
			return ext
		}
	}
	return ""
}

// openInput opens path for reading.  Paths ending in ".gz", ".zst" or ".lz4"
// are decompressed.  The caller must call the returned close function.
func openInput(ctx context.Context, path string) (io.Reader, func() error, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	r := in.Reader(ctx)
	closeIn := func() error { return in.Close(ctx) }
	switch compression(path) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			_ = closeIn()
			return nil, nil, errors.E(err, "gunzip", path)
		}
		return gz, func() error {
			e := errors.Once{}
			e.Set(gz.Close())
			e.Set(closeIn())
			return e.Err()
		}, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			_ = closeIn()
			return nil, nil, errors.E(err, "zstd", path)
		}
		return zr, func() error {
			zr.Close()
			return closeIn()
		}, nil
	case ".lz4":
		return lz4.NewReader(r), closeIn, nil
	}
	return r, closeIn, nil
}

// createOutput creates path for writing, compressing by suffix as in
// openInput.  The caller must call the returned close function, which
// reports any write error.
func createOutput(ctx context.Context, path string) (io.Writer, func() error, error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	w := out.Writer(ctx)
	closeOut := func() error { return out.Close(ctx) }
	var cw io.WriteCloser
	switch compression(path) {
	case ".gz":
		cw = gzip.NewWriter(w)
	case ".zst":
		if cw, err = zstd.NewWriter(w); err != nil {
			_ = closeOut()
			return nil, nil, errors.E(err, "zstd", path)
		}
	case ".lz4":
		cw = lz4.NewWriter(w)
	default:
		return w, closeOut, nil
	}
	return cw, func() error {
		e := errors.Once{}
		e.Set(cw.Close())
		e.Set(closeOut())
		return e.Err()
	}, nil
}

type seqRecord struct {
	name string
	seq  []byte
}

// isFASTQ reports whether path names a FASTQ file, judging by its extension.
func isFASTQ(path string) bool {
	path = strings.TrimSuffix(path, compression(path))
	return strings.HasSuffix(path, ".fq") || strings.HasSuffix(path, ".fastq")
}

// readRecords loads every sequence of the FASTA or FASTQ file at path, in
// file order.  FASTQ reads are named by their ID up to the first space.
func readRecords(ctx context.Context, path string) ([]seqRecord, error) {
	r, closeFn, err := openInput(ctx, path)
	if err != nil {
		return nil, err
	}
	var recs []seqRecord
	e := errors.Once{}
	if isFASTQ(path) {
		sc := fastq.NewScanner(r)
		var read fastq.Read
		for sc.Scan(&read) {
			recs = append(recs, seqRecord{read.Name(), append([]byte(nil), read.Seq...)})
		}
		e.Set(sc.Err())
	} else if fa, err := fasta.New(r); err != nil {
		e.Set(err)
	} else {
		for _, name := range fa.SeqNames() {
			seq, err := fa.Seq(name)
			e.Set(err)
			recs = append(recs, seqRecord{name, seq})
		}
	}
	e.Set(closeFn())
	if err := e.Err(); err != nil {
		return nil, errors.E(err, "read", path)
	}
	return recs, nil
}
