// Package fasta reads and writes FASTA files.  Briefly, FASTA files consist
// of a number of named sequences that may be interrupted by newlines.  For
// example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// spaces immediately after '>'.  Any text appear after a space are ignored.
// For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	bufferInitSize = 1024 * 1024 * 300 // 300 MB

	// DefaultLineWidth is the number of bases per line written by Writer
	// when no width is given.
	DefaultLineWidth = 80
)

// Fasta represents FASTA-formatted data, consisting of a set of named
// sequences.
type Fasta interface {
	// Get returns a substring of the given sequence name at the given
	// coordinates, which are treated as a 0-based half-open interval
	// [start, end). Get is thread-safe.
	Get(seqName string, start, end uint64) (string, error)

	// Len returns the length of the given sequence.
	Len(seqName string) (uint64, error)

	// SeqNames returns the names of all sequences, in the order of appearance in
	// the FASTA file.
	SeqNames() []string

	// Seq returns the full sequence.  The caller must not modify the result.
	Seq(seqName string) ([]byte, error)
}

type fasta struct {
	seqs     map[string][]byte
	seqNames []string
}

// New creates a new Fasta that holds all the FASTA data from the given reader
// in memory.  Blank lines are skipped and trailing '\r' is dropped from every
// line.  Sequence data before the first header is an error, as are repeated
// sequence names.
func New(r io.Reader) (Fasta, error) {
	f := &fasta{seqs: make(map[string][]byte)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)
	var (
		seqName string
		seq     []byte
		inSeq   bool
	)
	flush := func() error {
		if !inSeq {
			return nil
		}
		if _, ok := f.seqs[seqName]; ok {
			return errors.Errorf("duplicate sequence name: %s", seqName)
		}
		f.seqs[seqName] = seq
		f.seqNames = append(f.seqNames, seqName)
		return nil
	}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			if err := flush(); err != nil {
				return nil, err
			}
			seqName = string(bytes.SplitN(line[1:], []byte(" "), 2)[0])
			seq = nil
			inSeq = true
			continue
		}
		if !inSeq {
			return nil, errors.Errorf("malformed FASTA file: sequence data before header at line %d", lineNum)
		}
		seq = append(seq, line...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return f, nil
}

// Get implements Fasta.Get().
func (f *fasta) Get(seqName string, start, end uint64) (string, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return "", errors.Errorf("sequence not found: %s", seqName)
	}
	if end <= start {
		return "", errors.Errorf("start must be less than end")
	}
	if end > uint64(len(s)) {
		return "", errors.Errorf("invalid query range %d - %d for sequence %s with length %d",
			start, end, seqName, len(s))
	}
	return string(s[start:end]), nil
}

// Len implements Fasta.Len().
func (f *fasta) Len(seqName string) (uint64, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return 0, errors.Errorf("sequence not found: %s", seqName)
	}
	return uint64(len(s)), nil
}

// Seq implements Fasta.Seq().
func (f *fasta) Seq(seqName string) ([]byte, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return nil, errors.Errorf("sequence not found: %s", seqName)
	}
	return s, nil
}

// SeqNames implements Fasta.SeqNames().
func (f *fasta) SeqNames() []string {
	return f.seqNames
}

// Writer writes FASTA records with a fixed number of bases per line.
type Writer struct {
	w     *bufio.Writer
	width int
}

// NewWriter returns a Writer that wraps lines at width bases, or at
// DefaultLineWidth if width <= 0.
func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = DefaultLineWidth
	}
	return &Writer{w: bufio.NewWriter(w), width: width}
}

// Write appends one record.
func (w *Writer) Write(seqName string, seq []byte) error {
	w.w.WriteByte('>')
	w.w.WriteString(seqName)
	if err := w.w.WriteByte('\n'); err != nil {
		return errors.Wrapf(err, "write %s", seqName)
	}
	for len(seq) > 0 {
		n := w.width
		if n > len(seq) {
			n = len(seq)
		}
		if _, err := w.w.Write(seq[:n]); err != nil {
			return errors.Wrapf(err, "write %s", seqName)
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return errors.Wrapf(err, "write %s", seqName)
		}
		seq = seq[n:]
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
