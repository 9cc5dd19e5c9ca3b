// Package fastq reads FASTQ files.  Each read spans four lines: an ID line
// starting with '@', the bases, a separator line starting with '+', and one
// quality byte per base.
package fastq

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// A Read is one FASTQ record.  Seq and Qual alias the scanner's buffers and
// are only valid until the next call to Scan; copy them to keep them.
type Read struct {
	// ID is the ID line without the leading '@'.
	ID   string
	Seq  []byte
	Qual []byte
}

// Name returns the ID up to the first space.
func (r *Read) Name() string {
	if i := strings.IndexByte(r.ID, ' '); i >= 0 {
		return r.ID[:i]
	}
	return r.ID
}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTQ read
// data. The Scan method returns the next read, returning a boolean
// indicating whether the read succeeded. Scanners are not
// threadsafe.
//
// Scanner requires ID lines to begin with "@", line 3 to begin with "+",
// and the sequence and quality lines to have equal length.  It does not
// check the sequence alphabet.
type Scanner struct {
	b   *bufio.Scanner
	err error
	// seq holds a copy of the sequence line while the quality line is read.
	seq []byte
}

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{b: bufio.NewScanner(r)}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	if !f.b.Scan() {
		if f.err = f.b.Err(); f.err == nil {
			f.err = errEOF
		}
		return false
	}
	id := f.b.Bytes()
	if len(id) == 0 || id[0] != '@' {
		f.err = ErrInvalid
		return false
	}
	read.ID = string(id[1:])
	if !f.scan() {
		return false
	}
	f.seq = append(f.seq[:0], f.b.Bytes()...)
	if !f.scan() {
		return false
	}
	if sep := f.b.Bytes(); len(sep) == 0 || sep[0] != '+' {
		f.err = ErrInvalid
		return false
	}
	if !f.scan() {
		return false
	}
	qual := f.b.Bytes()
	if len(qual) != len(f.seq) {
		f.err = ErrInvalid
		return false
	}
	read.Seq = f.seq
	read.Qual = qual
	return true
}

func (f *Scanner) scan() bool {
	ok := f.b.Scan()
	if !ok {
		if f.err = f.b.Err(); f.err == nil {
			f.err = ErrShort
		}
	}
	return ok
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}
