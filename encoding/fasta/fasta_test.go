package fasta_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/grailbio/nucpack/encoding/fasta"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

var fastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "ACGT\r\n" + "\n" + "ACGT\n"

func TestGet(t *testing.T) {
	tests := []struct {
		seq   string
		start uint64
		end   uint64
		want  string
		err   bool
	}{
		{"seq1", 1, 2, "C", false},
		{"seq1", 1, 6, "CGTAC", false},
		{"seq1", 0, 12, "ACGTACGTACGT", false},
		{"seq1", 10, 12, "GT", false},
		{"seq2", 0, 8, "ACGTACGT", false},
		{"seq2", 2, 5, "GTA", false},
		{"seq0", 0, 1, "", true},
		{"seq1", 10, 13, "", true},
		{"seq1", 4, 3, "", true},
	}
	fa, err := fasta.New(strings.NewReader(fastaData))
	assert.NoError(t, err)
	for _, tt := range tests {
		got, err := fa.Get(tt.seq, tt.start, tt.end)
		if (err != nil) != tt.err {
			t.Errorf("%s[%d,%d): unexpected error %v", tt.seq, tt.start, tt.end, err)
		}
		if got != tt.want {
			t.Errorf("unexpected sequence: want %s, got %s", tt.want, got)
		}
	}
}

func TestLenAndNames(t *testing.T) {
	fa, err := fasta.New(strings.NewReader(fastaData))
	assert.NoError(t, err)
	expect.EQ(t, fa.SeqNames(), []string{"seq1", "seq2"})
	n, err := fa.Len("seq1")
	expect.NoError(t, err)
	expect.EQ(t, n, uint64(12))
	n, err = fa.Len("seq2")
	expect.NoError(t, err)
	expect.EQ(t, n, uint64(8))
	_, err = fa.Len("seq3")
	expect.NotNil(t, err)

	seq, err := fa.Seq("seq2")
	expect.NoError(t, err)
	expect.EQ(t, string(seq), "ACGTACGT")
	_, err = fa.Seq("seq3")
	expect.NotNil(t, err)
}

func TestMalformed(t *testing.T) {
	for _, data := range []string{
		"ACGT\n>seq1\nACGT\n",
		">seq1\nACGT\n>seq1\nGG\n",
	} {
		_, err := fasta.New(strings.NewReader(data))
		expect.NotNil(t, err, data)
	}
	fa, err := fasta.New(strings.NewReader(""))
	assert.NoError(t, err)
	expect.EQ(t, len(fa.SeqNames()), 0)

	// A header with no sequence lines is an empty record.
	fa, err = fasta.New(strings.NewReader(">empty\n>seq\nA\n"))
	assert.NoError(t, err)
	n, err := fa.Len("empty")
	expect.NoError(t, err)
	expect.EQ(t, n, uint64(0))
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf, 5)
	assert.NoError(t, w.Write("seq1", []byte("ACGTACGTACGT")))
	assert.NoError(t, w.Write("seq2", []byte("ACGTA")))
	assert.NoError(t, w.Write("empty", nil))
	assert.NoError(t, w.Flush())
	expect.EQ(t, buf.String(), ">seq1\nACGTA\nCGTAC\nGT\n>seq2\nACGTA\n>empty\n")

	fa, err := fasta.New(&buf)
	assert.NoError(t, err)
	expect.EQ(t, fa.SeqNames(), []string{"seq1", "seq2", "empty"})
	got, err := fa.Get("seq1", 0, 12)
	expect.NoError(t, err)
	expect.EQ(t, got, "ACGTACGTACGT")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, fmt.Errorf("disk full") }

func TestWriterError(t *testing.T) {
	w := fasta.NewWriter(failWriter{}, 8192)
	err := w.Write("big", bytes.Repeat([]byte("A"), 8192))
	expect.NotNil(t, err)
	expect.HasSubstr(t, err.Error(), "write big")
	expect.HasSubstr(t, err.Error(), "disk full")
	expect.NotNil(t, w.Flush())
}
