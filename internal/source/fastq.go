// Package source adapts shenwei356/bio's FASTQ reader into the qc
// package's minimal record contract, matching how the bundled CLI reads
// sequence files for its own sorting commands.
package source

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"

	"github.com/vmikk/seqqc/internal/qc"
)

// FastqSource streams qc.Records from a single FASTQ file (optionally
// compressed, or "-" for stdin), delegating tokenization to fastx.Reader
// exactly as the bundled CLI does.
type FastqSource struct {
	path   string
	reader *fastx.Reader
}

// Open returns a FastqSource reading path. Malformed records (length
// mismatch, missing line) surface as fatal errors from Next, per the
// record source contract.
func Open(path string) (*FastqSource, error) {
	reader, err := fastx.NewReader(seq.DNAredundant, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &FastqSource{path: path, reader: reader}, nil
}

// Next returns the next record, or io.EOF once the file is exhausted.
func (s *FastqSource) Next() (*qc.Record, error) {
	rec, err := s.reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(rec.Seq.Seq) != len(rec.Seq.Qual) {
		return nil, fmt.Errorf("%s: record %q has mismatched sequence/quality length", s.path, rec.ID)
	}
	return &qc.Record{
		ID:       string(rec.ID),
		Sequence: rec.Seq.Seq,
		Quality:  rec.Seq.Qual,
	}, nil
}

// Close releases the underlying file handle.
func (s *FastqSource) Close() error {
	s.reader.Close()
	return nil
}
