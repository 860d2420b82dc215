// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paf provides reading of pairwise mapping format alignment records.
package paf

import (
	"io"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/seq"

	"github.com/biogo/synteny/synteny/scaffold"
	"github.com/biogo/synteny/synteny/tsv"
)

// Columns is the number of mandatory PAF columns.
const Columns = 12

// Record is a single PAF alignment line.
type Record struct {
	QName          string
	QLen           int
	QStart, QEnd   int
	StrandChar     byte
	TName          string
	TLen           int
	TStart, TEnd   int
	Matches        int
	AlignmentLen   int
	MappingQuality int

	// Tags holds any optional columns following the
	// mandatory fields, unparsed.
	Tags []string
}

// Strand returns the alignment orientation. Strand characters other
// than '+' and '-' are reported as seq.None.
func (r *Record) Strand() seq.Strand {
	switch r.StrandChar {
	case '+':
		return seq.Plus
	case '-':
		return seq.Minus
	}
	return seq.None
}

// Query returns the aligned segment of the query scaffold.
func (r *Record) Query() Segment {
	return Segment{
		Scaffold: scaffold.Scaffold{ID: r.QName, Length: r.QLen},
		From:     r.QStart,
		To:       r.QEnd,
	}
}

// Target returns the aligned segment of the target scaffold.
func (r *Record) Target() Segment {
	return Segment{
		Scaffold: scaffold.Scaffold{ID: r.TName, Length: r.TLen},
		From:     r.TStart,
		To:       r.TEnd,
	}
}

// Identity returns the fraction of alignment columns that are matches.
func (r *Record) Identity() float64 {
	if r.AlignmentLen == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.AlignmentLen)
}

// Segment is a feat.Feature describing the aligned part of a scaffold.
type Segment struct {
	Scaffold scaffold.Scaffold
	From, To int
}

func (s Segment) Start() int             { return s.From }
func (s Segment) End() int               { return s.To }
func (s Segment) Len() int               { return s.To - s.From }
func (s Segment) Name() string           { return s.Scaffold.ID }
func (s Segment) Description() string    { return "aligned segment" }
func (s Segment) Location() feat.Feature { return s.Scaffold }

// Reader reads PAF records.
type Reader struct {
	r *tsv.Reader
}

// NewReader returns a Reader reading from r. The path is used only for
// error reporting.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{r: tsv.NewReader(r, path)}
}

// Read returns the next record. At the end of input Read returns io.EOF.
func (r *Reader) Read() (*Record, error) {
	row, err := r.r.Read()
	if err != nil {
		return nil, err
	}
	if len(row) < Columns {
		return nil, r.r.Errorf(0, "expected at least %d columns, found %d", Columns, len(row))
	}
	if len(row[4]) != 1 {
		return nil, r.r.Errorf(5, "invalid strand %q", row[4])
	}

	rec := Record{
		QName:      row[0],
		StrandChar: row[4][0],
		TName:      row[5],
	}
	for _, f := range []struct {
		col int
		dst *int
	}{
		{2, &rec.QLen},
		{3, &rec.QStart},
		{4, &rec.QEnd},
		{7, &rec.TLen},
		{8, &rec.TStart},
		{9, &rec.TEnd},
		{10, &rec.Matches},
		{11, &rec.AlignmentLen},
		{12, &rec.MappingQuality},
	} {
		*f.dst, err = r.r.Int(row, f.col)
		if err != nil {
			return nil, err
		}
	}
	if len(row) > Columns {
		rec.Tags = append([]string(nil), row[Columns:]...)
	}
	return &rec, nil
}

// Scanner wraps a Reader to provide a convenient loop interface for reading
// PAF records. Successive calls to the Next method will step through the
// records of the provided Reader. Iteration stops unrecoverably at the end
// of input or the first error.
type Scanner struct {
	r   *Reader
	rec *Record
	err error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r *Reader) *Scanner { return &Scanner{r: r} }

// Next advances the Scanner past the next record, which will then be
// available through the Record method. It returns false when the scan
// stops, either by reaching the end of the input or an error. After Next
// returns false, the Error method will return any error that occurred
// during scanning, except that if it was io.EOF, Error will return nil.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.rec, s.err = s.r.Read()
	return s.err == nil
}

// Error returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Error() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Record returns the most recent record read by a call to Next.
func (s *Scanner) Record() *Record { return s.rec }
