// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project projects pairwise alignments into the joint coordinate
// space of two assemblies and draws them as strand-coloured diagonal runs.
package project

import (
	"fmt"
	"math"

	"github.com/biogo/biogo/seq"
	"gonum.org/v1/gonum/stat"

	"github.com/biogo/synteny/synteny/layout"
	"github.com/biogo/synteny/synteny/paf"
	"github.com/biogo/synteny/synteny/raster"
)

const (
	// DefaultDivisor is the number of bases represented by one pixel.
	DefaultDivisor = 100

	// DefaultMinLength is the shortest alignment drawn.
	DefaultMinLength = 1000
)

// StrandColor returns the colour used to draw alignments on strand s.
func StrandColor(s seq.Strand) raster.Color {
	switch s {
	case seq.Plus:
		return raster.Red
	case seq.Minus:
		return raster.Blue
	}
	return raster.Yellow
}

// Projector draws alignments between a target assembly, laid out along x,
// and a query assembly, laid out along y.
type Projector struct {
	Target *layout.Index
	Query  *layout.Index

	// Divisor is the number of bases per
	// coordinate of the sink.
	Divisor int

	// MinLength is the shortest alignment
	// length that will be drawn.
	MinLength int
}

// New returns a Projector using the default divisor and minimum length.
func New(target, query *layout.Index) *Projector {
	return &Projector{
		Target:    target,
		Query:     query,
		Divisor:   DefaultDivisor,
		MinLength: DefaultMinLength,
	}
}

// Project draws rec to sink. It returns the number of pixel writes made,
// which is zero for alignments shorter than p.MinLength. Each base of the
// alignment is treated as matching one base of the other assembly, so
// gaps are not represented. Failure to resolve either scaffold is
// returned as a *layout.UnknownScaffoldError.
func (p *Projector) Project(rec *paf.Record, sink raster.Sink) (writes int, err error) {
	if p.Divisor <= 0 {
		return 0, fmt.Errorf("project: invalid divisor %d", p.Divisor)
	}
	if rec.AlignmentLen < p.MinLength {
		return 0, nil
	}
	t, q := rec.Target(), rec.Query()
	tOff, err := p.Target.Resolve(t.Location().Name())
	if err != nil {
		return 0, err
	}
	qOff, err := p.Query.Resolve(q.Location().Name())
	if err != nil {
		return 0, err
	}

	col := StrandColor(rec.Strand())
	tBase := tOff + t.Start()
	qBase := qOff + q.Start()
	lastX, lastY := -1, -1
	for i := 0; i < rec.AlignmentLen; i++ {
		x := (tBase + i) / p.Divisor
		y := (qBase + i) / p.Divisor
		if i != 0 && x == lastX && y == lastY {
			continue
		}
		sink.SetPixel(x, y, col)
		writes++
		lastX, lastY = x, y
	}
	return writes, nil
}

// Summary describes the result of projecting an alignment stream.
type Summary struct {
	// Records is the number of records read.
	Records int

	// Skipped is the number of records shorter
	// than the minimum length.
	Skipped int

	// Plus, Minus and Other are the numbers of
	// records drawn for each strand class.
	Plus, Minus, Other int

	// Writes is the total number of pixel writes.
	Writes int

	// sumIdentity and sumLength are the length weighted identity
	// sum and the total alignment length of the drawn records.
	sumIdentity, sumLength float64

	// hist holds the alignment length drawn
	// at each identity, in steps of 1/identitySteps.
	hist [identitySteps + 1]float64
}

const identitySteps = 1000

// Drawn returns the number of records drawn.
func (s *Summary) Drawn() int { return s.Plus + s.Minus + s.Other }

// MeanIdentity returns the alignment length weighted mean identity of the
// drawn records, or zero if none were drawn.
func (s *Summary) MeanIdentity() float64 {
	if s.sumLength == 0 {
		return 0
	}
	return s.sumIdentity / s.sumLength
}

// MedianIdentity returns the alignment length weighted median identity of
// the drawn records to the nearest 0.001, or zero if none were drawn.
func (s *Summary) MedianIdentity() float64 {
	var x, w []float64
	for i, n := range s.hist {
		if n == 0 {
			continue
		}
		x = append(x, float64(i)/identitySteps)
		w = append(w, n)
	}
	if len(x) == 0 {
		return 0
	}
	return stat.Quantile(0.5, stat.Empirical, x, w)
}

func (s *Summary) add(rec *paf.Record) {
	switch rec.Strand() {
	case seq.Plus:
		s.Plus++
	case seq.Minus:
		s.Minus++
	default:
		s.Other++
	}
	id, w := rec.Identity(), float64(rec.AlignmentLen)
	s.sumIdentity += w * id
	s.sumLength += w
	s.hist[identityStep(id)] += w
}

// identityStep returns the histogram step for identity id, clamped to [0, 1].
func identityStep(id float64) int {
	switch {
	case !(id > 0):
		return 0
	case id >= 1:
		return identitySteps
	}
	return int(math.Round(id * identitySteps))
}

// ProjectAll draws every record read by sc to sink. Projection stops at
// the first read or resolution error, which is returned with the summary
// of the records handled before it.
func (p *Projector) ProjectAll(sc *paf.Scanner, sink raster.Sink) (Summary, error) {
	var sum Summary
	for sc.Next() {
		rec := sc.Record()
		sum.Records++
		n, err := p.Project(rec, sink)
		if err != nil {
			return sum, fmt.Errorf("project: record %d: %w", sum.Records, err)
		}
		if rec.AlignmentLen < p.MinLength {
			sum.Skipped++
			continue
		}
		sum.Writes += n
		sum.add(rec)
	}
	return sum, sc.Error()
}
