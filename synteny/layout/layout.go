// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout lays the scaffolds of an assembly end to end to form a
// single global coordinate axis.
//
// Scaffolds are placed in the order they are first resolved, not in the
// order of the size table, so the axis is a pure function of the order
// in which an alignment stream references scaffolds. Each resolved
// scaffold occupies the half-open interval [offset, offset+length) and
// no two intervals overlap.
package layout

import (
	"fmt"

	"github.com/biogo/store/interval"

	"github.com/biogo/synteny/synteny/scaffold"
)

// UnknownScaffoldError is returned when a scaffold is resolved that is
// not present in the index's size table.
type UnknownScaffoldError struct {
	// Axis is the label of the index the
	// resolution was attempted on.
	Axis string
	Name string
}

func (e *UnknownScaffoldError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("layout: unknown scaffold %q", e.Name)
	}
	return fmt.Sprintf("layout: unknown %s scaffold %q", e.Axis, e.Name)
}

// OverlapError is returned when a scaffold would be placed over an
// interval already assigned to another scaffold.
type OverlapError struct {
	Axis     string
	Name     string
	Occupant string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("layout: %s scaffold %q overlaps %q", e.Axis, e.Name, e.Occupant)
}

// span is an interval.IntInterface for an assigned scaffold interval.
type span struct {
	name       string
	start, end int
	id         uintptr
}

func (s span) Overlap(b interval.IntRange) bool { return s.end > b.Start && s.start < b.End }
func (s span) ID() uintptr                      { return s.id }
func (s span) Range() interval.IntRange         { return interval.IntRange{Start: s.start, End: s.end} }

// Index is a cumulative offset index over the scaffolds of one assembly.
// An Index is not safe for concurrent use.
type Index struct {
	axis  string
	sizes scaffold.Sizes

	offsets map[string]int
	total   int

	spans interval.IntTree
}

// New returns an empty Index resolving scaffolds against sizes. The axis
// label is used in error reporting.
func New(axis string, sizes scaffold.Sizes) *Index {
	return &Index{
		axis:    axis,
		sizes:   sizes,
		offsets: make(map[string]int),
	}
}

// Resolve returns the global offset of the named scaffold, assigning the
// scaffold the current end of the axis if it has not been seen before.
// Resolving a scaffold absent from the size table returns an
// *UnknownScaffoldError, and a placement intersecting an existing
// interval returns an *OverlapError. In both cases the index is left
// unaltered.
func (x *Index) Resolve(name string) (int, error) {
	if off, ok := x.Offset(name); ok {
		return off, nil
	}
	sc, ok := x.sizes.Scaffold(name)
	if !ok {
		return 0, &UnknownScaffoldError{Axis: x.axis, Name: name}
	}

	off := x.total
	if sc.Len() > 0 {
		s := span{name: sc.Name(), start: off, end: off + sc.Len(), id: uintptr(len(x.offsets))}
		if hits := x.spans.Get(s); len(hits) != 0 {
			return 0, &OverlapError{Axis: x.axis, Name: name, Occupant: hits[0].(span).name}
		}
		err := x.spans.Insert(s, false)
		if err != nil {
			return 0, fmt.Errorf("layout: failed to place %q: %w", name, err)
		}
	}
	x.offsets[name] = off
	x.total += sc.Len()
	return off, nil
}

// Offset returns the offset of the named scaffold if it has been resolved.
func (x *Index) Offset(name string) (offset int, ok bool) {
	offset, ok = x.offsets[name]
	return offset, ok
}

// Total returns the length of the axis laid out so far.
func (x *Index) Total() int { return x.total }

// Len returns the number of scaffolds resolved.
func (x *Index) Len() int { return len(x.offsets) }
