// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffold loads per-assembly scaffold length tables.
package scaffold

import (
	"io"

	"github.com/biogo/biogo/feat"

	"github.com/biogo/synteny/synteny/tsv"
)

// A Scaffold is a feat.Feature marking a whole scaffold of an assembly.
type Scaffold struct {
	ID     string
	Length int
}

func (s Scaffold) Start() int             { return 0 }
func (s Scaffold) End() int               { return s.Length }
func (s Scaffold) Len() int               { return s.Length }
func (s Scaffold) Name() string           { return s.ID }
func (s Scaffold) Description() string    { return "scaffold" }
func (s Scaffold) Location() feat.Feature { return nil }

// Sizes maps scaffold names to their lengths.
type Sizes map[string]int

// Load reads a scaffold length table from the named file.
func Load(path string) (Sizes, error) {
	f, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read reads a two column, headerless, tab-separated table of scaffold
// names and lengths from r. If a name appears more than once, the last
// length read is retained.
func Read(r io.Reader, path string) (Sizes, error) {
	tr := tsv.NewReader(r, path)
	sizes := make(Sizes)
	for {
		row, err := tr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(row) != 2 {
			return nil, tr.Errorf(0, "expected 2 columns, found %d", len(row))
		}
		n, err := tr.Int(row, 2)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, tr.Errorf(2, "negative length %d", n)
		}
		sizes[row[0]] = n
	}
	return sizes, nil
}

// Scaffold returns the named scaffold and whether it is present.
func (s Sizes) Scaffold(name string) (Scaffold, bool) {
	n, ok := s[name]
	return Scaffold{ID: name, Length: n}, ok
}

// Total returns the sum of all scaffold lengths.
func (s Sizes) Total() int {
	var t int
	for _, n := range s {
		t += n
	}
	return t
}
