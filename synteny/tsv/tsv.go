// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsv provides a headerless tab-delimited record reader with
// line-annotated errors.
package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// IOError is returned when a source or sink cannot be read or written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("tsv: %v", e.Err)
	}
	return fmt.Sprintf("tsv: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError is returned when a row is malformed. Line and Field are
// 1-based; a zero Field refers to the row as a whole.
type ParseError struct {
	Path  string
	Line  int
	Field int
	Err   error
}

func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Field == 0 {
		return fmt.Sprintf("tsv: %s:%d: %v", path, e.Line, e.Err)
	}
	return fmt.Sprintf("tsv: %s:%d: column %d: %v", path, e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Open opens the named file for reading, reporting failure as an IOError.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return f, nil
}

// Reader reads tab-delimited rows. Rows may have differing column counts
// and blank lines are skipped.
type Reader struct {
	path string
	r    *csv.Reader
	line int
}

// NewReader returns a Reader reading from r. The path is used only for
// error reporting.
func NewReader(r io.Reader, path string) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{path: path, r: cr}
}

// Read returns the next row. At the end of input Read returns io.EOF.
func (r *Reader) Read() ([]string, error) {
	row, err := r.r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			r.line = perr.Line
			return nil, &ParseError{Path: r.path, Line: perr.Line, Err: perr.Err}
		}
		return nil, &IOError{Path: r.path, Err: err}
	}
	r.line, _ = r.r.FieldPos(0)
	return row, nil
}

// Line returns the line number of the most recently read row.
func (r *Reader) Line() int { return r.line }

// Errorf returns a ParseError for the given 1-based column of the most
// recently read row.
func (r *Reader) Errorf(field int, format string, args ...interface{}) error {
	return &ParseError{Path: r.path, Line: r.line, Field: field, Err: fmt.Errorf(format, args...)}
}

// Int parses the 1-based column field of row as a decimal integer.
func (r *Reader) Int(row []string, field int) (int, error) {
	if field < 1 || field > len(row) {
		return 0, r.Errorf(0, "missing column %d", field)
	}
	v, err := strconv.Atoi(row[field-1])
	if err != nil {
		return 0, r.Errorf(field, "invalid integer %q", row[field-1])
	}
	return v, nil
}
