// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/biogo/feat"
	"gopkg.in/check.v1"

	"github.com/biogo/synteny/synteny/tsv"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestRead(c *check.C) {
	for i, t := range []struct {
		in    string
		sizes Sizes
		err   string
	}{
		{
			in:    "chr1\t500\nchr2\t300\n",
			sizes: Sizes{"chr1": 500, "chr2": 300},
		},
		{
			in:    "",
			sizes: Sizes{},
		},
		{
			// Later duplicates replace earlier entries.
			in:    "chr1\t500\nchr1\t20\n",
			sizes: Sizes{"chr1": 20},
		},
		{
			in:    "empty\t0\n",
			sizes: Sizes{"empty": 0},
		},
		{
			in:  "chr1\t500\nchr2\n",
			err: `tsv: sizes.tsv:2: expected 2 columns, found 1`,
		},
		{
			in:  "chr1\t500\t7\n",
			err: `tsv: sizes.tsv:1: expected 2 columns, found 3`,
		},
		{
			in:  "chr1\tlong\n",
			err: `tsv: sizes.tsv:1: column 2: invalid integer "long"`,
		},
		{
			in:  "chr1\t-5\n",
			err: `tsv: sizes.tsv:1: column 2: negative length -5`,
		},
	} {
		sizes, err := Read(strings.NewReader(t.in), "sizes.tsv")
		if t.err != "" {
			c.Check(err, check.ErrorMatches, t.err, check.Commentf("Test %d", i))
			c.Check(err, check.FitsTypeOf, &tsv.ParseError{}, check.Commentf("Test %d", i))
			continue
		}
		c.Check(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(sizes, check.DeepEquals, t.sizes, check.Commentf("Test %d", i))
	}
}

func (s *S) TestLoad(c *check.C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "sizes.tsv")
	err := os.WriteFile(path, []byte("chrB\t30\nchrA\t12\n"), 0o644)
	c.Assert(err, check.IsNil)

	sizes, err := Load(path)
	c.Assert(err, check.IsNil)
	c.Check(sizes.Total(), check.Equals, 42)
	c.Check(sizes, check.DeepEquals, Sizes{"chrA": 12, "chrB": 30})

	_, err = Load(filepath.Join(dir, "absent.tsv"))
	var ioerr *tsv.IOError
	c.Check(errors.As(err, &ioerr), check.Equals, true)
}

func (s *S) TestScaffold(c *check.C) {
	sizes := Sizes{"chr1": 500}

	sc, ok := sizes.Scaffold("chr1")
	c.Assert(ok, check.Equals, true)
	var f feat.Feature = sc
	c.Check(f.Name(), check.Equals, "chr1")
	c.Check(f.Start(), check.Equals, 0)
	c.Check(f.End(), check.Equals, 500)
	c.Check(f.Len(), check.Equals, 500)
	c.Check(f.Location(), check.IsNil)

	_, ok = sizes.Scaffold("chr2")
	c.Check(ok, check.Equals, false)
}
