// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"image/color"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/synteny/synteny/raster"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestColor(c *check.C) {
	for _, t := range []struct {
		x, y int
		col  raster.Color
		ok   bool
	}{
		{x: 0, y: 0, col: raster.White, ok: true},  // 0
		{x: 10, y: 0, col: raster.White, ok: true}, // 10
		{x: 3, y: 0, col: raster.Yellow, ok: true}, // 3
		{x: 1, y: 0, col: raster.Blue, ok: true},   // 1
		{x: 11, y: 0, col: raster.Blue, ok: true},  // 11
		{x: 4, y: 0, col: raster.Red, ok: true},    // 4
		{x: 5, y: 0, col: raster.Red, ok: true},    // 5
		{x: 2, y: 0},                               // 2
		{x: 18, y: 0},                              // 18
		{x: 19, y: 0, col: raster.White, ok: true}, // 0
		{x: 6, y: 1},  // 6^1 = 7
		{x: -1, y: 0}, // -1
		{x: -1, y: -1, col: raster.White, ok: true}, // -1^-1 = 0
		{x: -19, y: 0, col: raster.White, ok: true}, // -19 % 19 = 0
		{x: -4, y: 0}, // -4
		{x: -5, y: -1, col: raster.Red, ok: true},    // -5^-1 = 4
		{x: -6, y: -1, col: raster.Red, ok: true},    // -6^-1 = 5
		{x: -190, y: -438},                           // 264 % 19 = 17
		{x: 308, y: 270, col: raster.Blue, ok: true}, // 58 % 19 = 1
		{x: -100, y: 7},                              // -101 % 19 = -6
	} {
		col, ok := Color(t.x, t.y)
		c.Check(ok, check.Equals, t.ok, check.Commentf("(%d,%d)", t.x, t.y))
		if t.ok {
			c.Check(col, check.Equals, t.col, check.Commentf("(%d,%d)", t.x, t.y))
		}
	}
}

func (s *S) TestDeterministic(c *check.C) {
	for x := -40; x < 40; x++ {
		for y := -40; y < 40; y++ {
			col, ok := Color(x, y)
			for i := 0; i < 3; i++ {
				again, againOK := Color(x, y)
				c.Check(again, check.Equals, col)
				c.Check(againOK, check.Equals, ok)
			}
			// Only the residue matters.
			r := (x ^ y) % Modulus
			other, otherOK := Color(r, 0)
			if r >= 0 {
				c.Check(other, check.Equals, col)
				c.Check(otherOK, check.Equals, ok)
			} else {
				c.Check(ok, check.Equals, false)
			}
		}
	}
}

func (s *S) TestPaint(c *check.C) {
	cv := raster.NewCanvas(38, 19)
	cv.Fill(raster.Background)
	p := cv.Area().WithDomain(raster.Range{Min: -38, Max: 0}, raster.Range{Min: 0, Max: 19})
	Paint(p)

	for x := -38; x < 0; x++ {
		for y := 0; y < 19; y++ {
			pt, ok := p.Map(x, y)
			c.Assert(ok, check.Equals, true)
			got := color.RGBAModel.Convert(cv.Image().At(pt.X, pt.Y))
			want := raster.Background.RGBA8()
			if col, ok := Color(x, y); ok {
				want = col.RGBA8()
			}
			c.Check(got, check.Equals, want, check.Commentf("(%d,%d)", x, y))
		}
	}
}
