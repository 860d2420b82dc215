// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern provides the decorative XOR-modulo tiling used for
// panel backgrounds.
package pattern

import "github.com/biogo/synteny/synteny/raster"

// Modulus is the period of the tiling residues.
const Modulus = 19

// Color returns the colour of the tiling at (x, y) and whether the point
// is coloured at all. The colour is determined by the truncated remainder
// of x XOR y divided by Modulus, so negative coordinates yield negative
// residues, all of which other than zero are uncoloured.
func Color(x, y int) (raster.Color, bool) {
	switch (x ^ y) % Modulus {
	case 0, 10:
		return raster.White, true
	case 3:
		return raster.Yellow, true
	case 1, 11:
		return raster.Blue, true
	case 4, 5:
		return raster.Red, true
	}
	return 0, false
}

// Paint draws the tiling over every point of the plot's domain, leaving
// uncoloured points untouched.
func Paint(p *raster.Plot) {
	p.Each(func(x, y int) {
		if c, ok := Color(x, y); ok {
			p.SetPixel(x, y, c)
		}
	})
}
