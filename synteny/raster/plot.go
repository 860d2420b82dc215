// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import "image"

// Range is the half-open integer interval [Min, Max).
type Range struct {
	Min, Max int
}

// Len returns the number of integers in the range.
func (r Range) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min
}

// Plot maps integer data coordinates onto an Area. The x axis increases
// to the right and the y axis increases upwards, so y.Min falls on the
// bottom pixel row of the area and y.Max-1 on the top row.
type Plot struct {
	area Area
	x, y Range
}

// XRange returns the plot's x domain.
func (p *Plot) XRange() Range { return p.x }

// YRange returns the plot's y domain.
func (p *Plot) YRange() Range { return p.y }

// Map returns the absolute canvas pixel for the data point (x, y) and
// whether that pixel is inside the plot's area.
func (p *Plot) Map(x, y int) (image.Point, bool) {
	w, h := p.area.Width(), p.area.Height()
	col := scale(x, p.x, w)
	row := h - 1 - scale(y, p.y, h)
	pt := p.area.rect.Min.Add(image.Point{X: col, Y: row})
	return pt, pt.In(p.area.rect)
}

// scale maps v in r linearly onto [0, n), rounding towards negative
// infinity. An empty range maps every value to 0.
func scale(v int, r Range, n int) int {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	return floorDiv((v-r.Min)*n, span)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Fill sets every pixel of the plot's area to c.
func (p *Plot) Fill(c Color) { p.area.Fill(c) }

// SetPixel sets the pixel at the data point (x, y) to c. Points mapping
// outside the plot's area are dropped.
func (p *Plot) SetPixel(x, y int, c Color) {
	pt, ok := p.Map(x, y)
	if !ok {
		return
	}
	p.area.canvas.img.Set(pt.X, pt.Y, c.RGBA8())
}

// Each calls fn for every data point of the plot's domain, in column
// order.
func (p *Plot) Each(fn func(x, y int)) {
	for x := p.x.Min; x < p.x.Max; x++ {
		for y := p.y.Min; y < p.y.Max; y++ {
			fn(x, y)
		}
	}
}
