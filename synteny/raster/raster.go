// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a pixel canvas, rectangular sub-areas of a
// canvas and mappings from integer data coordinates onto those areas.
package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	"gonum.org/v1/plot/vg/vgimg"
)

// Sink is a destination for colour writes.
type Sink interface {
	// Fill sets every pixel of the sink to c.
	Fill(c Color)

	// SetPixel sets the pixel at (x, y) to c. Writes
	// outside the sink are dropped.
	SetPixel(x, y int, c Color)
}

// Canvas is a raster image that can be encoded as a PNG.
type Canvas struct {
	vc  *vgimg.Canvas
	img draw.Image
}

// NewCanvas returns a new Canvas with the given width and height in pixels.
// NewCanvas will panic if either dimension is not positive.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: invalid canvas size %dx%d", width, height))
	}
	vc := vgimg.NewWith(vgimg.UseImage(image.NewRGBA(image.Rect(0, 0, width, height))))
	return &Canvas{vc: vc, img: vc.Image()}
}

// Bounds returns the pixel bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image returns the canvas' backing image.
func (c *Canvas) Image() image.Image { return c.img }

// Fill sets every pixel of the canvas to col.
func (c *Canvas) Fill(col Color) { c.Area().Fill(col) }

// SetPixel sets the pixel at (x, y) to col.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.Set(x, y, col.RGBA8())
}

// Area returns an Area covering the whole canvas.
func (c *Canvas) Area() Area { return Area{canvas: c, rect: c.img.Bounds()} }

// WriteTo writes the canvas to w in PNG format.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	return vgimg.PngCanvas{Canvas: c.vc}.WriteTo(w)
}

// Save writes the canvas to the named file in PNG format. A partially
// written file may remain if an error is returned.
func (c *Canvas) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(f)
	_, err = c.WriteTo(buf)
	if err == nil {
		err = buf.Flush()
	}
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	return err
}

// Area is a rectangular region of a Canvas. Pixel coordinates passed to
// an Area are relative to its top-left corner.
type Area struct {
	canvas *Canvas
	rect   image.Rectangle
}

// Rect returns the absolute pixel rectangle covered by the area.
func (a Area) Rect() image.Rectangle { return a.rect }

// Width returns the width of the area in pixels.
func (a Area) Width() int { return a.rect.Dx() }

// Height returns the height of the area in pixels.
func (a Area) Height() int { return a.rect.Dy() }

// Fill sets every pixel of the area to col.
func (a Area) Fill(col Color) {
	draw.Draw(a.canvas.img, a.rect, image.NewUniform(col.RGBA8()), image.Point{}, draw.Src)
}

// SetPixel sets the pixel at (x, y) relative to the area's origin to col.
// Writes falling outside the area are dropped.
func (a Area) SetPixel(x, y int, col Color) {
	p := a.rect.Min.Add(image.Point{X: x, Y: y})
	if !p.In(a.rect) {
		return
	}
	a.canvas.img.Set(p.X, p.Y, col.RGBA8())
}

// SplitByBreakpoints splits the area into a grid at the given column and
// row breakpoints, expressed relative to the area's origin. Breakpoints are
// clamped to the area. The returned areas are in row-major order and
// number (len(xs)+1)*(len(ys)+1); together they tile the receiver with
// no gaps or overlaps.
func (a Area) SplitByBreakpoints(xs, ys []int) []Area {
	cols := cuts(a.rect.Min.X, a.rect.Max.X, xs)
	rows := cuts(a.rect.Min.Y, a.rect.Max.Y, ys)
	areas := make([]Area, 0, (len(cols)-1)*(len(rows)-1))
	for j := 1; j < len(rows); j++ {
		for i := 1; i < len(cols); i++ {
			areas = append(areas, Area{
				canvas: a.canvas,
				rect:   image.Rect(cols[i-1], rows[j-1], cols[i], rows[j]),
			})
		}
	}
	return areas
}

// cuts returns the absolute edges of the segments of [lo, hi) split at
// the relative breakpoints bp.
func cuts(lo, hi int, bp []int) []int {
	c := make([]int, 0, len(bp)+2)
	c = append(c, lo)
	last := lo
	for _, b := range bp {
		b += lo
		if b < last {
			b = last
		}
		if b > hi {
			b = hi
		}
		c = append(c, b)
		last = b
	}
	return append(c, hi)
}

// SplitVertically splits the area into an upper area of height y and a
// lower area holding the remainder.
func (a Area) SplitVertically(y int) (upper, lower Area) {
	s := a.SplitByBreakpoints(nil, []int{y})
	return s[0], s[1]
}

// Inset returns the area shrunk by the given number of pixels on each
// side. An inset larger than the area yields an empty area.
func (a Area) Inset(left, top, right, bottom int) Area {
	r := image.Rectangle{
		Min: image.Point{X: a.rect.Min.X + left, Y: a.rect.Min.Y + top},
		Max: image.Point{X: a.rect.Max.X - right, Y: a.rect.Max.Y - bottom},
	}
	if r.Dx() <= 0 || r.Dy() <= 0 {
		r = image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return Area{canvas: a.canvas, rect: r}
}

// WithDomain returns a Plot mapping the data domain x × y onto the area.
func (a Area) WithDomain(x, y Range) *Plot {
	return &Plot{area: a, x: x, y: y}
}
