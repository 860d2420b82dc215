// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
)

// Color is a member of the closed set of colours used for rendering.
type Color uint8

const (
	Background Color = iota
	White
	Blue
	Red
	Yellow

	numColors
)

var rgba = [numColors]color.RGBA{
	Background: {R: 4, G: 90, B: 141, A: 0xff},
	White:      {R: 255, G: 247, B: 251, A: 0xff},
	Blue:       {R: 54, G: 144, B: 192, A: 0xff},
	Red:        {R: 227, G: 26, B: 28, A: 0xff},
	Yellow:     {R: 255, G: 237, B: 160, A: 0xff},
}

var names = [numColors]string{
	Background: "background",
	White:      "white",
	Blue:       "blue",
	Red:        "red",
	Yellow:     "yellow",
}

// RGBA satisfies the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) { return c.RGBA8().RGBA() }

// RGBA8 returns the colour's 8-bit components. RGBA8 will panic if c is
// not a member of the palette.
func (c Color) RGBA8() color.RGBA {
	if c >= numColors {
		panic(fmt.Sprintf("raster: invalid color %d", c))
	}
	return table[c].(color.RGBA)
}

func (c Color) String() string {
	if c >= numColors {
		return fmt.Sprintf("Color(%d)", c)
	}
	return names[c]
}

// Palette is a palette.Palette holding the RGBA value of every Color in
// declaration order.
type Palette struct{}

var _ palette.Palette = Palette{}

// Colors returns the palette's colours.
func (Palette) Colors() []color.Color {
	c := make([]color.Color, numColors)
	for i := range c {
		c[i] = rgba[i]
	}
	return c
}

// table is the lookup used when writing pixels.
var table = Palette{}.Colors()
