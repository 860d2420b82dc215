// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/biogo/synteny/synteny/raster"
)

//go:embed default.toml
var defaultConfig string

// Config holds the rendering parameters.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Margin is the width of the decorative border
	// around the front panel's centre.
	Margin int `toml:"margin"`

	TitleInset int `toml:"title_inset"`
	PlotInset  int `toml:"plot_inset"`

	Divisor   int `toml:"divisor"`
	MinLength int `toml:"min_length"`

	TargetSizes string `toml:"target_sizes"`
	QuerySizes  string `toml:"query_sizes"`
	Alignments  string `toml:"alignments"`

	Back  string `toml:"back"`
	Front string `toml:"front"`

	BackDomain Domain `toml:"back_domain"`
}

// Domain is a pair of half-open data ranges.
type Domain struct {
	X [2]int `toml:"x"`
	Y [2]int `toml:"y"`
}

func (d Domain) ranges() (x, y raster.Range) {
	return raster.Range{Min: d.X[0], Max: d.X[1]}, raster.Range{Min: d.Y[0], Max: d.Y[1]}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var c Config
	_, err := toml.Decode(defaultConfig, &c)
	if err != nil {
		panic(fmt.Sprintf("render: invalid built-in configuration: %v", err))
	}
	return c
}

// ReadConfig returns the built-in configuration overlaid with any values
// set in the TOML document read from r.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	_, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("render: %w", err)
	}
	return c, c.Validate()
}

// Write writes c to w as a TOML document.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate returns an error if the configuration cannot be rendered.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("render: invalid canvas size %dx%d", c.Width, c.Height)
	case c.Margin < 0 || c.TitleInset < 0 || c.PlotInset < 0:
		return errors.New("render: negative margin or inset")
	case c.Width <= 2*c.Margin:
		return fmt.Errorf("render: margin %d leaves no centre panel", c.Margin)
	case c.Height-c.Width < 0:
		return fmt.Errorf("render: canvas %dx%d is wider than tall", c.Width, c.Height)
	case c.Divisor <= 0:
		return fmt.Errorf("render: invalid divisor %d", c.Divisor)
	}
	return nil
}
