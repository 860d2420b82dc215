// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render composes the decorative background panel and the front
// panel holding the whole-genome alignment plot.
package render

import (
	"errors"
	"fmt"

	"github.com/biogo/synteny/synteny/layout"
	"github.com/biogo/synteny/synteny/paf"
	"github.com/biogo/synteny/synteny/pattern"
	"github.com/biogo/synteny/synteny/project"
	"github.com/biogo/synteny/synteny/raster"
	"github.com/biogo/synteny/synteny/scaffold"
	"github.com/biogo/synteny/synteny/tsv"
)

// Run renders the back and front panels. A failure rendering one panel
// does not prevent rendering of the other; all failures are returned.
func Run(cfg Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}
	return errors.Join(Back(cfg), Front(cfg))
}

// Back renders the background panel to cfg.Back.
func Back(cfg Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}
	c := raster.NewCanvas(cfg.Width, cfg.Height)
	c.Fill(raster.Background)
	pattern.Paint(c.Area().WithDomain(cfg.BackDomain.ranges()))
	return save(c, cfg.Back)
}

// Front renders the front panel to cfg.Front. The panel is bordered by
// the tiling mirrored about the y axis and holds a title block above a
// square plot of the alignments in cfg.Alignments.
func Front(cfg Config) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}
	c, err := front(cfg)
	if err != nil {
		return fmt.Errorf("render: front panel: %w", err)
	}
	return save(c, cfg.Front)
}

func front(cfg Config) (*raster.Canvas, error) {
	w, h, m := cfg.Width, cfg.Height, cfg.Margin

	c := raster.NewCanvas(w, h)
	root := c.Area()
	root.Fill(raster.Background)
	centre := root.SplitByBreakpoints([]int{m, w - m}, []int{m, h - m})[4]

	pattern.Paint(root.WithDomain(raster.Range{Min: -w, Max: 0}, raster.Range{Min: 0, Max: h}))

	title, panel := centre.SplitVertically(centre.Height() - centre.Width())
	ti := cfg.TitleInset
	block := title.SplitByBreakpoints(
		[]int{ti, title.Width() - ti},
		[]int{ti, title.Height() - 2*ti},
	)[4]
	block.Fill(raster.Background)

	target, err := loadSizes("target", cfg.TargetSizes)
	if err != nil {
		return nil, err
	}
	query, err := loadSizes("query", cfg.QuerySizes)
	if err != nil {
		return nil, err
	}

	panel.Fill(raster.Yellow)
	in := cfg.PlotInset
	plot := panel.Inset(in, in, in, in).WithDomain(
		raster.Range{Min: 0, Max: ceilDiv(target.Total(), cfg.Divisor)},
		raster.Range{Min: 0, Max: ceilDiv(query.Total(), cfg.Divisor)},
	)

	err = plotAlignments(cfg, plot, target, query)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func loadSizes(axis, path string) (scaffold.Sizes, error) {
	sizes, err := scaffold.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded scaffold sizes", "axis", axis, "path", path, "scaffolds", len(sizes), "length", sizes.Total())
	return sizes, nil
}

func plotAlignments(cfg Config, plot *raster.Plot, target, query scaffold.Sizes) error {
	f, err := tsv.Open(cfg.Alignments)
	if err != nil {
		return err
	}
	defer f.Close()

	p := project.New(layout.New("target", target), layout.New("query", query))
	p.Divisor = cfg.Divisor
	p.MinLength = cfg.MinLength
	logger.Info("projecting alignments", "path", cfg.Alignments,
		"columns", plot.XRange().Len(), "rows", plot.YRange().Len(),
	)
	sum, err := p.ProjectAll(paf.NewScanner(paf.NewReader(f, cfg.Alignments)), plot)
	if err != nil {
		return err
	}
	logger.Info("projected alignments",
		"records", sum.Records,
		"drawn", sum.Drawn(),
		"skipped", sum.Skipped,
		"plus", sum.Plus,
		"minus", sum.Minus,
		"other", sum.Other,
		"writes", sum.Writes,
		"mean_identity", sum.MeanIdentity(),
		"median_identity", sum.MedianIdentity(),
	)
	logger.Debug("laid out scaffolds",
		"target", p.Target.Len(), "target_length", p.Target.Total(),
		"query", p.Query.Len(), "query_length", p.Query.Total(),
	)
	return nil
}

func save(c *raster.Canvas, path string) error {
	logger.Info("writing panel", "path", path)
	err := c.Save(path)
	if err != nil {
		return &tsv.IOError{Path: path, Err: err}
	}
	return nil
}

// ceilDiv returns a/b rounded up for non-negative a and positive b.
func ceilDiv(a, b int) int { return (a + b - 1) / b }
