// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// synteny renders a decorative background panel and a front panel holding
// a whole-genome alignment plot of two assemblies from minimap2 PAF output.
//
// All parameters, including input and output paths, are built in.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/biogo/synteny/synteny/render"
)

func main() {
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	err := render.Run(render.DefaultConfig())
	if err != nil {
		log.Fatalf("synteny: %v", err)
	}
}
