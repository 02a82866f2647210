// seehuhn.de/go/miura - crease patterns for curved Miura-ori sheets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command miura renders crease patterns for curved Miura-ori sheets.
//
// For every parameter set, one file is written per renderer variant and
// output format, named <set>_<variant>.<format>. Parameter sets are read
// from a YAML sweep file given with -config; without it, the built-in
// sets are rendered.
//
// Parameter sets which cannot be realised are reported and skipped.
// The exit status is non-zero if any set was skipped.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/miura"
	"seehuhn.de/go/miura/render"
	"seehuhn.de/go/miura/sweep"
)

func main() {
	configFile := flag.String("config", "", "YAML file with the parameter sets")
	outDir := flag.String("out", "out", "output directory")
	formatList := flag.String("format", "", "comma-separated output formats (svg, pdf, png)")
	variantList := flag.String("variant", "", "comma-separated renderer variants")
	verbose := flag.Bool("v", false, "show debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	miura.SetLogger(logger)

	err := run(logger, *configFile, *outDir, *formatList, *variantList)
	if err != nil {
		fmt.Fprintln(os.Stderr, "miura:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configFile, outDir, formatList, variantList string) error {
	var jobs []sweep.Job
	var formatNames, variantNames []string
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return err
		}
		cfg, err := sweep.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", configFile, err)
		}
		jobs, err = cfg.Jobs()
		if err != nil {
			return fmt.Errorf("%s: %w", configFile, err)
		}
		formatNames = cfg.Formats
		variantNames = cfg.Variants
	} else {
		for _, category := range slices.Sorted(maps.Keys(sweep.Builtin)) {
			for _, job := range sweep.Builtin[category] {
				job.Name = category + "_" + job.Name
				jobs = append(jobs, job)
			}
		}
	}
	if formatList != "" {
		formatNames = strings.Split(formatList, ",")
	}
	if variantList != "" {
		variantNames = strings.Split(variantList, ",")
	}

	outputs, err := selectOutputs(formatNames)
	if err != nil {
		return err
	}
	variants := render.Variants
	if len(variantNames) > 0 {
		variants = nil
		for _, name := range variantNames {
			r, err := render.ByName(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			variants = append(variants, r)
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	failed := 0
	for _, job := range jobs {
		err := renderJob(logger, job, variants, outputs, outDir)
		if err != nil {
			logger.Warn("skipping pattern", "name", job.Name, "err", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d patterns failed", failed, len(jobs))
	}
	return nil
}

// renderJob writes all files for one parameter set.
func renderJob(logger *slog.Logger, job sweep.Job, variants []*render.Renderer, outputs []*output, outDir string) error {
	p, err := miura.New(job.Params)
	if err != nil {
		return err
	}

	radii := p.Radii()
	if radii.Straight {
		logger.Info("pattern is straight", "name", job.Name)
	} else {
		logger.Info("folded shape",
			"name", job.Name,
			"outer_radius", fmt.Sprintf("%.2f%s", radii.OuterRadius, job.Unit.Name),
			"inner_radius", fmt.Sprintf("%.2f%s", radii.InnerRadius, job.Unit.Name),
			"thickness", fmt.Sprintf("%.2f%s", radii.Thickness, job.Unit.Name))
	}
	if p.CellsHor == 0 || p.CellsVert == 0 {
		logger.Warn("target area is smaller than one cell", "name", job.Name)
	}

	for _, r := range variants {
		for _, out := range outputs {
			fileName := filepath.Join(outDir, job.Name+"_"+r.Name+"."+out.ext)
			err := out.write(fileName, p, r, job.Unit)
			if err != nil {
				return fmt.Errorf("%s: %w", fileName, err)
			}
			logger.Debug("wrote file", "file", fileName)
		}
	}
	return nil
}
