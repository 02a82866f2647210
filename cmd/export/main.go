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

// Command export writes the crease patterns of the built-in parameter sets
// to JSON, for comparison with external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/miura"
	"seehuhn.de/go/miura/render"
	"seehuhn.de/go/miura/sweep"
)

func main() {
	outFile := flag.String("o", "testdata/patterns.json", "output file")
	flag.Parse()

	var out struct {
		Patterns []jsonPattern `json:"patterns"`
	}

	for _, category := range slices.Sorted(maps.Keys(sweep.Builtin)) {
		for _, job := range sweep.Builtin[category] {
			jp, err := toJSON(category, job)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s_%s: %v\n", category, job.Name, err)
				os.Exit(1)
			}
			out.Patterns = append(out.Patterns, jp)
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonPattern struct {
	Name       string        `json:"name"`
	Unit       string        `json:"unit"`
	Alpha      float64       `json:"alpha"`
	Beta       float64       `json:"beta"`
	CellWidth  float64       `json:"cell_width"`
	CellHeight float64       `json:"cell_height"`
	CellsHor   int           `json:"cells_hor"`
	CellsVert  int           `json:"cells_vert"`
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Segments   []jsonSegment `json:"segments"`
	Laser      []jsonLine    `json:"laser"`
}

type jsonSegment struct {
	Fold string    `json:"fold"`
	Pts  []float64 `json:"pts"`
}

// jsonLine is a line as drawn by the laser cutter renderer.
// The end points use the pattern's unit; widths and dashes are in points.
type jsonLine struct {
	Pts       []float64 `json:"pts"`
	Color     string    `json:"color"`
	Width     float64   `json:"width"`
	Dash      []float64 `json:"dash,omitempty"`
	DashPhase float64   `json:"dash_phase,omitempty"`
}

func toJSON(category string, job sweep.Job) (jsonPattern, error) {
	p, err := miura.New(job.Params)
	if err != nil {
		return jsonPattern{}, err
	}

	jp := jsonPattern{
		Name:       category + "_" + job.Name,
		Unit:       job.Unit.Name,
		Alpha:      p.Alpha,
		Beta:       p.Beta,
		CellWidth:  p.CellWidth,
		CellHeight: p.CellHeight,
		CellsHor:   p.CellsHor,
		CellsVert:  p.CellsVert,
		Width:      p.Width,
		Height:     p.Height,
	}
	for seg := range p.Segments() {
		jp.Segments = append(jp.Segments, jsonSegment{
			Fold: seg.Fold.String(),
			Pts:  []float64{seg.A.X, seg.A.Y, seg.B.X, seg.B.Y},
		})
	}

	rec := render.NewRecorder(job.Unit)
	render.LaserCut.Draw(rec, p)
	for _, l := range rec.Lines {
		c := l.Style.Color
		jp.Laser = append(jp.Laser, jsonLine{
			Pts:       []float64{l.A.X, l.A.Y, l.B.X, l.B.Y},
			Color:     fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			Width:     l.Style.Width,
			Dash:      l.Style.Dash,
			DashPhase: l.Style.DashPhase,
		})
	}
	return jp, nil
}
