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

package sweep

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/miura"
	"seehuhn.de/go/miura/render"
)

func TestBuiltin(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(Builtin)) {
		for _, job := range Builtin[category] {
			t.Run(category+"_"+job.Name, func(t *testing.T) {
				if err := checkName(job.Name); err != nil {
					t.Error(err)
				}
				p, err := miura.New(job.Params)
				if err != nil {
					t.Fatal(err)
				}
				if p.CellsHor == 0 || p.CellsVert == 0 {
					t.Errorf("empty grid %d×%d", p.CellsHor, p.CellsVert)
				}
			})
		}
	}
}

const testConfig = `
unit: in
formats: [svg, png]
variants: [laser-cut]
patterns:
  - name: bowl
    radius: 12
    beta: 0.5
    target_width: 20
    target_height: 20
    cell_width: 2
    cell_height: 2
  - name: flat
    alpha: 0.7854
    beta: 0.589
    target_width: 8
    target_height: 10
    cell_width: 1
    cell_height: 1
sweeps:
  - name: sw
    radius: [8, 12]
    beta: [0.5]
    target_width: [20]
    target_height: [20]
    cell_width: [1, 2]
    cell_height: [2]
`

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"svg", "png"}, cfg.Formats); d != "" {
		t.Errorf("formats (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"laser-cut"}, cfg.Variants); d != "" {
		t.Errorf("variants (-want +got):\n%s", d)
	}

	jobs, err := cfg.Jobs()
	if err != nil {
		t.Fatal(err)
	}
	sweepParams := func(r, cw float64) miura.Params {
		return miura.Params{Radius: r, Beta: 0.5, TargetWidth: 20, TargetHeight: 20, CellWidth: cw, CellHeight: 2}
	}
	want := []Job{
		{Name: "bowl", Unit: render.Inch, Params: sweepParams(12, 2)},
		{Name: "flat", Unit: render.Inch, Params: miura.Params{
			Alpha: 0.7854, Beta: 0.589, TargetWidth: 8, TargetHeight: 10, CellWidth: 1, CellHeight: 1,
		}},
		{Name: "sw_000", Unit: render.Inch, Params: sweepParams(8, 1)},
		{Name: "sw_001", Unit: render.Inch, Params: sweepParams(8, 2)},
		{Name: "sw_002", Unit: render.Inch, Params: sweepParams(12, 1)},
		{Name: "sw_003", Unit: render.Inch, Params: sweepParams(12, 2)},
	}
	if d := cmp.Diff(want, jobs); d != "" {
		t.Errorf("jobs (-want +got):\n%s", d)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		config string
	}{
		{"unknown field", "patterns:\n  - name: a\n    radius: 1\n    colour: red\n"},
		{"missing field", "patterns:\n  - name: a\n    radius: 1\n    beta: 0.5\n"},
		{"radius and alpha", "patterns:\n  - {name: a, radius: 1, alpha: 0.6, beta: 0.5, target_width: 1, target_height: 1, cell_width: 1, cell_height: 1}\n"},
		{"bad name", "patterns:\n  - {name: A, radius: 1, beta: 0.5, target_width: 1, target_height: 1, cell_width: 1, cell_height: 1}\n"},
		{"duplicate", "patterns:\n  - {name: a, radius: 1, beta: 0.5, target_width: 1, target_height: 1, cell_width: 1, cell_height: 1}\n  - {name: a, radius: 2, beta: 0.5, target_width: 1, target_height: 1, cell_width: 1, cell_height: 1}\n"},
		{"empty sweep field", "sweeps:\n  - {name: s, radius: [1], beta: [], target_width: [1], target_height: [1], cell_width: [1], cell_height: [1]}\n"},
		{"bad unit", "unit: furlong\npatterns:\n  - {name: a, radius: 1, beta: 0.5, target_width: 1, target_height: 1, cell_width: 1, cell_height: 1}\n"},
		{"empty", "unit: cm\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Parse(strings.NewReader(c.config))
			if err == nil {
				_, err = cfg.Jobs()
			}
			if err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

// Range errors are reported per job, when the pattern is constructed.
func TestJobsRangeChecked(t *testing.T) {
	cfg, err := Parse(strings.NewReader(
		"patterns:\n  - {name: a, radius: 1, beta: 0.5, target_width: 1, target_height: 1, cell_width: 1, cell_height: 0}\n"))
	if err != nil {
		t.Fatal(err)
	}
	jobs, err := cfg.Jobs()
	if err != nil {
		t.Fatal(err)
	}
	if jobs[0].Unit != render.Centimeter {
		t.Errorf("default unit is %v", jobs[0].Unit)
	}
	_, err = miura.New(jobs[0].Params)
	if !errors.Is(err, miura.ErrDegenerate) {
		t.Errorf("got %v, want degenerate geometry error", err)
	}
}
