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

// Package sweep describes the parameter sets to be rendered.
//
// Parameter sets come either from the built-in list [Builtin], or from a
// YAML file read by [Parse]. A file lists individual patterns as well as
// sweeps, where every parameter takes a list of values and all
// combinations are rendered.
//
// Example:
//
//	unit: cm
//	formats: [svg, pdf]
//	variants: [simulator, laser-cut]
//	patterns:
//	  - name: bowl
//	    radius: 12
//	    beta: 0.589
//	    target_width: 20
//	    target_height: 20
//	    cell_width: 2
//	    cell_height: 2
//	sweeps:
//	  - name: radius
//	    radius: [8, 10, 12]
//	    beta: [0.589]
//	    target_width: [20]
//	    target_height: [20]
//	    cell_width: [1, 2]
//	    cell_height: [2]
package sweep

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v2"

	"seehuhn.de/go/miura"
	"seehuhn.de/go/miura/render"
)

// Job is a single parameter set.
type Job struct {
	Name   string // lowercase a-z, 0-9, _ and - only
	Unit   render.Unit
	Params miura.Params
}

// Config is the contents of a sweep file.
type Config struct {
	Unit     string    `yaml:"unit"`
	Formats  []string  `yaml:"formats"`
	Variants []string  `yaml:"variants"`
	Patterns []Pattern `yaml:"patterns"`
	Sweeps   []Sweep   `yaml:"sweeps"`
}

// Pattern is a single parameter set in a sweep file.
// Pointers distinguish missing fields from zero values.
type Pattern struct {
	Name         string   `yaml:"name"`
	Radius       *float64 `yaml:"radius"`
	Alpha        *float64 `yaml:"alpha"`
	Beta         *float64 `yaml:"beta"`
	TargetWidth  *float64 `yaml:"target_width"`
	TargetHeight *float64 `yaml:"target_height"`
	CellWidth    *float64 `yaml:"cell_width"`
	CellHeight   *float64 `yaml:"cell_height"`
}

// Sweep lists values for every parameter.
// All combinations of values are used.
type Sweep struct {
	Name         string    `yaml:"name"`
	Radius       []float64 `yaml:"radius"`
	Beta         []float64 `yaml:"beta"`
	TargetWidth  []float64 `yaml:"target_width"`
	TargetHeight []float64 `yaml:"target_height"`
	CellWidth    []float64 `yaml:"cell_width"`
	CellHeight   []float64 `yaml:"cell_height"`
}

// Parse reads a sweep file. Unknown fields are an error.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	err = yaml.UnmarshalStrict(data, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Jobs returns all parameter sets in the file, patterns first, followed
// by the expanded sweeps. The values of the parameters are not
// range-checked here; this happens when the pattern is constructed.
func (cfg *Config) Jobs() ([]Job, error) {
	unit := render.Centimeter
	if cfg.Unit != "" {
		var err error
		unit, err = render.ParseUnit(cfg.Unit)
		if err != nil {
			return nil, err
		}
	}

	var jobs []Job
	seen := make(map[string]bool)
	add := func(job Job) error {
		if err := checkName(job.Name); err != nil {
			return err
		}
		if seen[job.Name] {
			return fmt.Errorf("duplicate name %q", job.Name)
		}
		seen[job.Name] = true
		jobs = append(jobs, job)
		return nil
	}

	for i, pat := range cfg.Patterns {
		params, err := pat.params()
		if err != nil {
			return nil, fmt.Errorf("pattern %d (%q): %w", i+1, pat.Name, err)
		}
		err = add(Job{Name: pat.Name, Unit: unit, Params: params})
		if err != nil {
			return nil, err
		}
	}

	for i, sw := range cfg.Sweeps {
		all, err := sw.expand()
		if err != nil {
			return nil, fmt.Errorf("sweep %d (%q): %w", i+1, sw.Name, err)
		}
		for k, params := range all {
			name := fmt.Sprintf("%s_%03d", sw.Name, k)
			if err := add(Job{Name: name, Unit: unit, Params: params}); err != nil {
				return nil, err
			}
		}
	}

	if len(jobs) == 0 {
		return nil, errors.New("no patterns defined")
	}
	return jobs, nil
}

func (pat *Pattern) params() (miura.Params, error) {
	var missing []string
	get := func(name string, x *float64) float64 {
		if x == nil {
			missing = append(missing, name)
			return 0
		}
		return *x
	}

	var p miura.Params
	if pat.Alpha != nil {
		p.Alpha = *pat.Alpha
		if pat.Radius != nil {
			return p, errors.New("radius and alpha are mutually exclusive")
		}
	} else {
		p.Radius = get("radius", pat.Radius)
	}
	p.Beta = get("beta", pat.Beta)
	p.TargetWidth = get("target_width", pat.TargetWidth)
	p.TargetHeight = get("target_height", pat.TargetHeight)
	p.CellWidth = get("cell_width", pat.CellWidth)
	p.CellHeight = get("cell_height", pat.CellHeight)

	if len(missing) > 0 {
		return p, fmt.Errorf("missing fields %v", missing)
	}
	return p, nil
}

// expand returns the parameter sets of the sweep, varying the last field
// fastest.
func (sw *Sweep) expand() ([]miura.Params, error) {
	fields := map[string][]float64{
		"radius":        sw.Radius,
		"beta":          sw.Beta,
		"target_width":  sw.TargetWidth,
		"target_height": sw.TargetHeight,
		"cell_width":    sw.CellWidth,
		"cell_height":   sw.CellHeight,
	}
	var missing []string
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if len(fields[name]) == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing fields %v", missing)
	}

	var res []miura.Params
	for _, r := range sw.Radius {
		for _, beta := range sw.Beta {
			for _, tw := range sw.TargetWidth {
				for _, th := range sw.TargetHeight {
					for _, cw := range sw.CellWidth {
						for _, ch := range sw.CellHeight {
							res = append(res, miura.Params{
								Radius:       r,
								Beta:         beta,
								TargetWidth:  tw,
								TargetHeight: th,
								CellWidth:    cw,
								CellHeight:   ch,
							})
						}
					}
				}
			}
		}
	}
	return res, nil
}

func checkName(name string) error {
	if name == "" {
		return errors.New("missing name")
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return fmt.Errorf("invalid name %q", name)
		}
	}
	return nil
}
