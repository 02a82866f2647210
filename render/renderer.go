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

package render

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/miura"
)

// Mode selects how creases are drawn.
type Mode int

const (
	// ModeSimulator draws solid lines, coloured by fold type.
	ModeSimulator Mode = iota

	// ModeLaser cuts the outline and scores the creases with dashed
	// lines.
	ModeLaser
)

// Renderer draws the lines of a crease pattern into a [Document].
// A Renderer holds no state and can be used concurrently, as long as
// every goroutine draws into its own document.
type Renderer struct {
	Name      string
	Mode      Mode
	Thickness float64 // stroke width in points
}

var (
	// Simulator draws valley folds blue, mountain folds red and the
	// outline black.
	Simulator = &Renderer{Name: "simulator", Mode: ModeSimulator, Thickness: 3}

	// LaserPreview shows the laser-cutter drawing with lines thick
	// enough to be seen.
	LaserPreview = &Renderer{Name: "laser-preview", Mode: ModeLaser, Thickness: 2}

	// LaserCut is the drawing sent to the laser cutter.
	LaserCut = &Renderer{Name: "laser-cut", Mode: ModeLaser, Thickness: 0.01}
)

// Variants lists the predefined renderers.
var Variants = []*Renderer{Simulator, LaserPreview, LaserCut}

// ByName returns the predefined renderer with the given name.
func ByName(name string) (*Renderer, error) {
	for _, r := range Variants {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unknown renderer %q", name)
}

// Draw adds all lines of the pattern to doc.
// Degenerate segments are skipped.
func (r *Renderer) Draw(doc Document, p *miura.Pattern) {
	for s := range p.Segments() {
		if s.IsDegenerate() {
			continue
		}
		r.Line(doc, s.A, s.B, s.Fold)
	}
}

// Line adds the line from a to b to doc, styled for the given fold type.
// Lines of zero length, or with coordinates which are not finite, are
// ignored.
func (r *Renderer) Line(doc Document, a, b vec.Vec2, fold miura.FoldType) {
	seg := miura.Segment{A: a, B: b, Fold: fold}
	if seg.IsDegenerate() {
		miura.Logger().Debug("skipping degenerate line", "renderer", r.Name, "segment", seg)
		return
	}

	switch r.Mode {
	case ModeSimulator:
		doc.AddLine(a, b, &Style{Color: foldColor(fold), Width: r.Thickness})

	case ModeLaser:
		if fold == miura.Edge {
			doc.AddLine(a, b, &Style{Color: Black, Width: r.Thickness})
			return
		}

		full := seg.Length() * doc.Unit().PointsPerUnit
		layout, ok := LayoutDashes(full)
		if !ok {
			return
		}

		t := SafeZone / full
		d := b.Sub(a)
		start := a.Add(d.Mul(t))
		end := a.Add(d.Mul(1 - t))
		doc.AddLine(start, end, &Style{
			Color:     Red,
			Width:     r.Thickness,
			Dash:      []float64{DashLength, GapLength},
			DashPhase: layout.Phase(),
		})
	}
}

func foldColor(fold miura.FoldType) color.NRGBA {
	switch fold {
	case miura.Valley:
		return Blue
	case miura.Mountain:
		return Red
	default:
		return Black
	}
}
