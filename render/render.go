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

// Package render converts the segments of a crease pattern into lines in a
// drawing.
//
// A single [Renderer] type covers the three kinds of drawings: a preview
// for folding simulators with colour-coded creases, and the two
// laser-cutter drawings, where creases are scored with dashed lines and
// the outline is cut. The drawings themselves are [Document]s, which are
// implemented by the packages under backend/.
package render

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Document is a drawing which lines can be appended to.
//
// Coordinates passed to AddLine are in the document's unit, with the
// origin in the top-left corner and y pointing down. Stroke widths and
// dash lengths are in PDF points.
type Document interface {
	Unit() Unit
	AddLine(a, b vec.Vec2, s *Style)
}

// Style describes how a line is stroked.
type Style struct {
	Color color.NRGBA
	Width float64 // stroke width in points

	// Dash is the dash array in points, alternating between dashes and
	// gaps. Nil means a solid line.
	Dash []float64

	// DashPhase is the distance into the dash array, in points, at which
	// the line starts.
	DashPhase float64
}

var (
	Black = color.NRGBA{A: 255}
	Red   = color.NRGBA{R: 255, A: 255}
	Blue  = color.NRGBA{B: 255, A: 255}
)

// Unit is a unit of physical length.
type Unit struct {
	Name string // unit suffix in SVG, "in" or "cm"

	// PointsPerUnit converts lengths to PDF points (1/72 inch).
	PointsPerUnit float64

	// DotsPerUnit converts lengths to CSS pixels (1/96 inch).
	DotsPerUnit float64
}

var (
	Inch       = Unit{Name: "in", PointsPerUnit: 72, DotsPerUnit: 96}
	Centimeter = Unit{Name: "cm", PointsPerUnit: 72 / 2.54, DotsPerUnit: 96 / 2.54}
)
