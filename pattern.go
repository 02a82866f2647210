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

package miura

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// maxCells limits the number of cells in each direction.
const maxCells = 1 << 16

// Pattern is the grid layout of a crease pattern.
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	Alpha, Beta float64

	CellWidth, CellHeight float64
	CellsHor, CellsVert   int

	// HeightCut is removed from the top of the grid, so that the
	// first row of creases starts at y = 0.
	HeightCut float64

	// Width and Height give the size of the pattern.
	// All segments lie inside [0, Width] × [0, Height].
	// Both are zero if the grid has no cells.
	Width, Height float64
}

// New validates p, solves for the fold angle alpha if needed, and lays out
// the grid. No pattern is returned if the geometry is degenerate or
// cannot be realised.
func New(p Params) (*Pattern, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	alpha := p.Alpha
	if alpha == 0 {
		var err error
		alpha, err = SolveAlpha(p.Beta, p.Radius, p.CellHeight)
		if err != nil {
			return nil, err
		}
	}

	return NewWithAngles(alpha, p.Beta, p.CellWidth, p.CellHeight, p.TargetWidth, p.TargetHeight)
}

// NewWithAngles lays out a grid for the fold angles alpha and beta, using
// cells of size w × h, inside a target area of the given size.
func NewWithAngles(alpha, beta, w, h, targetWidth, targetHeight float64) (*Pattern, error) {
	for _, check := range []error{
		checkPositive("cell_width", w),
		checkPositive("cell_height", h),
		checkNonNegative("target_width", targetWidth),
		checkNonNegative("target_height", targetHeight),
		checkAngle("beta", beta),
	} {
		if check != nil {
			return nil, check
		}
	}
	if err := CheckFeasible(alpha, beta, w, h); err != nil {
		return nil, err
	}

	nx := math.Floor(targetWidth / w)
	ny := math.Floor(targetHeight / h)
	if nx > maxCells {
		return nil, &DegenerateGeometryError{Field: "target_width", Value: targetWidth, Want: "at most 65536 cells"}
	}
	if ny > maxCells {
		return nil, &DegenerateGeometryError{Field: "target_height", Value: targetHeight, Want: "at most 65536 cells"}
	}

	heightCut := h * math.Tan(alpha)
	width := nx * w
	height := max(0, ny*h-heightCut)
	if nx == 0 || ny == 0 {
		// no cells, no pattern
		width, height = 0, 0
	}
	pat := &Pattern{
		Alpha:      alpha,
		Beta:       beta,
		CellWidth:  w,
		CellHeight: h,
		CellsHor:   int(nx),
		CellsVert:  int(ny),
		HeightCut:  heightCut,
		Width:      width,
		Height:     height,
	}

	Logger().Debug("miura pattern",
		"alpha", alpha, "beta", beta,
		"cells_hor", pat.CellsHor, "cells_vert", pat.CellsVert,
		"width", pat.Width, "height", pat.Height)

	return pat, nil
}

// Radii estimates the shape of the folded sheet.
func (p *Pattern) Radii() Radii {
	return EstimateRadii(p.Alpha, p.Beta, p.CellHeight, p.CellWidth)
}

// Segments iterates over all lines of the pattern.
//
// The four edges of the bounding rectangle come first, in the order
// top, right, bottom, left. The creases follow, column by column.
// Inside every cell (i, j), first the vertical crease on the right of
// the cell and then the zig-zag crease below the cell is produced;
// creases on the outer boundary are omitted.
//
// The sequence is the same every time it is iterated.
func (p *Pattern) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		w, h := p.Width, p.Height
		corners := [4]vec.Vec2{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
		for k := range corners {
			if !yield(Segment{A: corners[k], B: corners[(k+1)%4], Fold: Edge}) {
				return
			}
		}

		// vertical offsets of the zig-zag lines, in units of rows
		ratio := p.CellWidth / p.CellHeight
		shiftAlpha := ratio * math.Tan(p.Alpha)
		shiftBeta := ratio * math.Tan(p.Beta)

		for i := range p.CellsHor {
			offsetLeft := float64(i % 2)
			offsetRight := 1 - offsetLeft
			x1 := float64(i)
			x2 := float64(i + 1)

			for j := range p.CellsVert {
				offsetTop, offsetBottom := shiftBeta, shiftAlpha
				if j%2 == 1 {
					offsetTop, offsetBottom = shiftAlpha, shiftBeta
				}

				var yTopRight float64
				if j > 0 {
					yTopRight = float64(j) + offsetRight*offsetTop
				}
				yBottomLeft := float64(j+1) + offsetLeft*offsetBottom
				yBottomRight := float64(j+1) + offsetRight*offsetBottom

				if i != p.CellsHor-1 {
					fold := Valley
					if (i+j)%2 == 1 {
						fold = Mountain
					}
					s := p.clip(x2, yTopRight, x2, yBottomRight, fold)
					if !s.IsDegenerate() && !yield(s) {
						return
					}
				}
				if j != p.CellsVert-1 {
					fold := Mountain
					if j%2 == 1 {
						fold = Valley
					}
					s := p.clip(x1, yBottomLeft, x2, yBottomRight, fold)
					if !s.IsDegenerate() && !yield(s) {
						return
					}
				}
			}
		}
	}
}

// clip converts grid coordinates (in columns and rows) into a segment
// inside the pattern bounds.
func (p *Pattern) clip(x1, y1, x2, y2 float64, fold FoldType) Segment {
	return Segment{
		A:    vec.Vec2{X: p.clipX(x1), Y: p.clipY(y1)},
		B:    vec.Vec2{X: p.clipX(x2), Y: p.clipY(y2)},
		Fold: fold,
	}
}

func (p *Pattern) clipX(x float64) float64 {
	return max(0, min(x*p.CellWidth, p.Width))
}

func (p *Pattern) clipY(y float64) float64 {
	return max(0, min(y*p.CellHeight-p.HeightCut, p.Height))
}
