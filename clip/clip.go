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

// Package clip implements the Cohen-Sutherland line clipping algorithm.
package clip

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type outcode uint8

const (
	inside outcode = 0
	left   outcode = 1
	right  outcode = 2
	bottom outcode = 4
	top    outcode = 8
)

func computeOutcode(v vec.Vec2, r rect.Rect) outcode {
	c := inside
	if v.X < r.LLx {
		c |= left
	} else if v.X > r.URx {
		c |= right
	}
	if v.Y < r.LLy {
		c |= bottom
	} else if v.Y > r.URy {
		c |= top
	}
	return c
}

// Line clips the line from a to b to the rectangle r.
// The last return value is false if no part of the line lies inside r;
// the returned points are then meaningless.
func Line(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	codeA := computeOutcode(a, r)
	codeB := computeOutcode(b, r)
	for {
		if codeA == inside && codeB == inside {
			return a, b, true
		} else if codeA&codeB != 0 {
			return a, b, false
		}

		codeOut := codeA
		if codeOut == inside {
			codeOut = codeB
		}

		// The line cannot be parallel to the boundary it crosses,
		// so none of the divisions below is by zero.
		var v vec.Vec2
		switch {
		case codeOut&top != 0:
			v = vec.Vec2{X: a.X + (b.X-a.X)*(r.URy-a.Y)/(b.Y-a.Y), Y: r.URy}
		case codeOut&bottom != 0:
			v = vec.Vec2{X: a.X + (b.X-a.X)*(r.LLy-a.Y)/(b.Y-a.Y), Y: r.LLy}
		case codeOut&right != 0:
			v = vec.Vec2{X: r.URx, Y: a.Y + (b.Y-a.Y)*(r.URx-a.X)/(b.X-a.X)}
		case codeOut&left != 0:
			v = vec.Vec2{X: r.LLx, Y: a.Y + (b.Y-a.Y)*(r.LLx-a.X)/(b.X-a.X)}
		}

		if codeOut == codeA {
			a = v
			codeA = computeOutcode(a, r)
		} else {
			b = v
			codeB = computeOutcode(b, r)
		}
	}
}
