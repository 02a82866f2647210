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
	"math"

	"seehuhn.de/go/geom/vec"
)

// FoldType classifies a line of a crease pattern.
type FoldType int

const (
	Valley FoldType = iota + 1
	Mountain
	Edge
)

func (f FoldType) String() string {
	switch f {
	case Valley:
		return "valley"
	case Mountain:
		return "mountain"
	case Edge:
		return "edge"
	default:
		return "invalid"
	}
}

// Segment is a straight line of a crease pattern.
// Coordinates are in the unit of the cell dimensions, with the origin in
// the top-left corner of the pattern and y pointing down.
type Segment struct {
	A, B vec.Vec2
	Fold FoldType
}

// Length returns the distance between the end points.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// IsDegenerate reports whether the segment has zero length or a
// coordinate which is not finite.
func (s Segment) IsDegenerate() bool {
	for _, x := range [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return s.A == s.B
}
