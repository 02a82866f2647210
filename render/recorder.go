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
	"slices"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Line is a line stored by a [Recorder].
type Line struct {
	A, B  vec.Vec2
	Style Style
}

// Recorder is a [Document] which keeps all lines in memory.
type Recorder struct {
	U     Unit
	Lines []Line
}

// NewRecorder returns an empty recorder using the given unit.
func NewRecorder(u Unit) *Recorder {
	return &Recorder{U: u}
}

// Unit implements the [Document] interface.
func (r *Recorder) Unit() Unit {
	return r.U
}

// AddLine implements the [Document] interface.
func (r *Recorder) AddLine(a, b vec.Vec2, s *Style) {
	style := *s
	style.Dash = slices.Clone(s.Dash)
	r.Lines = append(r.Lines, Line{A: a, B: b, Style: style})
}

// ParseUnit returns the unit with the given name.
func ParseUnit(name string) (Unit, error) {
	switch strings.ToLower(name) {
	case "in", "inch", "inches":
		return Inch, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return Centimeter, nil
	default:
		return Unit{}, fmt.Errorf("unknown unit %q", name)
	}
}
