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

import "math"

// Params is a complete parameter set for a crease pattern.
// All lengths use the same unit.
type Params struct {
	Radius       float64 // target radius of curvature
	Beta         float64 // base angle, in radians
	TargetWidth  float64 // the pattern is at most this wide
	TargetHeight float64 // the pattern is at most this high
	CellWidth    float64
	CellHeight   float64

	// Alpha, if non-zero, fixes the second fold angle directly.
	// In this case Radius must be zero and the angle solver is skipped.
	Alpha float64
}

// Validate checks that all fields are in range.
// Errors are of type [*DegenerateGeometryError].
func (p *Params) Validate() error {
	if p.Alpha == 0 {
		if err := checkPositive("radius", p.Radius); err != nil {
			return err
		}
	} else {
		if p.Radius != 0 {
			return &DegenerateGeometryError{Field: "radius", Value: p.Radius, Want: "0 when alpha is given"}
		}
		if err := checkAngle("alpha", p.Alpha); err != nil {
			return err
		}
	}
	if err := checkAngle("beta", p.Beta); err != nil {
		return err
	}
	if err := checkNonNegative("target_width", p.TargetWidth); err != nil {
		return err
	}
	if err := checkNonNegative("target_height", p.TargetHeight); err != nil {
		return err
	}
	if err := checkPositive("cell_width", p.CellWidth); err != nil {
		return err
	}
	if err := checkPositive("cell_height", p.CellHeight); err != nil {
		return err
	}
	return nil
}

func checkAngle(field string, x float64) error {
	if x > 0 && x < math.Pi/2 {
		return nil
	}
	return &DegenerateGeometryError{Field: field, Value: x, Want: "0 < angle < pi/2"}
}

func checkNonNegative(field string, x float64) error {
	if x >= 0 && !math.IsInf(x, 1) {
		return nil
	}
	return &DegenerateGeometryError{Field: field, Value: x, Want: "a non-negative, finite value"}
}
