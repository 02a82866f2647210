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

// SolveAlpha returns the fold angle alpha for the second family of
// diagonal creases, such that a sheet with base angle beta and cells of
// height h curves along a circle of the given radius.
//
// The crease triangle with sides radius and h, enclosing the angle beta,
// is completed using the law of cosines; the law of sines then gives the
// angle delta opposite h, and alpha = beta + delta.
//
// The returned alpha still needs to be checked with [CheckFeasible].
func SolveAlpha(beta, radius, h float64) (float64, error) {
	if err := checkPositive("radius", radius); err != nil {
		return 0, err
	}
	if err := checkPositive("cell_height", h); err != nil {
		return 0, err
	}
	if err := checkAngle("beta", beta); err != nil {
		return 0, err
	}

	d := math.Sqrt(radius*radius + h*h - 2*radius*h*math.Cos(beta))
	if !(d > 0) {
		return 0, &DegenerateGeometryError{Field: "radius", Value: radius, Want: "a non-degenerate crease triangle"}
	}
	s := h * math.Sin(beta) / d
	s = max(-1, min(1, s)) // rounding only
	delta := math.Asin(s)

	return beta + delta, nil
}

// CheckFeasible verifies that the fold angles alpha and beta can be
// realised by cells of width w and height h. The shortest side of a cell
// has length h + w*(tan(beta) - tan(alpha)), which must not be negative.
func CheckFeasible(alpha, beta, w, h float64) error {
	switch {
	case math.IsNaN(alpha) || math.IsNaN(beta):
		return &FeasibilityError{Alpha: alpha, Beta: beta, Reason: "angle is not a number"}
	case alpha < beta:
		return &FeasibilityError{Alpha: alpha, Beta: beta, Reason: "alpha is smaller than beta"}
	case alpha >= math.Pi/2:
		return &FeasibilityError{Alpha: alpha, Beta: beta, Reason: "alpha is not below pi/2"}
	}

	side := h + w*(math.Tan(beta)-math.Tan(alpha))
	if side < 0 {
		return &FeasibilityError{
			Alpha:  alpha,
			Beta:   beta,
			Reason: "smallest cell side is negative",
		}
	}
	return nil
}

func checkPositive(field string, x float64) error {
	if x > 0 && !math.IsInf(x, 1) {
		return nil
	}
	return &DegenerateGeometryError{Field: field, Value: x, Want: "a positive, finite value"}
}
