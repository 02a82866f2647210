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
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is matched by all errors of type [*FeasibilityError].
	ErrInfeasible = errors.New("infeasible fold geometry")

	// ErrDegenerate is matched by all errors of type
	// [*DegenerateGeometryError].
	ErrDegenerate = errors.New("degenerate geometry")
)

// FeasibilityError is returned when the fold angles cannot be realised
// with cell edges of non-negative length.
type FeasibilityError struct {
	Alpha, Beta float64
	Reason      string
}

func (err *FeasibilityError) Error() string {
	return fmt.Sprintf("infeasible fold geometry (alpha=%.6g, beta=%.6g): %s",
		err.Alpha, err.Beta, err.Reason)
}

// Is allows errors.Is(err, ErrInfeasible) to succeed.
func (err *FeasibilityError) Is(target error) bool {
	return target == ErrInfeasible
}

// DegenerateGeometryError is returned when an input parameter makes the
// trigonometric construction undefined, for example a zero cell height.
type DegenerateGeometryError struct {
	Field string
	Value float64
	Want  string
}

func (err *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: %s=%g, want %s",
		err.Field, err.Value, err.Want)
}

// Is allows errors.Is(err, ErrDegenerate) to succeed.
func (err *DegenerateGeometryError) Is(target error) bool {
	return target == ErrDegenerate
}
