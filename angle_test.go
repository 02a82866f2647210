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
	"math"
	"testing"
)

func TestSolveAlphaNotBelowBeta(t *testing.T) {
	for _, beta := range []float64{0.01, math.Pi / 8, 3 * math.Pi / 16, math.Pi / 4, 1.5} {
		for _, radius := range []float64{0.5, 1, 2, 12, 1000} {
			for _, h := range []float64{0.1, 1, 2, 10} {
				alpha, err := SolveAlpha(beta, radius, h)
				if err != nil {
					t.Errorf("SolveAlpha(%g, %g, %g): %v", beta, radius, h, err)
					continue
				}
				if alpha < beta {
					t.Errorf("SolveAlpha(%g, %g, %g) = %g < beta", beta, radius, h, alpha)
				}
			}
		}
	}
}

// TestSolveAlphaRadius checks that the solved angle reproduces the target
// radius: by the law of sines, h*sin(alpha)/sin(alpha-beta) == radius.
func TestSolveAlphaRadius(t *testing.T) {
	cases := []struct{ beta, radius, h float64 }{
		{3 * math.Pi / 16, 12, 2},
		{math.Pi / 8, 5, 1},
		{math.Pi / 6, 30, 2.5},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("R%g", c.radius), func(t *testing.T) {
			alpha, err := SolveAlpha(c.beta, c.radius, c.h)
			if err != nil {
				t.Fatal(err)
			}
			got := c.h * math.Sin(alpha) / math.Sin(alpha-c.beta)
			if math.Abs(got-c.radius) > 1e-9*c.radius {
				t.Errorf("radius = %g, want %g", got, c.radius)
			}
		})
	}
}

func TestSolveAlphaDegenerate(t *testing.T) {
	cases := []struct {
		name            string
		beta, radius, h float64
	}{
		{"zero radius", 0.5, 0, 1},
		{"negative radius", 0.5, -1, 1},
		{"zero height", 0.5, 12, 0},
		{"nan height", 0.5, 12, math.NaN()},
		{"infinite radius", 0.5, math.Inf(1), 1},
		{"zero beta", 0, 12, 1},
		{"right angle", math.Pi / 2, 12, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := SolveAlpha(c.beta, c.radius, c.h)
			if !errors.Is(err, ErrDegenerate) {
				t.Errorf("got %v, want degenerate geometry error", err)
			}
			var dErr *DegenerateGeometryError
			if !errors.As(err, &dErr) {
				t.Errorf("error has type %T", err)
			}
		})
	}
}

func TestCheckFeasible(t *testing.T) {
	cases := []struct {
		name              string
		alpha, beta, w, h float64
		ok                bool
	}{
		{"classic", math.Pi / 4, 3 * math.Pi / 16, 1, 1, true},
		{"straight", 0.5, 0.5, 1, 1, true},
		{"alpha below beta", 0.4, 0.5, 1, 1, false},
		{"wide cells", 1.2, 0.2, 4, 1, false},
		{"alpha too large", math.Pi / 2, 0.5, 1, 1, false},
		{"nan", math.NaN(), 0.5, 1, 1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := CheckFeasible(c.alpha, c.beta, c.w, c.h)
			if c.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInfeasible) {
				t.Errorf("got %v, want infeasible", err)
			}
		})
	}
}
