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

// Radii describes the shape of the folded sheet.
// All lengths are in the same unit as the cell dimensions.
type Radii struct {
	// Straight is set if alpha equals beta. The folded sheet then does
	// not curve, the radii are +Inf and the thickness is 0.
	Straight bool

	OuterRadius float64
	InnerRadius float64
	Thickness   float64
}

// EstimateRadii computes the radii of the circles traced by the outer and
// inner surfaces of the folded sheet, and the resulting thickness.
// The values are for reporting only.
func EstimateRadii(alpha, beta, h, w float64) Radii {
	if alpha == beta {
		return Radii{
			Straight:    true,
			OuterRadius: math.Inf(1),
			InnerRadius: math.Inf(1),
		}
	}

	outerSymm := h * math.Sin(alpha) / math.Sin(alpha-beta)
	inner := h * (math.Sin(alpha)/math.Tan(alpha-beta) - math.Cos(alpha))
	outer := math.Hypot(outerSymm, w*math.Cos(beta))

	return Radii{
		OuterRadius: outer,
		InnerRadius: inner,
		Thickness:   outer - inner,
	}
}
