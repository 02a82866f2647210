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

package sweep

import (
	"math"

	"seehuhn.de/go/miura"
	"seehuhn.de/go/miura/render"
)

// Builtin contains the predefined jobs, grouped by category.
// The category name is used as a prefix in output file names.
var Builtin = map[string][]Job{
	"classic": classicJobs,
	"curved":  curvedJobs,
}

// classicJobs use fixed fold angles and inch-based cells.
var classicJobs = []Job{
	{
		Name: "miura",
		Unit: render.Inch,
		Params: miura.Params{
			Alpha:        math.Pi / 4,
			Beta:         3 * math.Pi / 16,
			TargetWidth:  8,
			TargetHeight: 10,
			CellWidth:    1,
			CellHeight:   1,
		},
	},
	{
		Name: "letter",
		Unit: render.Inch,
		Params: miura.Params{
			Alpha:        math.Pi / 4,
			Beta:         3 * math.Pi / 16,
			TargetWidth:  8.5,
			TargetHeight: 11,
			CellWidth:    0.5,
			CellHeight:   0.5,
		},
	},
}

// curvedJobs solve the fold angle from the radius of curvature.
var curvedJobs = []Job{
	{
		Name: "r12",
		Unit: render.Centimeter,
		Params: miura.Params{
			Radius:       12,
			Beta:         3 * math.Pi / 16,
			TargetWidth:  20,
			TargetHeight: 20,
			CellWidth:    2,
			CellHeight:   2,
		},
	},
	{
		Name: "r8_fine",
		Unit: render.Centimeter,
		Params: miura.Params{
			Radius:       8,
			Beta:         math.Pi / 8,
			TargetWidth:  15,
			TargetHeight: 15,
			CellWidth:    1,
			CellHeight:   1,
		},
	},
	{
		Name: "r20_a4",
		Unit: render.Centimeter,
		Params: miura.Params{
			Radius:       20,
			Beta:         math.Pi / 6,
			TargetWidth:  21,
			TargetHeight: 29.7,
			CellWidth:    1.5,
			CellHeight:   1.5,
		},
	},
}
