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

// Package miura computes crease patterns for curved Miura-ori sheets.
//
// A pattern is a rectangular grid of parallelogram cells. Two families of
// creases meet at every vertex: one inclined at the base angle beta, the
// other at the angle alpha. When alpha and beta differ, the folded sheet
// bends along a circle; [SolveAlpha] finds the alpha which makes the
// inner crease line follow a circle of a given radius, and [EstimateRadii]
// reports the radii and the thickness of the folded sheet.
//
// [New] validates a parameter set and lays out the grid. The resulting
// [Pattern] yields its creases through [Pattern.Segments], one [Segment]
// at a time, in a fixed order. Rendering the segments into drawings is
// done by the render package.
package miura
