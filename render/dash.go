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

import "math"

// Dash geometry of scored creases, in points.
const (
	// SafeZone is left unmarked at both ends of a crease, so that the
	// laser does not burn through where creases meet.
	SafeZone = 3.0

	DashLength = 7.2
	GapLength  = 7.2
)

// maxUsable bounds the line length for which dashes are laid out, so that
// dash counts stay exact in float64.
const maxUsable = 1e12

// DashLayout describes the dashes on a crease line.
//
// The dashes fill the line between the two safe zones. They are centred,
// so that Offset is left blank at both ends:
//
//	2*Offset + Count*DashLength + (Count-1)*GapLength == Usable
type DashLayout struct {
	Usable float64 // line length minus both safe zones
	Count  int     // number of dashes
	Offset float64 // blank space before the first dash
}

// LayoutDashes places the dashes on a line of the given length, in points.
// The second return value is false if the line is too short for a single
// dash, or longer than about 350000 km; nothing should be drawn in this
// case.
func LayoutDashes(length float64) (DashLayout, bool) {
	usable := length - 2*SafeZone
	if !(usable > 0) || usable > maxUsable {
		return DashLayout{}, false
	}

	count := int(math.Floor((usable + GapLength) / (DashLength + GapLength)))
	if count > 0 && dashedLength(count) > usable {
		count-- // rounding
	} else if dashedLength(count+1) <= usable {
		count++
	}
	if count == 0 {
		return DashLayout{}, false
	}

	return DashLayout{
		Usable: usable,
		Count:  count,
		Offset: (usable - dashedLength(count)) / 2,
	}, true
}

// dashedLength returns the length covered by n dashes and the gaps
// between them.
func dashedLength(n int) float64 {
	return float64(n)*DashLength + float64(n-1)*GapLength
}

// Phase returns the dash phase which, used with the dash array
// [DashLength, GapLength], starts the line with a blank of length Offset.
// The result is in the range [0, DashLength+GapLength).
func (l DashLayout) Phase() float64 {
	period := DashLength + GapLength
	phase := period - math.Mod(l.Offset, period)
	if phase >= period {
		phase -= period
	}
	return phase
}
