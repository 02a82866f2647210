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

package clip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestLine(t *testing.T) {
	r := rect.Rect{LLx: 4, LLy: 4, URx: 10, URy: 8}
	type result struct {
		A, B vec.Vec2
		OK   bool
	}
	cases := []struct {
		name string
		a, b vec.Vec2
		want result
	}{
		{
			name: "inside",
			a:    vec.Vec2{X: 5, Y: 5}, b: vec.Vec2{X: 7, Y: 7},
			want: result{vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 7, Y: 7}, true},
		},
		{
			name: "outside",
			a:    vec.Vec2{X: 1, Y: 5}, b: vec.Vec2{X: 3, Y: 12},
			want: result{OK: false},
		},
		{
			name: "corner",
			a:    vec.Vec2{X: 7, Y: 9}, b: vec.Vec2{X: 11, Y: 4},
			want: result{vec.Vec2{X: 7.8, Y: 8}, vec.Vec2{X: 10, Y: 5.25}, true},
		},
		{
			name: "one end outside",
			a:    vec.Vec2{X: 5, Y: 6}, b: vec.Vec2{X: 12, Y: 6},
			want: result{vec.Vec2{X: 5, Y: 6}, vec.Vec2{X: 10, Y: 6}, true},
		},
		{
			name: "crossing",
			a:    vec.Vec2{X: 1, Y: 5}, b: vec.Vec2{X: 4, Y: 8},
			want: result{vec.Vec2{X: 4, Y: 8}, vec.Vec2{X: 4, Y: 8}, true},
		},
		{
			name: "diagonal",
			a:    vec.Vec2{X: 2, Y: 2}, b: vec.Vec2{X: 12, Y: 12},
			want: result{vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 8, Y: 8}, true},
		},
		{
			name: "both sides",
			a:    vec.Vec2{X: 0, Y: 6}, b: vec.Vec2{X: 14, Y: 6},
			want: result{vec.Vec2{X: 4, Y: 6}, vec.Vec2{X: 10, Y: 6}, true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, b, ok := Line(c.a, c.b, r)
			got := result{a, b, ok}
			if !ok {
				got = result{}
			}
			if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
				t.Errorf("unexpected result (-want +got):\n%s", d)
			}
		})
	}
}
