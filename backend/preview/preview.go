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

// Package preview renders crease patterns into raster images.
//
// Lines are stroked with butt caps, and dash patterns are applied by the
// package itself, so that the image shows exactly where the laser marks
// the material. The resolution is given by the unit's DotsPerUnit.
package preview

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/miura/render"
)

// minWidth is the smallest stroke width in pixels.
// Thinner lines, like the ones for the laser cutter, are widened to this.
const minWidth = 1.0

// Document is an in-memory raster image.
type Document struct {
	img    *image.NRGBA
	unit   render.Unit
	scale  float64 // pixels per unit
	raster *vector.Rasterizer
}

// New allocates a white image for a drawing of the given size.
func New(width, height float64, u render.Unit) *Document {
	scale := u.DotsPerUnit
	w := max(1, int(math.Ceil(width*scale)))
	h := max(1, int(math.Ceil(height*scale)))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Document{
		img:    img,
		unit:   u,
		scale:  scale,
		raster: vector.NewRasterizer(w, h),
	}
}

// Unit implements the [render.Document] interface.
func (d *Document) Unit() render.Unit {
	return d.unit
}

// AddLine implements the [render.Document] interface.
func (d *Document) AddLine(a, b vec.Vec2, s *render.Style) {
	pxPerPt := d.scale / d.unit.PointsPerUnit
	halfWidth := max(s.Width*pxPerPt, minWidth) / 2

	var dash []float64
	if len(s.Dash) > 0 {
		dash = make([]float64, len(s.Dash))
		for i, x := range s.Dash {
			dash[i] = x * pxPerPt
		}
	}

	a = a.Mul(d.scale)
	b = b.Mul(d.scale)

	// Only the pixels near the line are rasterized.
	pad := halfWidth + 1
	box := image.Rect(
		int(math.Floor(min(a.X, b.X)-pad)),
		int(math.Floor(min(a.Y, b.Y)-pad)),
		int(math.Ceil(max(a.X, b.X)+pad)),
		int(math.Ceil(max(a.Y, b.Y)+pad)),
	).Intersect(d.img.Bounds())
	if box.Empty() {
		return
	}
	origin := vec.Vec2{X: float64(box.Min.X), Y: float64(box.Min.Y)}

	d.raster.Reset(box.Dx(), box.Dy())
	for _, piece := range dashPieces(a.Sub(origin), b.Sub(origin), dash, s.DashPhase*pxPerPt) {
		d.addQuad(piece[0], piece[1], halfWidth)
	}
	d.raster.Draw(d.img, box, image.NewUniform(s.Color), image.Point{})
}

// addQuad adds the outline of a straight, butt-capped stroke to the
// rasterizer path.
func (d *Document) addQuad(from, to vec.Vec2, halfWidth float64) {
	v := to.Sub(from)
	l := v.Length()
	if l == 0 {
		return
	}
	n := vec.Vec2{X: -v.Y / l * halfWidth, Y: v.X / l * halfWidth}

	p1 := from.Add(n)
	p2 := to.Add(n)
	p3 := to.Sub(n)
	p4 := from.Sub(n)
	d.raster.MoveTo(float32(p1.X), float32(p1.Y))
	d.raster.LineTo(float32(p2.X), float32(p2.Y))
	d.raster.LineTo(float32(p3.X), float32(p3.Y))
	d.raster.LineTo(float32(p4.X), float32(p4.Y))
	d.raster.ClosePath()
}

// Image returns the rendered image.
func (d *Document) Image() *image.NRGBA {
	return d.img
}

// Encode writes the image to w in PNG format.
func (d *Document) Encode(w io.Writer) error {
	return png.Encode(w, d.img)
}

// dashPieces splits the line from a to b into the parts where the dash
// pattern is "on". The dash lengths and the phase use the same unit as
// the coordinates. A nil dash array gives the whole line.
func dashPieces(a, b vec.Vec2, dash []float64, phase float64) [][2]vec.Vec2 {
	if len(dash) == 0 {
		return [][2]vec.Vec2{{a, b}}
	}

	pattern := dash
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), dash...), dash...)
	}
	period := 0.0
	for _, x := range pattern {
		period += x
	}
	if period <= 0 {
		return [][2]vec.Vec2{{a, b}}
	}

	// Normalize phase to [0, period)
	phase = math.Mod(phase, period)
	if phase < 0 {
		phase += period
	}

	// Find the starting dash index and the remaining length of this element.
	idx := 0
	for phase >= pattern[idx] {
		phase -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - phase

	v := b.Sub(a)
	length := v.Length()
	var pieces [][2]vec.Vec2
	pos := 0.0
	for pos < length {
		end := min(pos+remaining, length)
		if idx%2 == 0 && end > pos {
			pieces = append(pieces, [2]vec.Vec2{
				a.Add(v.Mul(pos / length)),
				a.Add(v.Mul(end / length)),
			})
		}
		pos = end
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
	}
	return pieces
}
