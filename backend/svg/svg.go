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

// Package svg writes drawings in SVG format.
//
// The drawing has its physical size set in the document's unit, and a
// view box measured in points. Stroke widths and dash arrays can thus be
// used without conversion.
package svg

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
	"zappem.net/pub/graphics/svgof"

	"seehuhn.de/go/miura/render"
)

// Document is an SVG drawing which is written while lines are added.
type Document struct {
	canvas *svgof.SVG
	out    *errWriter
	unit   render.Unit
}

// New starts an SVG drawing of the given size on w.
// The drawing is complete once Close has been called.
func New(w io.Writer, width, height float64, u render.Unit) *Document {
	out := &errWriter{w: bufio.NewWriter(w)}
	canvas := svgof.New(out)
	canvas.Decimals = 4

	ppu := u.PointsPerUnit
	canvas.StartviewUnit(width, height, u.Name, 0, 0, width*ppu, height*ppu)
	return &Document{canvas: canvas, out: out, unit: u}
}

// Unit implements the [render.Document] interface.
func (d *Document) Unit() render.Unit {
	return d.unit
}

// AddLine implements the [render.Document] interface.
func (d *Document) AddLine(a, b vec.Vec2, s *render.Style) {
	ppu := d.unit.PointsPerUnit
	d.canvas.Line(a.X*ppu, a.Y*ppu, b.X*ppu, b.Y*ppu, style(s))
}

// Close finishes the drawing and flushes all output.
// It does not close the underlying writer.
func (d *Document) Close() error {
	d.canvas.End()
	if d.out.err != nil {
		return d.out.err
	}
	return d.out.w.Flush()
}

// errWriter keeps the first write error and discards all output after it.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	var n int
	n, w.err = w.w.Write(p)
	return n, w.err
}

func style(s *render.Style) string {
	parts := []string{
		"stroke:" + hexColor(s.Color),
		"stroke-width:" + num(s.Width),
		"stroke-linecap:butt",
		"fill:none",
	}
	if len(s.Dash) > 0 {
		dash := make([]string, len(s.Dash))
		for i, x := range s.Dash {
			dash[i] = num(x)
		}
		parts = append(parts,
			"stroke-dasharray:"+strings.Join(dash, ","),
			"stroke-dashoffset:"+num(s.DashPhase))
	}
	if s.Color.A != 255 {
		parts = append(parts, "stroke-opacity:"+num(float64(s.Color.A)/255))
	}
	return strings.Join(parts, ";")
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// num formats x with at most 4 decimal places.
func num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
