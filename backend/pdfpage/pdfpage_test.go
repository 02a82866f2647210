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

package pdfpage

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/miura"
	"seehuhn.de/go/miura/render"
)

func testPattern(t *testing.T) *miura.Pattern {
	t.Helper()
	p, err := miura.New(miura.Params{
		Radius:       12,
		Beta:         3 * math.Pi / 16,
		TargetWidth:  20,
		TargetHeight: 20,
		CellWidth:    2,
		CellHeight:   2,
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWrite(t *testing.T) {
	p := testPattern(t)
	for _, r := range render.Variants {
		t.Run(r.Name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			doc, err := Write(buf, p.Width, p.Height, render.Centimeter)
			if err != nil {
				t.Fatal(err)
			}
			r.Draw(doc, p)
			if err := doc.Close(); err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(16, buf.Len())])
			}
		})
	}
}

func TestColors(t *testing.T) {
	colors := []color.NRGBA{
		render.Black,
		render.Red,
		render.Blue,
		{R: 0x80, G: 0x40, B: 0x20, A: 0xff},
	}
	buf := &bytes.Buffer{}
	doc, err := Write(buf, 1, 1, render.Inch)
	if err != nil {
		t.Fatal(err)
	}
	for i, col := range colors {
		y := float64(i+1) / 8
		doc.AddLine(vec.Vec2{X: 0, Y: y}, vec.Vec2{X: 1, Y: y}, &render.Style{Color: col, Width: 2})
	}
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Error("PDF file is not complete")
	}
}

func TestEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	doc, err := Write(buf, 0, 0, render.Inch)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate(t *testing.T) {
	p := testPattern(t)
	name := filepath.Join(t.TempDir(), "pattern.pdf")
	doc, err := Create(name, p.Width, p.Height, render.Inch)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Unit() != render.Inch {
		t.Errorf("unit = %v, want inch", doc.Unit())
	}
	render.LaserCut.Draw(doc, p)
	if err := doc.Close(); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty PDF file")
	}
}
