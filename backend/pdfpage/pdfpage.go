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

// Package pdfpage draws crease patterns onto a single PDF page.
//
// The page has exactly the size of the pattern. PDF user space is
// measured in points with the origin in the bottom-left corner; the
// document flips the y-axis so that pattern coordinates can be used
// unchanged.
package pdfpage

import (
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/miura/render"
)

// Document is a PDF page which lines can be added to.
type Document struct {
	page *document.Page
	unit render.Unit
}

// Create starts a new PDF file with the given name, containing one page
// of the given size.
func Create(fileName string, width, height float64, u render.Unit) (*Document, error) {
	page, err := document.CreateSinglePage(fileName, pageSize(width, height, u), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return newDocument(page, height, u), nil
}

// Write starts a new PDF file on w, containing one page of the given size.
func Write(w io.Writer, width, height float64, u render.Unit) (*Document, error) {
	page, err := document.WriteSinglePage(w, pageSize(width, height, u), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return newDocument(page, height, u), nil
}

func pageSize(width, height float64, u render.Unit) *pdf.Rectangle {
	return &pdf.Rectangle{
		URx: width * u.PointsPerUnit,
		URy: height * u.PointsPerUnit,
	}
}

func newDocument(page *document.Page, height float64, u render.Unit) *Document {
	// PDF origin is bottom-left; patterns use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height * u.PointsPerUnit})
	page.SetLineCap(graphics.LineCapButt)
	return &Document{page: page, unit: u}
}

// Unit implements the [render.Document] interface.
func (d *Document) Unit() render.Unit {
	return d.unit
}

// AddLine implements the [render.Document] interface.
//
// Errors are recorded by the page and reported by Close.
func (d *Document) AddLine(a, b vec.Vec2, s *render.Style) {
	ppu := d.unit.PointsPerUnit
	page := d.page

	page.SetStrokeColor(color.DeviceRGB{
		float64(s.Color.R) / 255,
		float64(s.Color.G) / 255,
		float64(s.Color.B) / 255,
	})
	page.SetLineWidth(s.Width)
	page.SetLineDash(s.Dash, s.DashPhase)

	page.MoveTo(a.X*ppu, a.Y*ppu)
	page.LineTo(b.X*ppu, b.Y*ppu)
	page.Stroke()
}

// Close writes the page and finishes the PDF file.
func (d *Document) Close() error {
	return d.page.Close()
}
