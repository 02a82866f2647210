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

package main

import (
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/miura"
	"seehuhn.de/go/miura/backend/pdfpage"
	"seehuhn.de/go/miura/backend/preview"
	"seehuhn.de/go/miura/backend/svg"
	"seehuhn.de/go/miura/render"
)

// output is a file format for the rendered patterns.
type output struct {
	ext   string
	write func(fileName string, p *miura.Pattern, r *render.Renderer, u render.Unit) error
}

var allOutputs = []*output{
	{ext: "svg", write: writeSVG},
	{ext: "pdf", write: writePDF},
	{ext: "png", write: writePNG},
}

// selectOutputs returns the outputs with the given names.
// If no names are given, SVG output is used.
func selectOutputs(names []string) ([]*output, error) {
	if len(names) == 0 {
		return allOutputs[:1], nil
	}
	var res []*output
names:
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		for _, out := range allOutputs {
			if out.ext == name {
				res = append(res, out)
				continue names
			}
		}
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return res, nil
}

func writeSVG(fileName string, p *miura.Pattern, r *render.Renderer, u render.Unit) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}

	doc := svg.New(f, p.Width, p.Height, u)
	r.Draw(doc, p)
	err = doc.Close()
	return closeOrRemove(f, fileName, err)
}

func writePDF(fileName string, p *miura.Pattern, r *render.Renderer, u render.Unit) error {
	doc, err := pdfpage.Create(fileName, p.Width, p.Height, u)
	if err != nil {
		os.Remove(fileName)
		return err
	}
	r.Draw(doc, p)
	err = doc.Close()
	if err != nil {
		os.Remove(fileName)
		return err
	}
	return nil
}

func writePNG(fileName string, p *miura.Pattern, r *render.Renderer, u render.Unit) error {
	doc := preview.New(p.Width, p.Height, u)
	r.Draw(doc, p)

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = doc.Encode(f)
	return closeOrRemove(f, fileName, err)
}

// closeOrRemove closes f. If err is non-nil or closing fails, the
// incomplete file is removed and the error is returned.
func closeOrRemove(f *os.File, fileName string, err error) error {
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fileName)
	}
	return err
}
