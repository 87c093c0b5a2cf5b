// pdfedit - merge and split tools for PDF files
// Copyright (C) 2026  The pdfedit authors
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

// Package pdftest provides helpers for tests which need real PDF files.
//
// Fixture files are generated with the gofpdf library, and results are
// read back with readers independent of the engine under test, so that
// tests do not verify the engine with itself.
package pdftest

import (
	"fmt"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// MakePDF writes a PDF file with the given number of pages to path.
// All pages are width x height points and carry a short label.
//
// Giving each fixture file its own page size lets tests recognise,
// after merging or splitting, which source file and page an output
// page came from.
func MakePDF(t *testing.T, path string, numPages int, width, height float64) {
	t.Helper()

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for i := 1; i <= numPages; i++ {
		doc.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})
		doc.Text(18, 30, fmt.Sprintf("page %d", i))
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}
}

// MakePDFSizes writes a PDF file to path whose i-th page is
// width x heights[i] points.  Heights must be larger than width, so
// that the portrait orientation leaves them unchanged.
//
// Distinct per-page heights let split tests identify individual pages
// of the source document in the output.
func MakePDFSizes(t *testing.T, path string, width float64, heights []float64) {
	t.Helper()

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for i, h := range heights {
		doc.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: h})
		doc.Text(18, 30, fmt.Sprintf("page %d", i+1))
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}
}

// PageCount returns the number of pages in the PDF file at path,
// read with the ledongthuc/pdf parser.
func PageCount(t *testing.T, path string) int {
	t.Helper()

	f, r, err := pdf.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	return r.NumPage()
}

// PageHeights returns the height of every page of the PDF file at
// path, in points and in page order.
func PageHeights(t *testing.T, path string) []float64 {
	t.Helper()

	dims, err := api.PageDimsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	heights := make([]float64, len(dims))
	for i, d := range dims {
		heights[i] = d.Height
	}
	return heights
}
