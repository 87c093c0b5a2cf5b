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

package pdfedit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdfedit/pdfedit/internal/pdftest"
)

func TestPageCount(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	pdftest.MakePDF(t, src, 7, 100, 300)

	n, err := PageCount(src)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("got %d pages; want 7", n)
	}
}

func TestPageCountMissing(t *testing.T) {
	_, err := PageCount(filepath.Join(t.TempDir(), "missing.pdf"))
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %T; want *NotFoundError", err)
	}
}

func TestPageCountGarbage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "garbage.pdf")
	if err := os.WriteFile(src, []byte("this is not a PDF file"), 0666); err != nil {
		t.Fatal(err)
	}

	_, err := PageCount(src)
	var invalid *InvalidDocumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T; want *InvalidDocumentError", err)
	}
}

// TestMergePDFs merges two real files and checks the page count and
// the page order.  The inputs have distinct page heights, so the
// output heights show which file each page came from.
func TestMergePDFs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	output := filepath.Join(dir, "out.pdf")
	pdftest.MakePDF(t, a, 2, 100, 300)
	pdftest.MakePDF(t, b, 3, 100, 500)

	m := NewMerge()
	if err := m.Execute([]string{a, b}, output); err != nil {
		t.Fatal(err)
	}

	if n := pdftest.PageCount(t, output); n != 5 {
		t.Errorf("got %d pages; want 5", n)
	}

	want := []float64{300, 300, 500, 500, 500}
	if diff := cmp.Diff(want, pdftest.PageHeights(t, output)); diff != "" {
		t.Errorf("unexpected page order (-want +got):\n%s", diff)
	}
}

func TestMergeTwiceSameOutput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	output := filepath.Join(dir, "out.pdf")
	pdftest.MakePDF(t, a, 1, 100, 300)
	pdftest.MakePDF(t, b, 2, 100, 500)

	m := NewMerge()
	if err := m.Execute([]string{a, b}, output); err != nil {
		t.Fatal(err)
	}
	first := pdftest.PageHeights(t, output)

	if err := m.Execute([]string{a, b}, output); err != nil {
		t.Fatal(err)
	}
	second := pdftest.PageHeights(t, output)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated merge differs (-first +second):\n%s", diff)
	}
}

func TestMergeRejectsGarbageInput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	garbage := filepath.Join(dir, "garbage.pdf")
	outDir := filepath.Join(dir, "sub")

	pdftest.MakePDF(t, a, 1, 100, 300)
	if err := os.WriteFile(garbage, []byte("%PDF-1.7 but not really"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(outDir, 0755); err != nil {
		t.Fatal(err)
	}

	m := NewMerge()
	err := m.Execute([]string{a, garbage}, filepath.Join(outDir, "out.pdf"))
	var invalid *InvalidDocumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T; want *InvalidDocumentError", err)
	}
	mustBeEmpty(t, outDir)
}

// TestSplitPDF extracts a page range from a real file.  The source
// pages have stepped heights, so the output heights identify exactly
// which pages were extracted.
func TestSplitPDF(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	output := filepath.Join(dir, "out.pdf")
	pdftest.MakePDFSizes(t, src, 100, []float64{200, 300, 400, 500, 600})

	s := NewSplit(1, 4)
	if err := s.Execute([]string{src}, output); err != nil {
		t.Fatal(err)
	}

	if n := pdftest.PageCount(t, output); n != 3 {
		t.Errorf("got %d pages; want 3", n)
	}

	want := []float64{300, 400, 500}
	if diff := cmp.Diff(want, pdftest.PageHeights(t, output)); diff != "" {
		t.Errorf("unexpected pages extracted (-want +got):\n%s", diff)
	}
}

func TestSplitFirstPages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	output := filepath.Join(dir, "out.pdf")
	pdftest.MakePDF(t, src, 10, 100, 300)

	s := NewSplit(0, 5)
	if err := s.Execute([]string{src}, output); err != nil {
		t.Fatal(err)
	}
	if n := pdftest.PageCount(t, output); n != 5 {
		t.Errorf("got %d pages; want 5", n)
	}
}

func TestSplitWholeDocument(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	output := filepath.Join(dir, "out.pdf")
	heights := []float64{200, 300, 400}
	pdftest.MakePDFSizes(t, src, 100, heights)

	s := NewSplit(0, 3)
	if err := s.Execute([]string{src}, output); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(heights, pdftest.PageHeights(t, output)); diff != "" {
		t.Errorf("unexpected pages extracted (-want +got):\n%s", diff)
	}
}

func TestSplitRangeErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	outDir := filepath.Join(dir, "sub")
	pdftest.MakePDF(t, src, 3, 100, 300)
	if err := os.Mkdir(outDir, 0755); err != nil {
		t.Fatal(err)
	}

	s := NewSplit(0, 4)
	err := s.Execute([]string{src}, filepath.Join(outDir, "out.pdf"))
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("got %T; want *RangeError", err)
	}
	if rangeErr.PageCount != 3 {
		t.Errorf("got page count %d; want 3", rangeErr.PageCount)
	}
	mustBeEmpty(t, outDir)
}

// TestEditorSwap runs the merge-then-split workflow through a single
// editor, replacing the operation in between.
func TestEditorSwap(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	merged := filepath.Join(dir, "merged.pdf")
	tail := filepath.Join(dir, "tail.pdf")
	pdftest.MakePDF(t, a, 2, 100, 300)
	pdftest.MakePDF(t, b, 3, 100, 500)

	editor := NewEditor(NewMerge())
	if err := editor.ExecuteOperation([]string{a, b}, merged); err != nil {
		t.Fatal(err)
	}

	editor.SetOperation(NewSplit(2, 5))
	if err := editor.ExecuteOperation([]string{merged}, tail); err != nil {
		t.Fatal(err)
	}

	want := []float64{500, 500, 500}
	if diff := cmp.Diff(want, pdftest.PageHeights(t, tail)); diff != "" {
		t.Errorf("unexpected pages extracted (-want +got):\n%s", diff)
	}
}
