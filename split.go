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

// Split extracts a page range from a single PDF file into a new PDF
// file.  Start and End select the zero-based, half-open page range
// [Start, End); the pages keep their relative order.
//
// A Split handles one range per call.  Splitting a document into
// several files takes one call per output file.
type Split struct {
	// Engine overrides the PDF engine used by the operation.
	// If Engine is nil, the pdfcpu-backed default is used.
	Engine Engine

	Start int // first page to extract, zero-based
	End   int // one past the last page to extract
}

// NewSplit returns a split operation for the page range [start, end).
func NewSplit(start, end int) *Split {
	return &Split{Start: start, End: end}
}

func (s *Split) engine() Engine {
	if s.Engine != nil {
		return s.Engine
	}
	return defaultEngine
}

// Execute extracts pages [s.Start, s.End) of the single input file
// into output.  An existing file at output is replaced.
//
// The input must be exactly one file; any other number of inputs fails
// with a *ShapeError.  The range is validated against the document's
// page count before any output I/O happens: if s.Start < 0, s.End
// exceeds the page count, or s.Start >= s.End, Execute fails with a
// *RangeError and writes nothing.
func (s *Split) Execute(inputs []string, output string) error {
	if len(inputs) != 1 {
		return &ShapeError{Op: "split", Want: 1, Got: len(inputs)}
	}
	path := inputs[0]

	eng := s.engine()
	pageCount, err := eng.PageCount(path)
	if err != nil {
		return classifyInput(path, err)
	}

	if s.Start < 0 || s.End > pageCount || s.Start >= s.End {
		return &RangeError{Start: s.Start, End: s.End, PageCount: pageCount}
	}

	return writeAtomic(output, func(tmp string) error {
		return eng.ExtractPages(path, s.Start, s.End, tmp)
	})
}
