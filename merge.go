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

// Merge concatenates the pages of an ordered list of PDF files into a
// single new PDF file.  The output page order is the input file order,
// then the page order within each file.
//
// The zero value is a valid merge operation using the default engine.
type Merge struct {
	// Engine overrides the PDF engine used by the operation.
	// If Engine is nil, the pdfcpu-backed default is used.
	Engine Engine
}

// NewMerge returns a merge operation using the default engine.
func NewMerge() *Merge {
	return &Merge{}
}

func (m *Merge) engine() Engine {
	if m.Engine != nil {
		return m.Engine
	}
	return defaultEngine
}

// Execute merges the given input files, in order, into output.  An
// existing file at output is replaced.
//
// All input files are validated before any output I/O happens: if any
// input is missing (*NotFoundError) or cannot be read as a PDF
// (*InvalidDocumentError), no file is written and an existing file at
// output is not touched.  An empty input list fails with ErrNoInput.
func (m *Merge) Execute(inputs []string, output string) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}

	eng := m.engine()
	for _, path := range inputs {
		if _, err := eng.PageCount(path); err != nil {
			return classifyInput(path, err)
		}
	}

	return writeAtomic(output, func(tmp string) error {
		return eng.Merge(inputs, tmp)
	})
}
