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
	"os"
	"path/filepath"
)

// Engine provides the low-level PDF file operations the operations of
// this package are built on.  The default engine is backed by the
// pdfcpu library; tests substitute their own implementations.
//
// Engine methods return the underlying errors unclassified.  Callers
// in this package turn them into the package's error types.
type Engine interface {
	// PageCount returns the number of pages in the PDF file at path.
	PageCount(path string) (int, error)

	// Merge writes a new PDF file to output containing all pages of
	// the given input files, in order.
	Merge(inputs []string, output string) error

	// ExtractPages writes a new PDF file to output containing pages
	// [start, end) of the PDF file at path.  Both bounds are
	// zero-based and must be valid for the document.
	ExtractPages(path string, start, end int, output string) error
}

// defaultEngine is used by operations whose Engine field is nil.
var defaultEngine Engine = pdfcpuEngine{}

// PageCount returns the number of pages in the PDF file at path,
// using the default engine.  Errors are classified like the errors of
// an Execute call: *NotFoundError for a missing file,
// *InvalidDocumentError for a file that cannot be read as a PDF.
func PageCount(path string) (int, error) {
	n, err := defaultEngine.PageCount(path)
	if err != nil {
		return 0, classifyInput(path, err)
	}
	return n, nil
}

// writeAtomic produces the file at output by calling write with a
// temporary path in the same directory and renaming the temporary file
// into place afterwards.  On any failure the temporary file is removed
// and the output path is left untouched.
func writeAtomic(output string, write func(tmp string) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(output), "."+filepath.Base(output)+"-*")
	if err != nil {
		return &WriteError{Path: output, Err: err}
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: output, Err: err}
	}

	if err := write(tmpName); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: output, Err: err}
	}

	if err := os.Rename(tmpName, output); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: output, Err: err}
	}
	return nil
}
