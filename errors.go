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
	"io/fs"
	"strconv"
)

// ErrNoInput indicates that an operation was called with an empty list
// of input files.
var ErrNoInput = errors.New("no input files given")

// NotFoundError indicates that an input file does not exist.
type NotFoundError struct {
	Path string
}

func (err *NotFoundError) Error() string {
	return "file " + strconv.Quote(err.Path) + " not found"
}

// InvalidDocumentError indicates that an input file could not be read
// as a PDF document.
type InvalidDocumentError struct {
	Path string
	Err  error
}

func (err *InvalidDocumentError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "invalid PDF document " + strconv.Quote(err.Path) + middle
}

func (err *InvalidDocumentError) Unwrap() error {
	return err.Err
}

// RangeError indicates that a page range does not select a valid,
// non-empty run of pages of the source document.  Start and End are
// zero-based, End is exclusive.
type RangeError struct {
	Start, End int
	PageCount  int
}

func (err *RangeError) Error() string {
	return "page range [" + strconv.Itoa(err.Start) + ", " + strconv.Itoa(err.End) +
		") invalid for document with " + strconv.Itoa(err.PageCount) + " pages"
}

// WriteError indicates that the output file could not be produced.
// The output path is left untouched.
type WriteError struct {
	Path string
	Err  error
}

func (err *WriteError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "cannot write " + strconv.Quote(err.Path) + middle
}

func (err *WriteError) Unwrap() error {
	return err.Err
}

// ShapeError indicates that an operation was given the wrong number of
// input files, for example a list of files where a single file is
// required.
type ShapeError struct {
	Op   string
	Want int
	Got  int
}

func (err *ShapeError) Error() string {
	return err.Op + ": got " + strconv.Itoa(err.Got) + " input files, want " +
		strconv.Itoa(err.Want)
}

// classifyInput converts an error from opening or reading an input file
// into the corresponding error type of this package.
func classifyInput(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: path}
	}
	return &InvalidDocumentError{Path: path, Err: err}
}
