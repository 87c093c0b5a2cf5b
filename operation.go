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

// Operation is the common interface of the PDF file operations.
//
// Execute reads the given input files and writes a new PDF file to
// output.  How many input files are expected depends on the concrete
// operation; an operation given the wrong number of inputs fails with
// a *ShapeError (or ErrNoInput for an empty list) before touching the
// file system.
type Operation interface {
	Execute(inputs []string, output string) error
}

// Editor executes a single, swappable Operation.
//
// An Editor always holds exactly one operation.  It adds no behavior
// of its own: calls are forwarded to the held operation unchanged, so
// the operation can be replaced without changing the calling code.
type Editor struct {
	op Operation
}

// NewEditor returns an Editor bound to the given operation.
// NewEditor panics if op is nil.
func NewEditor(op Operation) *Editor {
	if op == nil {
		panic("pdfedit: nil operation")
	}
	return &Editor{op: op}
}

// Operation returns the operation the editor is currently bound to.
func (e *Editor) Operation() Operation {
	return e.op
}

// SetOperation replaces the editor's operation.
// SetOperation panics if op is nil.
func (e *Editor) SetOperation(op Operation) {
	if op == nil {
		panic("pdfedit: nil operation")
	}
	e.op = op
}

// ExecuteOperation runs the editor's current operation on the given
// input files, writing the result to output.  Arguments and the error
// are passed through unchanged.
func (e *Editor) ExecuteOperation(inputs []string, output string) error {
	return e.op.Execute(inputs, output)
}
