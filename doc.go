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

// Package pdfedit provides merging and splitting of PDF files.
//
// The package is organised around the Operation interface.  The two
// implementations, Merge and Split, copy pages between PDF files; an
// Editor holds one operation and forwards calls to it, so that callers
// can swap the operation without changing their own code:
//
//	editor := pdfedit.NewEditor(pdfedit.NewMerge())
//	err := editor.ExecuteOperation([]string{"a.pdf", "b.pdf"}, "out.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	editor.SetOperation(pdfedit.NewSplit(0, 5))
//	err = editor.ExecuteOperation([]string{"out.pdf"}, "first5.pdf")
//
// All byte-level PDF work is delegated to the pdfcpu library.  Output
// files are written atomically: the result is assembled in a temporary
// file in the output directory and renamed into place, so a failed
// operation never leaves a partial output file behind.
//
// The package does not log and does not retry.  Every failure is
// reported to the caller as one of the error types defined in this
// package, so that callers can distinguish missing input files,
// unparseable documents, invalid page ranges and write failures.
package pdfedit
