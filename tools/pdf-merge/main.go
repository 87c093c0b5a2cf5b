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

// Pdf-merge concatenates PDF files.
//
// The pages of the input files are copied into a single new document,
// in command line order.  Inputs are validated before the output file
// is written, so a bad input never leaves a partial output behind.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfedit/pdfedit"
)

func main() {
	out := flag.String("o", "out.pdf", "output file name")
	force := flag.Bool("f", false, "overwrite output file if it exists")
	flag.Parse()

	if len(flag.Args()) < 1 {
		fmt.Fprintln(os.Stderr, "error: no input files given")
		flag.Usage()
		os.Exit(1)
	}

	if !*force {
		if _, err := os.Stat(*out); !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "error: output file %q already exists\n", *out)
			os.Exit(1)
		}
	}

	editor := pdfedit.NewEditor(pdfedit.NewMerge())
	err := editor.ExecuteOperation(flag.Args(), *out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
