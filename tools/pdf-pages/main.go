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

// Pdf-pages prints the number of pages in PDF files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdfedit/pdfedit"
)

func main() {
	dims := flag.Bool("dims", false, "also print the size of every page")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "error: no input files given")
		flag.Usage()
		os.Exit(1)
	}

	exitCode := 0
	for _, fname := range flag.Args() {
		n, err := pdfedit.PageCount(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
			continue
		}
		fmt.Printf("%s: %d pages\n", fname, n)

		if *dims {
			pageDims, err := api.PageDimsFile(fname)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				exitCode = 1
				continue
			}
			for i, d := range pageDims {
				fmt.Printf("  page %d: %.2f x %.2f pt\n", i+1, d.Width, d.Height)
			}
		}
	}
	os.Exit(exitCode)
}
