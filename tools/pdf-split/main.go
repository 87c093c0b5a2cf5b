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

// Pdf-split extracts pages from a PDF file.
//
// In the default mode one page range is written to one output file.
// With -each, every selected page is written to a file of its own.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfedit/pdfedit"
	"github.com/pdfedit/pdfedit/tools/internal/buildinfo"
	"github.com/pdfedit/pdfedit/tools/internal/pagerange"
	"github.com/pdfedit/pdfedit/tools/internal/profile"
)

type config struct {
	output string
	pages  string
	each   bool
	force  bool
}

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")

	var cfg config
	flag.StringVar(&cfg.output, "o", "", "output file, or output directory with -each")
	flag.StringVar(&cfg.pages, "pages", "all", "page `range` to extract (1-based: 5, 2-7, 3-, -5, all)")
	flag.BoolVar(&cfg.each, "each", false, "write every selected page to its own file")
	flag.BoolVar(&cfg.force, "f", false, "overwrite output files if they exist")
	version := flag.Bool("version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-split — extract pages from a PDF file\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pdf-split"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-split [options] <file.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-split -pages 2-7 -o part.pdf doc.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-split -pages 3- -o tail.pdf doc.pdf\n")
		fmt.Fprintf(os.Stderr, "  pdf-split -each -o pages doc.pdf\n")
	}

	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("pdf-split"))
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg, flag.Arg(0), *cpuprofile, *memprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config, input, cpuprofile, memprofile string) error {
	stop, err := profile.Start(cpuprofile, memprofile)
	if err != nil {
		return err
	}
	defer stop()

	r, err := pagerange.Parse(cfg.pages)
	if err != nil {
		return err
	}

	// open-ended ranges need the page count before the range can be
	// turned into fixed bounds
	pageCount, err := pdfedit.PageCount(input)
	if err != nil {
		return err
	}
	start, end := r.Resolve(pageCount)

	if cfg.each {
		return splitEach(input, cfg.output, start, end, cfg.force)
	}
	return splitRange(input, cfg.output, start, end, cfg.force)
}

func splitRange(input, output string, start, end int, force bool) error {
	if output == "" {
		output = "out.pdf"
	}
	if err := checkOverwrite(output, force); err != nil {
		return err
	}

	editor := pdfedit.NewEditor(pdfedit.NewSplit(start, end))
	return editor.ExecuteOperation([]string{input}, output)
}

// splitEach writes one output file per selected page, named after the
// original page numbers: page_001.pdf, page_002.pdf, ...
func splitEach(input, dir string, start, end int, force bool) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	editor := pdfedit.NewEditor(pdfedit.NewSplit(start, start+1))
	for page := start; page < end; page++ {
		output := filepath.Join(dir, fmt.Sprintf("page_%03d.pdf", page+1))
		if err := checkOverwrite(output, force); err != nil {
			return err
		}
		editor.SetOperation(pdfedit.NewSplit(page, page+1))
		if err := editor.ExecuteOperation([]string{input}, output); err != nil {
			return err
		}
	}
	return nil
}

func checkOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return fmt.Errorf("file %s already exists (use -f to overwrite)", path)
	}
	return nil
}
