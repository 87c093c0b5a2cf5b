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

// Package pagerange parses the page range syntax of the command line
// tools.  Users give 1-based, inclusive page numbers; the pdfedit
// package wants zero-based, half-open ranges.  A Range holds the
// parsed form and Resolve converts it once the page count is known.
package pagerange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Range selects a contiguous run of pages.  Start and End are
// zero-based inclusive bounds; the value -1 leaves a bound open until
// Resolve fills it in from the document's page count.
type Range struct {
	Start int // first selected page; -1 means the start of the document
	End   int // last selected page; -1 means the end of the document
}

// All selects every page of a document.
var All = Range{Start: -1, End: -1}

// Parse reads a page range:
//
//	all     every page
//	N       page N
//	N-M     pages N through M
//	N-      page N to the end of the document
//	-M      the start of the document through page M
//
// Page numbers are 1-based and inclusive.
func Parse(spec string) (Range, error) {
	spec = strings.TrimSpace(spec)

	if spec == "all" {
		return All, nil
	}

	if strings.Contains(spec, "-") {
		parts := strings.Split(spec, "-")
		if len(parts) != 2 {
			return Range{}, errors.New("invalid range format")
		}

		r := Range{Start: -1, End: -1}
		if parts[0] != "" {
			n, err := parsePageNumber(parts[0])
			if err != nil {
				return Range{}, fmt.Errorf("invalid start page: %w", err)
			}
			r.Start = n - 1 // convert to 0-based
		}
		if parts[1] != "" {
			n, err := parsePageNumber(parts[1])
			if err != nil {
				return Range{}, fmt.Errorf("invalid end page: %w", err)
			}
			r.End = n - 1 // convert to 0-based
		}
		return r, nil
	}

	n, err := parsePageNumber(spec)
	if err != nil {
		return Range{}, fmt.Errorf("invalid page number: %w", err)
	}
	return Range{Start: n - 1, End: n - 1}, nil
}

func parsePageNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.New("page numbers start at 1")
	}
	return n, nil
}

// String returns the range in the syntax accepted by Parse.
func (r Range) String() string {
	if r.Start == -1 && r.End == -1 {
		return "all"
	}
	if r.Start == r.End {
		return strconv.Itoa(r.Start + 1) // convert to 1-based for display
	}
	if r.Start == -1 {
		return fmt.Sprintf("-%d", r.End+1)
	}
	if r.End == -1 {
		return fmt.Sprintf("%d-", r.Start+1)
	}
	return fmt.Sprintf("%d-%d", r.Start+1, r.End+1)
}

// Resolve fills in open bounds from the page count of the document and
// returns the zero-based, half-open interval [start, end).
func (r Range) Resolve(pageCount int) (start, end int) {
	start = r.Start
	if start == -1 {
		start = 0
	}
	last := r.End
	if last == -1 {
		last = pageCount - 1
	}
	return start, last + 1
}
