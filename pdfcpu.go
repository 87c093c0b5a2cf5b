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

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfcpuEngine implements Engine using the pdfcpu library.
type pdfcpuEngine struct{}

// newConfiguration returns the pdfcpu configuration used for all
// calls.  Relaxed validation keeps slightly malformed input files
// readable.
func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func (pdfcpuEngine) PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, newConfiguration())
	if err != nil {
		return 0, err
	}
	return ctx.PageCount, nil
}

func (pdfcpuEngine) Merge(inputs []string, output string) error {
	return api.MergeCreateFile(inputs, output, false, newConfiguration())
}

func (pdfcpuEngine) ExtractPages(path string, start, end int, output string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, newConfiguration())
	if err != nil {
		return err
	}

	// pdfcpu page numbers are 1-based
	pages := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		pages = append(pages, i+1)
	}
	extracted, err := pdfcpu.ExtractPages(ctx, pages, false)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := api.WriteContext(extracted, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
