package pdfio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jteoh/invsplit/internal/model"
)

// Assembler concatenates selected pages from the source PDFs into one output
// document, preserving the given page order exactly.
type Assembler struct {
	conf *pdfcpumodel.Configuration
}

// NewAssembler creates a PDF assembler.
func NewAssembler() *Assembler {
	return &Assembler{conf: pdfcpumodel.NewDefaultConfiguration()}
}

// Assemble writes the ordered page list to outPath. Consecutive pages from
// the same source are collected in one pass; multi-source sequences are
// collected into parts and merged.
func (a *Assembler) Assemble(ctx context.Context, outPath string, pages []model.PageRef) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages to assemble for %s", outPath)
	}

	runs := splitRuns(pages)
	if len(runs) == 1 {
		if err := api.CollectFile(runs[0].sourceID, outPath, runs[0].selection, a.conf); err != nil {
			return fmt.Errorf("failed to collect pages from %s: %w", runs[0].sourceID, err)
		}
		return nil
	}

	tmpDir, err := os.MkdirTemp("", "invsplit-parts-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	parts := make([]string, 0, len(runs))
	for i, run := range runs {
		if err := ctx.Err(); err != nil {
			return err
		}
		part := filepath.Join(tmpDir, fmt.Sprintf("part-%03d.pdf", i))
		if err := api.CollectFile(run.sourceID, part, run.selection, a.conf); err != nil {
			return fmt.Errorf("failed to collect pages from %s: %w", run.sourceID, err)
		}
		parts = append(parts, part)
	}

	if err := api.MergeCreateFile(parts, outPath, false, a.conf); err != nil {
		return fmt.Errorf("failed to merge parts into %s: %w", outPath, err)
	}
	return nil
}

// pageRun is a maximal run of consecutive pages drawn from one source.
type pageRun struct {
	sourceID  string
	selection []string
}

func splitRuns(pages []model.PageRef) []pageRun {
	var runs []pageRun
	for i := 0; i < len(pages); {
		run := pageRun{sourceID: pages[i].SourceID}
		for i < len(pages) && pages[i].SourceID == run.sourceID {
			run.selection = append(run.selection, strconv.Itoa(pages[i].PageNum))
			i++
		}
		runs = append(runs, run)
	}
	return runs
}
