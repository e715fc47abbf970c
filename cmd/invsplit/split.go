package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jteoh/invsplit/internal/cli"
	"github.com/jteoh/invsplit/internal/config"
	"github.com/jteoh/invsplit/internal/engine"
	"github.com/jteoh/invsplit/internal/pdfio"
	"github.com/jteoh/invsplit/internal/report"
	"github.com/jteoh/invsplit/internal/storage"
)

func splitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split the source PDFs into per-company PDFs and reports",
		Long: `Scan every configured source PDF page by page, reconcile companies across
sources, and write one consolidated PDF and one XLSX report per company.

Sources, template, and output locations come from the config file
(split.sources, split.template, split.output_dir) and fall back to the
standard three-source layout.`,
		RunE: runSplit,
	}

	cmd.Flags().StringP("output", "o", "", "output directory (overrides split.output_dir)")
	cmd.Flags().String("template", "", "report template path (overrides split.template)")
	cmd.Flags().Bool("skip-pdfs", false, "skip consolidated PDF assembly")
	cmd.Flags().Bool("skip-reports", false, "skip XLSX report rendering")
	cmd.Flags().Bool("no-ledger", false, "do not record this run in the ledger")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")

	return cmd
}

func runSplit(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSplitConfig()
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputDir = config.ExpandPath(v)
	}
	if v, _ := cmd.Flags().GetString("template"); v != "" {
		cfg.TemplatePath = config.ExpandPath(v)
	}
	skipPDFs, _ := cmd.Flags().GetBool("skip-pdfs")
	skipReports, _ := cmd.Flags().GetBool("skip-reports")
	noLedger, _ := cmd.Flags().GetBool("no-ledger")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	fmt.Println(cli.TitleStyle.Render("Generation started"))

	splitter, err := engine.NewSplitter(
		cfg.Sources,
		pdfio.Opener{},
		pdfio.NewAssembler(),
		report.NewFiller(cfg.TemplatePath),
		engine.Options{
			OutputDir:   cfg.OutputDir,
			SkipPDFs:    skipPDFs,
			SkipReports: skipReports,
		},
	)
	if err != nil {
		return err
	}

	if !noProgress {
		splitter.WithProgress(cli.NewScanProgress(os.Stderr))
	}

	if !noLedger {
		store, storeErr := storage.NewStore(cfg.LedgerPath)
		if storeErr != nil {
			slog.Warn("Failed to open run ledger, continuing without it", "error", storeErr)
		} else {
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Warn("Failed to close run ledger", "error", closeErr)
				}
			}()
			splitter.WithLedger(store)
		}
	}

	summary, err := splitter.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("split run failed: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
		"Generation completed: %d companies from %d pages (%d PDFs, %d reports, %d skipped) in %s",
		summary.Companies, summary.Pages,
		summary.PDFsWritten, summary.ReportsWritten, summary.ReportsSkipped,
		summary.Duration.Round(time.Millisecond))))
	if summary.ReportsSkipped > 0 {
		fmt.Println(cli.WarningStyle.Render(
			fmt.Sprintf("%d report(s) skipped; check the template at %s", summary.ReportsSkipped, cfg.TemplatePath)))
	}
	return nil
}
