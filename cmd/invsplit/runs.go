package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jteoh/invsplit/internal/cli"
	"github.com/jteoh/invsplit/internal/config"
	"github.com/jteoh/invsplit/internal/storage"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent split runs from the ledger",
		RunE:  runRuns,
	}
	cmd.Flags().IntP("limit", "n", 20, "maximum number of runs to show")
	return cmd
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadSplitConfig()
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := storage.NewStore(cfg.LedgerPath)
	if err != nil {
		return fmt.Errorf("failed to open run ledger %s: %w", cfg.LedgerPath, err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close run ledger", "error", closeErr)
		}
	}()

	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No runs recorded yet."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Recent runs"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tSTATUS\tPAGES\tCOMPANIES\tPDFS\tREPORTS\tSKIPPED")
	for _, r := range runs {
		status := "running"
		if r.CompletedAt != nil {
			status = "done"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			status,
			r.Pages, r.Companies, r.PDFsWritten, r.ReportsWritten, r.ReportsSkipped)
	}
	return w.Flush()
}
