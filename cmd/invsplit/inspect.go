package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jteoh/invsplit/internal/cli"
	"github.com/jteoh/invsplit/internal/extract"
	"github.com/jteoh/invsplit/internal/model"
	"github.com/jteoh/invsplit/internal/pdfio"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <kind> <file.pdf>",
		Short: "Preview extraction for one source PDF without writing anything",
		Long: `Run the extractor for a source kind over every page of a PDF and print
what the pipeline would see: raw company, normalized key, category, amount.

Kinds: primary_invoice, categorized_invoice, statement_of_account

Examples:
  invsplit inspect primary_invoice "input/INVOICE - CHSS.pdf"
  invsplit inspect statement_of_account "input/SOA - SHAREBIZ.pdf"`,
		Args: cobra.ExactArgs(2),
		RunE: runInspect,
	}
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseSourceKind(args[0])
	if err != nil {
		return err
	}
	path := args[1]

	src, err := pdfio.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	extractor := extract.ForKind(kind)

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s (%d pages, %s)", path, src.NumPages(), kind)))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAGE\tCOMPANY\tKEY\tCATEGORY\tAMOUNT")

	for pageNum := 1; pageNum <= src.NumPages(); pageNum++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		text, err := src.PageText(pageNum)
		if err != nil {
			fmt.Fprintf(w, "%d\t<unreadable: %v>\t\t\t\n", pageNum, err)
			continue
		}
		fields := extractor.Extract(text)
		amount := "-"
		if parsed := extract.ParseAmount(fields.Amount); parsed.Valid {
			amount = parsed.Decimal.StringFixed(2)
		}
		company := fields.Company
		if company == "" {
			company = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			pageNum,
			company,
			extract.NormalizeCompanyKey(fields.Company),
			extract.NormalizeServiceType(fields.ServiceType),
			amount)
	}
	return w.Flush()
}
