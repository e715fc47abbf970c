package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jteoh/invsplit/internal/model"
)

// Template layout: the company name goes into A2, row labels for amounts sit
// in column D (short service codes plus "CHSS Invoice"), amounts go into
// column B, and the grand total row is labeled "Total" in column A.
const (
	nameCell  = "A2"
	labelCol  = 3 // column D, zero-based
	totalCol  = 0 // column A, zero-based
	amountCol = "B"

	primaryRowCode = "CHSS INVOICE"
	totalRowLabel  = "TOTAL"
)

// Filler writes company reports from a template workbook. Each Render opens
// a fresh copy of the template so companies never bleed into each other.
type Filler struct {
	templatePath string
}

// NewFiller creates a filler for the given template workbook path.
func NewFiller(templatePath string) *Filler {
	return &Filler{templatePath: templatePath}
}

// Render fills the template with one company's totals and saves it to
// outPath. A missing template returns ErrTemplateMissing; a missing anchor
// row drops that single value with a notice.
func (f *Filler) Render(ctx context.Context, outPath string, rep Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(f.templatePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateMissing, f.templatePath)
		}
		return fmt.Errorf("failed to stat template: %w", err)
	}

	wb, err := excelize.OpenFile(f.templatePath)
	if err != nil {
		return fmt.Errorf("failed to open template: %w", err)
	}
	defer func() {
		if closeErr := wb.Close(); closeErr != nil {
			slog.Warn("Failed to close template workbook", "error", closeErr)
		}
	}()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return fmt.Errorf("template %s has no sheets", f.templatePath)
	}

	if err := wb.SetCellValue(sheet, nameCell, rep.DisplayName); err != nil {
		return fmt.Errorf("failed to write company name: %w", err)
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read template rows: %w", err)
	}

	// One forward scan of the label column, reused for every write below.
	codeRow := make(map[string]int)
	for i, row := range rows {
		if labelCol < len(row) {
			if code := strings.ToUpper(strings.TrimSpace(row[labelCol])); code != "" {
				codeRow[code] = i + 1
			}
		}
	}

	writeAmount := func(rowNum int, amount decimal.Decimal) error {
		cell := fmt.Sprintf("%s%d", amountCol, rowNum)
		// Written as a number so the template's cell formats apply; exact
		// arithmetic stops at this boundary.
		return wb.SetCellValue(sheet, cell, amount.InexactFloat64())
	}

	// Category totals in fixed priority order for deterministic output.
	for _, cat := range model.AllCategories() {
		amt, ok := rep.CategoryTotals[cat]
		if !ok {
			continue
		}
		rowNum, ok := codeRow[cat.ReportCode()]
		if !ok {
			slog.Warn("No anchor row for category, dropping amount",
				"company", rep.DisplayName,
				"category", cat,
				"code", cat.ReportCode())
			continue
		}
		if err := writeAmount(rowNum, amt); err != nil {
			return fmt.Errorf("failed to write %s amount: %w", cat, err)
		}
	}

	if rep.PrimaryTotal.Valid {
		if rowNum, ok := codeRow[primaryRowCode]; ok {
			if err := writeAmount(rowNum, rep.PrimaryTotal.Decimal); err != nil {
				return fmt.Errorf("failed to write primary total: %w", err)
			}
		} else {
			slog.Warn("No anchor row for primary total, dropping amount",
				"company", rep.DisplayName,
				"code", primaryRowCode)
		}
	}

	if grand := rep.GrandTotal(); grand.IsPositive() {
		if rowNum, ok := totalRow(rows); ok {
			if err := writeAmount(rowNum, grand); err != nil {
				return fmt.Errorf("failed to write grand total: %w", err)
			}
		} else {
			slog.Warn("No Total row found in template",
				"company", rep.DisplayName)
		}
	}

	if err := wb.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// totalRow finds the 1-based row whose first column equals "Total",
// case-insensitively.
func totalRow(rows [][]string) (int, bool) {
	for i, row := range rows {
		if totalCol < len(row) && strings.EqualFold(strings.TrimSpace(row[totalCol]), totalRowLabel) {
			return i + 1, true
		}
	}
	return 0, false
}
