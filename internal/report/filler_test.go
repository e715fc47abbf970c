package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jteoh/invsplit/internal/model"
)

// writeTemplate creates a minimal template workbook mirroring the production
// layout: codes in column D, amounts in column B, grand total row labeled
// "Total" in column A.
func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)

	labels := map[string]string{
		"D3": "TAX",
		"D4": "ACC",
		"D5": "BPO",
		"D6": "SEC",
		"D7": "OTHERS",
		"D8": "CHSS Invoice",
	}
	for cell, v := range labels {
		require.NoError(t, wb.SetCellValue(sheet, cell, v))
	}
	require.NoError(t, wb.SetCellValue(sheet, "A9", "Total"))

	path := filepath.Join(dir, "Template.xlsx")
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())
	return path
}

func cellValue(t *testing.T, path, cell string) string {
	t.Helper()
	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, wb.Close()) }()

	v, err := wb.GetCellValue(wb.GetSheetName(0), cell)
	require.NoError(t, err)
	return v
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFillerRendersCompanyReport(t *testing.T) {
	dir := t.TempDir()
	filler := NewFiller(writeTemplate(t, dir))
	outPath := filepath.Join(dir, "Acme Corp.xlsx")

	err := filler.Render(context.Background(), outPath, Report{
		DisplayName: "Acme Corp",
		CategoryTotals: map[model.ServiceCategory]decimal.Decimal{
			model.CategoryTax: d("250.50"),
		},
		PrimaryTotal: decimal.NullDecimal{Decimal: d("1000.00"), Valid: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", cellValue(t, outPath, "A2"))
	assert.Equal(t, "250.5", cellValue(t, outPath, "B3"))
	assert.Equal(t, "1000", cellValue(t, outPath, "B8"))
	assert.Equal(t, "1250.5", cellValue(t, outPath, "B9"))
}

func TestFillerWritesEveryCategoryRow(t *testing.T) {
	dir := t.TempDir()
	filler := NewFiller(writeTemplate(t, dir))
	outPath := filepath.Join(dir, "out.xlsx")

	err := filler.Render(context.Background(), outPath, Report{
		DisplayName: "Beta Sdn Bhd",
		CategoryTotals: map[model.ServiceCategory]decimal.Decimal{
			model.CategoryTax:       d("1.00"),
			model.CategoryAccount:   d("2.00"),
			model.CategoryBPO:       d("3.00"),
			model.CategorySecretary: d("4.00"),
			model.CategoryOthers:    d("5.00"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "1", cellValue(t, outPath, "B3"))
	assert.Equal(t, "2", cellValue(t, outPath, "B4"))
	assert.Equal(t, "3", cellValue(t, outPath, "B5"))
	assert.Equal(t, "4", cellValue(t, outPath, "B6"))
	assert.Equal(t, "5", cellValue(t, outPath, "B7"))
	assert.Equal(t, "15", cellValue(t, outPath, "B9"))
}

func TestFillerDropsAmountWithoutAnchorRow(t *testing.T) {
	dir := t.TempDir()

	// Template with no SEC row.
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetCellValue(sheet, "D3", "TAX"))
	require.NoError(t, wb.SetCellValue(sheet, "A5", "Total"))
	tplPath := filepath.Join(dir, "Template.xlsx")
	require.NoError(t, wb.SaveAs(tplPath))
	require.NoError(t, wb.Close())

	outPath := filepath.Join(dir, "out.xlsx")
	err := NewFiller(tplPath).Render(context.Background(), outPath, Report{
		DisplayName: "Acme Corp",
		CategoryTotals: map[model.ServiceCategory]decimal.Decimal{
			model.CategoryTax:       d("10.00"),
			model.CategorySecretary: d("90.00"),
		},
	})
	require.NoError(t, err)

	// TAX lands, SEC is dropped, but the grand total still counts both.
	assert.Equal(t, "10", cellValue(t, outPath, "B3"))
	assert.Equal(t, "100", cellValue(t, outPath, "B5"))
}

func TestFillerSkipsZeroGrandTotal(t *testing.T) {
	dir := t.TempDir()
	filler := NewFiller(writeTemplate(t, dir))
	outPath := filepath.Join(dir, "out.xlsx")

	err := filler.Render(context.Background(), outPath, Report{DisplayName: "Acme Corp"})
	require.NoError(t, err)

	assert.Empty(t, cellValue(t, outPath, "B9"))
}

func TestFillerMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	filler := NewFiller(filepath.Join(dir, "nope.xlsx"))
	outPath := filepath.Join(dir, "out.xlsx")

	err := filler.Render(context.Background(), outPath, Report{DisplayName: "Acme Corp"})
	assert.ErrorIs(t, err, ErrTemplateMissing)
	assert.NoFileExists(t, outPath)
}

func TestGrandTotal(t *testing.T) {
	rep := Report{
		CategoryTotals: map[model.ServiceCategory]decimal.Decimal{
			model.CategoryTax: d("250.50"),
			model.CategoryBPO: d("0.25"),
		},
		PrimaryTotal: decimal.NullDecimal{Decimal: d("1000.00"), Valid: true},
	}
	assert.Equal(t, "1250.75", rep.GrandTotal().String())

	assert.True(t, Report{}.GrandTotal().IsZero())
}
