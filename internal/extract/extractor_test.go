package extract

import (
	"testing"

	"github.com/jteoh/invsplit/internal/model"
	"github.com/stretchr/testify/assert"
)

// Literal page texts in the shapes the three billing systems render.
const samplePrimaryInvoicePage = `CHSS MANAGEMENT SDN BHD
Invoice
To : Acme Corp   Doc 001   Date 02/01/2024
Description   Qty   Amount
Monthly retainer   1   1,000.00
Total payable inclusive of service tax : 1,000.00`

const sampleCategorizedInvoicePage = `SHAREBIZ SERVICES
Invoice
To  : Acme.Corp (123)   Service Type : "TAX"  something
Item   Amount
Tax filing FY2023   250.50
Total : 250.50`

const sampleStatementPage = `SHAREBIZ SERVICES
Statement of Account
Acme Corp Ltd   As at 31/12/2023
Date   Ref   Amount
01/11/2023   INV-99   300.00`

func TestPrimaryInvoiceExtractor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Fields
	}{
		{
			name: "standard layout",
			text: samplePrimaryInvoicePage,
			want: Fields{Company: "Acme Corp", Amount: "1,000.00"},
		},
		{
			name: "two space label variant",
			text: "Invoice\nTo  : Beta Sdn Bhd Doc 002\nTotal payable inclusive of service tax : 88.00",
			want: Fields{Company: "Beta Sdn Bhd", Amount: "88.00"},
		},
		{
			name: "no doc marker keeps line remainder",
			text: "Invoice\nTo : Gamma Holdings\nTotal payable inclusive of service tax : 12.00",
			want: Fields{Company: "Gamma Holdings", Amount: "12.00"},
		},
		{
			name: "fallback to To line when Invoice heading missing",
			text: "Some header\nTo : Delta Partners   Doc 003\nTotal payable inclusive of service tax : 5.00",
			want: Fields{Company: "Delta Partners", Amount: "5.00"},
		},
		{
			name: "amount absent",
			text: "Invoice\nTo : Epsilon Co   Doc 004",
			want: Fields{Company: "Epsilon Co"},
		},
		{
			name: "company absent",
			text: "Invoice\nAttn finance department\nTotal payable inclusive of service tax : 7.00",
			want: Fields{Amount: "7.00"},
		},
		{
			name: "empty input",
			text: "",
			want: Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrimaryInvoiceExtractor{}.Extract(tt.text))
		})
	}
}

func TestCategorizedInvoiceExtractor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Fields
	}{
		{
			name: "quoted service type",
			text: sampleCategorizedInvoicePage,
			want: Fields{Company: "Acme.Corp", ServiceType: "TAX", Amount: "250.50"},
		},
		{
			name: "unquoted service type",
			text: "Invoice\nTo : Beta Sdn Bhd (77)   Service Type : Accounting  ref 9\nTotal : 40.00",
			want: Fields{Company: "Beta Sdn Bhd", ServiceType: "Accounting", Amount: "40.00"},
		},
		{
			name: "no parenthesis keeps full remainder",
			text: "Invoice\nTo : Gamma Holdings\nTotal : 9.00",
			want: Fields{Company: "Gamma Holdings", Amount: "9.00"},
		},
		{
			name: "fallback line with two space label",
			text: "Header only\nTo  : Delta Partners (5)   Service Type : BPO Ops  x\nTotal : 3.00",
			want: Fields{Company: "Delta Partners", ServiceType: "BPO Ops", Amount: "3.00"},
		},
		{
			name: "service type absent",
			text: "Invoice\nTo : Epsilon Co (9)\nTotal : 2.00",
			want: Fields{Company: "Epsilon Co", Amount: "2.00"},
		},
		{
			name: "empty input",
			text: "",
			want: Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizedInvoiceExtractor{}.Extract(tt.text))
		})
	}
}

func TestStatementExtractor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Fields
	}{
		{
			name: "first column of the line after the heading",
			text: sampleStatementPage,
			want: Fields{Company: "Acme Corp Ltd"},
		},
		{
			name: "single column line",
			text: "Statement of Account\nBeta Sdn Bhd",
			want: Fields{Company: "Beta Sdn Bhd"},
		},
		{
			name: "heading missing",
			text: "Some unrelated page",
			want: Fields{},
		},
		{
			name: "heading on last line",
			text: "Statement of Account",
			want: Fields{},
		},
		{
			name: "empty input",
			text: "",
			want: Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatementExtractor{}.Extract(tt.text))
		})
	}
}

func TestForKind(t *testing.T) {
	assert.IsType(t, PrimaryInvoiceExtractor{}, ForKind(model.SourcePrimaryInvoice))
	assert.IsType(t, CategorizedInvoiceExtractor{}, ForKind(model.SourceCategorizedInvoice))
	assert.IsType(t, StatementExtractor{}, ForKind(model.SourceStatementOfAccount))
}
