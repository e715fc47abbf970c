package extract

// primaryTotalMarker precedes the payable amount on primary invoice pages.
const primaryTotalMarker = "Total payable inclusive of service tax :"

// PrimaryInvoiceExtractor handles the baseline invoice layout: the addressee
// line follows the "Invoice" heading, the company name sits between the
// "To :" label and the document number, and the payable total follows a fixed
// marker further down the page.
type PrimaryInvoiceExtractor struct{}

// Extract recovers the company name and total amount from one page. The
// service type field is always absent for this layout.
func (PrimaryInvoiceExtractor) Extract(pageText string) Fields {
	if pageText == "" {
		return Fields{}
	}

	lines := splitLines(pageText)
	target := lineAfter(lines, "Invoice")
	if target == "" {
		for _, line := range lines {
			if containsAny(line, "To : ") {
				target = line
				break
			}
		}
	}

	var company string
	if target != "" {
		if after, ok := afterLabel(target, "To  : ", "To : "); ok {
			company = cutAt(after, " Doc")
		}
	}

	amount, _ := LocateAmount(pageText, primaryTotalMarker)
	return Fields{Company: company, Amount: amount}
}
