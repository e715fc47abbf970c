package extract

import "strings"

// categorizedTotalMarker precedes the line-item total on itemized invoice
// pages.
const categorizedTotalMarker = "Total :"

// serviceTypeLabel precedes the service type on the addressee line.
const serviceTypeLabel = "Service Type :"

// CategorizedInvoiceExtractor handles the service-type itemized invoice
// layout. It shares the addressee-line location strategy with the primary
// layout but the company name is truncated at the registration number
// parenthesis, and the same line also carries the service type.
type CategorizedInvoiceExtractor struct{}

// Extract recovers the company name, service type, and item total from one
// page.
func (CategorizedInvoiceExtractor) Extract(pageText string) Fields {
	if pageText == "" {
		return Fields{}
	}

	lines := splitLines(pageText)
	target := lineAfter(lines, "Invoice")
	if target == "" {
		for _, line := range lines {
			if containsAny(line, "To  : ", "To : ") {
				target = line
				break
			}
		}
	}

	var company, serviceType string
	if target != "" {
		if after, ok := afterLabel(target, "To  : ", "To : "); ok {
			company = cutAt(after, " (")
		}
		serviceType = extractServiceType(target)
	}

	amount, _ := LocateAmount(pageText, categorizedTotalMarker)
	return Fields{Company: company, ServiceType: serviceType, Amount: amount}
}

// extractServiceType pulls the raw service type out of the addressee line.
// The value may be quoted and is terminated by the next column gap (a run of
// two or more whitespace characters).
func extractServiceType(line string) string {
	idx := strings.Index(line, serviceTypeLabel)
	if idx < 0 {
		return ""
	}
	after := strings.TrimSpace(line[idx+len(serviceTypeLabel):])
	after = strings.TrimSpace(strings.TrimPrefix(after, `"`))

	raw := after
	if parts := columnGap.Split(after, -1); len(parts) > 0 {
		raw = parts[0]
	}
	return strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
}
