package extract

import (
	"regexp"
	"strings"
)

// columnGap matches the run of whitespace separating columns in
// position-rendered page text.
var columnGap = regexp.MustCompile(`\s{2,}`)

// StatementExtractor handles the statement-of-account layout: the company
// name is the first column of the line following the "Statement of Account"
// heading. Statements carry no service type and no amount.
type StatementExtractor struct{}

// Extract recovers the company name from one page.
func (StatementExtractor) Extract(pageText string) Fields {
	if pageText == "" {
		return Fields{}
	}

	target := lineAfter(splitLines(pageText), "Statement of Account")
	if target == "" {
		return Fields{}
	}

	company := strings.TrimSpace(target)
	if parts := columnGap.Split(target, -1); len(parts) > 0 {
		company = strings.TrimSpace(parts[0])
	}
	return Fields{Company: company}
}

// containsAny reports whether line contains any of the given substrings.
func containsAny(line string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}
