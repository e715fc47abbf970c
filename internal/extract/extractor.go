package extract

import (
	"strings"

	"github.com/jteoh/invsplit/internal/model"
)

// Fields holds the raw values an extractor recovered from one page. An empty
// string means the field was absent; nothing here is normalized or parsed.
type Fields struct {
	Company     string
	ServiceType string
	Amount      string
}

// Extractor recovers raw fields from one page of text. Each source layout
// gets its own implementation; the heuristics are intentionally independent
// so a layout shift in one source cannot silently misparse another.
type Extractor interface {
	Extract(pageText string) Fields
}

// ForKind returns the extractor for a source kind. Config validation rejects
// unknown kinds before this is reached; the statement extractor is the
// default because it extracts the least.
func ForKind(kind model.SourceKind) Extractor {
	switch kind {
	case model.SourcePrimaryInvoice:
		return PrimaryInvoiceExtractor{}
	case model.SourceCategorizedInvoice:
		return CategorizedInvoiceExtractor{}
	default:
		return StatementExtractor{}
	}
}

// splitLines breaks page text into lines, tolerating both \n and \r\n.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// lineAfter returns the line immediately following the first line containing
// token, or "" if no such line exists.
func lineAfter(lines []string, token string) string {
	for i, line := range lines {
		if strings.Contains(line, token) {
			if i+1 < len(lines) {
				return lines[i+1]
			}
			return ""
		}
	}
	return ""
}

// afterLabel returns the substring of line following the first matching
// label. The two-space variant is tried before the one-space variant because
// column-aligned layouts render the label both ways.
func afterLabel(line string, labels ...string) (string, bool) {
	for _, label := range labels {
		if idx := strings.Index(line, label); idx >= 0 {
			return line[idx+len(label):], true
		}
	}
	return "", false
}

// cutAt truncates s at the first occurrence of sep, keeping everything before
// it, and trims the result. Without sep the whole trimmed string is returned.
func cutAt(s, sep string) string {
	if idx := strings.Index(s, sep); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}
