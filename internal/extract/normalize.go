package extract

import (
	"strings"

	"github.com/jteoh/invsplit/internal/model"
)

// keyStripper removes the characters that vary between spellings of the same
// company across sources.
var keyStripper = strings.NewReplacer(" ", "", ".", "")

// NormalizeCompanyKey canonicalizes a raw company name into the join key used
// to match records across sources: spaces and periods removed, uppercased.
// Absent or effectively empty names map to the UNKNOWN sentinel. This
// function is the sole join key across sources, so two spellings of the same
// entity must normalize identically.
func NormalizeCompanyKey(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return model.UnknownCompany
	}
	s = strings.ToUpper(keyStripper.Replace(s))
	if s == "" {
		return model.UnknownCompany
	}
	return s
}

// NormalizeServiceType maps a raw service type string onto the closed
// category set. The check order is fixed: TAX is a prefix match (raw values
// like "TAXATION FY2024" must not fall through to substring checks), the
// rest are substring matches, and anything else is OTHERS.
func NormalizeServiceType(raw string) model.ServiceCategory {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case s == "":
		return model.CategoryOthers
	case strings.HasPrefix(s, "TAX"):
		return model.CategoryTax
	case strings.Contains(s, "ACCOUNT"):
		return model.CategoryAccount
	case strings.Contains(s, "BPO"):
		return model.CategoryBPO
	case strings.Contains(s, "SECRET"):
		return model.CategorySecretary
	default:
		return model.CategoryOthers
	}
}

// SanitizeFilename turns a display name into a safe output base name:
// filesystem-hostile characters become underscores, and an effectively empty
// result falls back to the UNKNOWN sentinel.
func SanitizeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return model.UnknownCompany
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		default:
			return r
		}
	}, name)
	replaced = strings.TrimSpace(replaced)
	if replaced == "" {
		return model.UnknownCompany
	}
	return replaced
}
