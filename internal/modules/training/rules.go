package training

import (
	"strings"
	"time"
	"unicode/utf8"
)

// The class rule engine: revenue derivation plus the structural checks on
// name and date range.

func TotalRevenue(studentCount int, pricePerStudent int64) int64 {
	return int64(studentCount) * pricePerStudent
}

// ValidateClass enforces the name and date invariants. Length is counted
// in runes so multi-byte names are not over-rejected.
func ValidateClass(name string, startDate, endDate *time.Time) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) < 3 {
		return ErrNameTooShort
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// SubjectCode derives the subject code from the first 3 runes of the
// description, uppercased. Descriptions shorter than 3 runes yield no
// code at all rather than a truncated one.
func SubjectCode(description string) (string, bool) {
	runes := []rune(description)
	if len(runes) < 3 {
		return "", false
	}
	return strings.ToUpper(string(runes[:3])), true
}

func validClassStatus(s string) bool {
	switch s {
	case "draft", "open", "closed":
		return true
	}
	return false
}
