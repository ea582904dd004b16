package library

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/pkg/rules"
)

// The book and loan rule engine. Everything here is a pure function; the
// current date is always an explicit parameter so the callers (and the
// tests) control it.

// ShortDescription formats "{name} - {authors} ({isbn})" with "Unknown"
// standing in for an empty author list.
func ShortDescription(name string, authorNames []string, isbn string) string {
	authors := "Unknown"
	if len(authorNames) > 0 {
		authors = strings.Join(authorNames, ", ")
	}
	return fmt.Sprintf("%s - %s (%s)", name, authors, isbn)
}

func DaysSincePurchase(purchaseDate *time.Time, today time.Time) int {
	if purchaseDate == nil {
		return 0
	}
	return rules.DaysBetween(*purchaseDate, today)
}

func TotalLoans(loans []domain.Loan) int {
	return len(loans)
}

// ConditionLevel maps the stored condition grade to a 1..4 star rating;
// anything unrecognized maps to 0.
func ConditionLevel(condition string) int {
	switch condition {
	case domain.ConditionPoor:
		return 1
	case domain.ConditionFair:
		return 2
	case domain.ConditionGood:
		return 3
	case domain.ConditionNew:
		return 4
	default:
		return 0
	}
}

// ConditionAfterState resets the condition to poor when a book goes lost,
// whatever it was before.
func ConditionAfterState(state domain.BookState, condition string) string {
	if state == domain.BookLost {
		return domain.ConditionPoor
	}
	return condition
}

// CheckISBN flags codes longer than the usual 13 characters. Advisory
// only; the write always proceeds.
func CheckISBN(isbn string) *rules.Warning {
	if len(isbn) > 13 {
		return rules.Warn("ISBN_FORMAT", "ISBN looks non-standard (usually at most 13 characters)")
	}
	return nil
}

// LoanDuration counts calendar days, so a borrow date carrying a clock
// time still yields the full day count against a midnight return date.
func LoanDuration(borrowDate, returnDate *time.Time) int {
	if borrowDate == nil || returnDate == nil {
		return 0
	}
	return rules.DaysBetween(*borrowDate, *returnDate)
}

// SuggestReturnDate proposes a one-week loan by default.
func SuggestReturnDate(borrowDate time.Time) time.Time {
	return borrowDate.AddDate(0, 0, 7)
}

// ShelvingNote is the category assist for the notes field.
func ShelvingNote(category string) string {
	return fmt.Sprintf("Category: %s - please shelve accordingly.", category)
}

func validBookState(s domain.BookState) bool {
	switch s {
	case domain.BookDraft, domain.BookAvailable, domain.BookBorrowed, domain.BookLost:
		return true
	}
	return false
}

func validCondition(c string) bool {
	switch c {
	case domain.ConditionPoor, domain.ConditionFair, domain.ConditionGood, domain.ConditionNew:
		return true
	}
	return false
}
