package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	dateLayout = "2006-01-02"

	// Descriptions shorter than this are rejected at admission time.
	minDescriptionLen = 5
)

type (
	// Date is a calendar day. It serializes as an ISO-8601 date string
	// (YYYY-MM-DD), which is how expenses are persisted.
	Date struct {
		time.Time
	}

	// Expense is one recorded spending event. The JSON field names are the
	// persisted document format and must not change.
	Expense struct {
		Category    string `json:"Category"`
		Amount      int64  `json:"Amount"`
		Description string `json:"Description"`
		Date        Date   `json:"Date"`
	}
)

var (
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrCategoryFormat   = errors.New("category must contain only letters")
	ErrAmountNotNumeric = errors.New("amount must be a valid number")
	ErrAmountRange      = errors.New("amount must be greater than 0")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrDescriptionShort = errors.New("description must be at least 5 characters")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day, the default for new expenses.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the calendar month (1-12).
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Before reports whether d falls on an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// MarshalJSON serializes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ValidateCategory rejects empty input and any non-alphabetic rune
// (digits, spaces and punctuation all fail).
func ValidateCategory(s string) error {
	if s == "" {
		return ErrEmptyCategory
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return ErrCategoryFormat
		}
	}
	return nil
}

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(n float64) error {
	if n <= 0 {
		return ErrAmountRange
	}
	return nil
}

// ParseAmount converts free text to a number. It accepts both dot and comma
// decimal separators and returns ErrAmountNotNumeric when the input cannot
// be interpreted as a number at all.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrAmountNotNumeric
	}
	s = strings.ReplaceAll(s, ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrAmountNotNumeric
	}
	return n, nil
}

// ValidateDescription rejects empty input and anything shorter than five
// characters, counted in runes.
func ValidateDescription(s string) error {
	if s == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(s) < minDescriptionLen {
		return ErrDescriptionShort
	}
	return nil
}

// Capitalize returns s with the first letter upper-cased and the remainder
// lower-cased, the form categories are stored in.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// NewExpense validates the raw field values and builds a normalized Expense.
// Checks run category first, then amount, then description; the first failure
// is returned and nothing is admitted. The fractional part of the amount is
// truncated to whole units.
func NewExpense(category string, amount float64, description string, date Date) (Expense, error) {
	if err := ValidateCategory(category); err != nil {
		return Expense{}, err
	}
	if err := ValidateAmount(amount); err != nil {
		return Expense{}, err
	}
	if err := ValidateDescription(description); err != nil {
		return Expense{}, err
	}
	return Expense{
		Category:    Capitalize(category),
		Amount:      int64(amount),
		Description: description,
		Date:        date,
	}, nil
}
