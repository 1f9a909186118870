package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateCategory(t *testing.T) {
	cases := []struct {
		in      string
		wantErr error
	}{
		{"Food", nil},
		{"transport", nil},
		{"Caffè", nil},
		{"", ErrEmptyCategory},
		{"Food1", ErrCategoryFormat},
		{"Fast Food", ErrCategoryFormat},
		{"Food!", ErrCategoryFormat},
		{"12", ErrCategoryFormat},
		{"Food-Drinks", ErrCategoryFormat},
	}
	for _, tc := range cases {
		if err := ValidateCategory(tc.in); !errors.Is(err, tc.wantErr) {
			t.Errorf("ValidateCategory(%q) = %v, want %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		in      float64
		wantErr error
	}{
		{1, nil},
		{0.5, nil},
		{12345, nil},
		{0, ErrAmountRange},
		{-10, ErrAmountRange},
	}
	for _, tc := range cases {
		if err := ValidateAmount(tc.in); !errors.Is(err, tc.wantErr) {
			t.Errorf("ValidateAmount(%v) = %v, want %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{"100", 100, nil},
		{"12.5", 12.5, nil},
		{"12,5", 12.5, nil},
		{" 42 ", 42, nil},
		{"", 0, ErrAmountNotNumeric},
		{"abc", 0, ErrAmountNotNumeric},
		{"12x", 0, ErrAmountNotNumeric},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("ParseAmount(%q) error = %v, want %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	cases := []struct {
		in      string
		wantErr error
	}{
		{"lunch today", nil},
		{"12345", nil},
		{"", ErrEmptyDescription},
		{"abcd", ErrDescriptionShort},
		{"ab", ErrDescriptionShort},
	}
	for _, tc := range cases {
		if err := ValidateDescription(tc.in); !errors.Is(err, tc.wantErr) {
			t.Errorf("ValidateDescription(%q) = %v, want %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"food", "Food"},
		{"FOOD", "Food"},
		{"fOOd", "Food"},
		{"Transport", "Transport"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Capitalize(tc.in); got != tc.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewExpense(t *testing.T) {
	date := NewDate(2024, 1, 15)

	e, err := NewExpense("food", 99.9, "lunch today", date)
	if err != nil {
		t.Fatalf("NewExpense: %v", err)
	}
	if e.Category != "Food" {
		t.Errorf("category = %q, want %q", e.Category, "Food")
	}
	if e.Amount != 99 {
		t.Errorf("amount = %d, want 99 (fraction truncated)", e.Amount)
	}
	if e.Date.String() != "2024-01-15" {
		t.Errorf("date = %q, want 2024-01-15", e.Date)
	}

	// First failing check wins: category before amount before description.
	if _, err := NewExpense("", 0, "", date); !errors.Is(err, ErrEmptyCategory) {
		t.Errorf("expected ErrEmptyCategory, got %v", err)
	}
	if _, err := NewExpense("Food", 0, "", date); !errors.Is(err, ErrAmountRange) {
		t.Errorf("expected ErrAmountRange, got %v", err)
	}
	if _, err := NewExpense("Food", 10, "abc", date); !errors.Is(err, ErrDescriptionShort) {
		t.Errorf("expected ErrDescriptionShort, got %v", err)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	e := Expense{Category: "Food", Amount: 100, Description: "lunch today", Date: NewDate(2024, 1, 2)}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Category":"Food","Amount":100,"Description":"lunch today","Date":"2024-01-02"}`
	if string(b) != want {
		t.Errorf("marshal = %s, want %s", b, want)
	}

	var back Expense
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Date.String() != "2024-01-02" {
		t.Errorf("round-trip date = %q", back.Date)
	}

	var bad Expense
	if err := json.Unmarshal([]byte(`{"Date":"not-a-date"}`), &bad); err == nil {
		t.Error("expected error for malformed date")
	}
}
