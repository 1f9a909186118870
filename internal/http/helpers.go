package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kharcha/internal/core"
)

// parseDate parses the form date, falling back to today when absent. The
// error is only returned for a present but malformed value.
func parseDateOrToday(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Today(), nil
	}
	return core.ParseDate(s)
}

// formatPKR formats whole rupees with thousands separators (e.g. "PKR 1,234").
func formatPKR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-PKR " + b.String()
	}
	return "PKR " + b.String()
}

// formatPKRAverage formats a fractional rupee value for averages.
func formatPKRAverage(amount float64) string {
	return fmt.Sprintf("PKR %.2f", amount)
}

// monthLabel renders a month key like "2024-01".
func monthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
