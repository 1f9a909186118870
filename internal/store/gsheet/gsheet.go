// Package gsheet mirrors the expense collection into a Google Sheet.
//
// The sheet acts like the JSON document: one row per expense in insertion
// order, rewritten in full on every save. Rows that cannot be parsed on
// load are skipped, matching the tolerant-corruption policy of the other
// backends.
package gsheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"kharcha/internal/core"

	goption "google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

var headerRow = []interface{}{"Category", "Amount", "Description", "Date"}

// Config selects the spreadsheet and the credentials used to reach it.
type Config struct {
	SpreadsheetID string
	SheetName     string // defaults to "Expenses"

	// Service account credentials, inline JSON or a file path. One of the
	// two must be set.
	CredentialsJSON string
	CredentialsFile string
}

// Client reads and writes one sheet of one spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheet         string
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = "Expenses"
	}

	credentials, err := resolveCredentials(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: cfg.SpreadsheetID, sheet: sheet}, nil
}

func resolveCredentials(cfg Config) ([]byte, error) {
	switch {
	case cfg.CredentialsJSON != "":
		return []byte(cfg.CredentialsJSON), nil
	case cfg.CredentialsFile != "":
		b, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return b, nil
	default:
		return nil, errors.New("missing service account credentials")
	}
}

// Load reads every data row below the header. Blank and malformed rows are
// skipped with a warning.
func (c *Client) Load(ctx context.Context) ([]core.Expense, error) {
	readRange := fmt.Sprintf("%s!A2:D", c.sheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", c.sheet, err)
	}

	items := []core.Expense{}
	for i, row := range resp.Values {
		e, err := parseRow(row)
		if err != nil {
			slog.WarnContext(ctx, "Skipping malformed sheet row",
				"sheet", c.sheet, "row", i+2, "error", err)
			continue
		}
		items = append(items, e)
	}
	return items, nil
}

// Save clears the sheet and rewrites header plus all rows.
func (c *Client) Save(ctx context.Context, items []core.Expense) error {
	clearRange := fmt.Sprintf("%s!A1:D", c.sheet)
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear sheet %s: %w", c.sheet, err)
	}

	values := make([][]interface{}, 0, len(items)+1)
	values = append(values, headerRow)
	for _, e := range items {
		values = append(values, []interface{}{
			e.Category,
			strconv.FormatInt(e.Amount, 10),
			e.Description,
			e.Date.String(),
		})
	}

	vr := &sheets.ValueRange{Values: values}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, fmt.Sprintf("%s!A1", c.sheet), vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write sheet %s: %w", c.sheet, err)
	}
	return nil
}

func (c *Client) Close() error { return nil }

func parseRow(row []interface{}) (core.Expense, error) {
	if len(row) < 4 {
		return core.Expense{}, fmt.Errorf("expected 4 cells, got %d", len(row))
	}
	amount, err := parseAmountCell(row[1])
	if err != nil {
		return core.Expense{}, err
	}
	date, err := core.ParseDate(cellString(row[3]))
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse date: %w", err)
	}
	return core.Expense{
		Category:    cellString(row[0]),
		Amount:      amount,
		Description: cellString(row[2]),
		Date:        date,
	}, nil
}

func parseAmountCell(v interface{}) (int64, error) {
	switch val := v.(type) {
	case float64:
		return int64(val), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected amount cell type %T", v)
	}
}

func cellString(v interface{}) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
