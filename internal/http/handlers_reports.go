package http

import (
	"log/slog"
	"net/http"
	"strings"

	"kharcha/internal/core"
)

type (
	expenseRow struct {
		Index       int
		Date        string
		Category    string
		Description string
		Amount      string
	}

	categoryRow struct {
		Name    string
		Sum     string
		Count   int
		Average string
		Share   float64 // percentage of the grand total
	}

	monthRow struct {
		Label string
		Sum   string
	}

	trendRow struct {
		Date        string
		Description string
		Amount      string
		Running     string
	}
)

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) ([]core.Expense, bool) {
	items, err := s.ledger.Snapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load expenses", "error", err)
		InternalServerError("Error loading expenses").Write(w)
		return nil, false
	}
	return items, true
}

// handleSummary renders the headline metrics: total, count, average, max.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	items, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	s.render(w, r, "summary.html", map[string]any{
		"Empty":   len(items) == 0,
		"Total":   formatPKR(core.Total(items)),
		"Count":   core.Count(items),
		"Average": formatPKRAverage(core.Average(items)),
		"Max":     formatPKR(core.Max(items)),
	})
}

// handleExpenseTable renders the full expense table in stored order, each
// row carrying its position for deletion.
func (s *Server) handleExpenseTable(w http.ResponseWriter, r *http.Request) {
	items, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	rows := make([]expenseRow, len(items))
	for i, e := range items {
		rows[i] = expenseRow{
			Index:       i,
			Date:        e.Date.String(),
			Category:    e.Category,
			Description: e.Description,
			Amount:      formatPKR(e.Amount),
		}
	}
	s.render(w, r, "expenses.html", map[string]any{
		"Rows":  rows,
		"Count": len(rows),
	})
}

// handleCategories renders the per-category breakdown; with ?category= it
// renders the filtered sub-collection for that label instead.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	items, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		filtered := core.FilterByCategory(items, category)
		rows := make([]expenseRow, len(filtered))
		for i, e := range filtered {
			rows[i] = expenseRow{
				Date:        e.Date.String(),
				Description: e.Description,
				Amount:      formatPKR(e.Amount),
			}
		}
		s.render(w, r, "category_detail.html", map[string]any{
			"Category": category,
			"Rows":     rows,
			"Total":    formatPKR(core.Total(filtered)),
			"Count":    core.Count(filtered),
			"Average":  formatPKRAverage(core.Average(filtered)),
		})
		return
	}

	groups := core.GroupByCategory(items)
	total := core.Total(items)
	rows := make([]categoryRow, len(groups))
	for i, g := range groups {
		share := 0.0
		if total > 0 {
			share = float64(g.Sum) / float64(total) * 100
		}
		rows[i] = categoryRow{
			Name:    g.Name,
			Sum:     formatPKR(g.Sum),
			Count:   g.Count,
			Average: formatPKRAverage(g.Average),
			Share:   share,
		}
	}
	s.render(w, r, "categories.html", map[string]any{
		"Empty": len(rows) == 0,
		"Rows":  rows,
	})
}

// handleMonthly renders chronological month totals.
func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	items, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	months := core.GroupByMonth(items)
	rows := make([]monthRow, len(months))
	for i, m := range months {
		rows[i] = monthRow{
			Label: monthLabel(m.Year, m.Month),
			Sum:   formatPKR(m.Sum),
		}
	}
	s.render(w, r, "monthly.html", map[string]any{
		"Empty": len(rows) == 0,
		"Rows":  rows,
	})
}

// handleTrend renders expenses in date order with the running total.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	items, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	points := core.CumulativeByDate(items)
	rows := make([]trendRow, len(points))
	for i, p := range points {
		rows[i] = trendRow{
			Date:        p.Date.String(),
			Description: p.Description,
			Amount:      formatPKR(p.Amount),
			Running:     formatPKR(p.Running),
		}
	}
	s.render(w, r, "trend.html", map[string]any{
		"Empty": len(rows) == 0,
		"Rows":  rows,
	})
}
