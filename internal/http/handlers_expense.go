package http

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"kharcha/internal/core"
	"kharcha/internal/services"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NewHTMXResponse().Status(http.StatusNotFound).BodyHTML("not found").Write(w)
		return
	}
	items, err := s.ledger.Snapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load expenses", "error", err)
		InternalServerError("Error loading expenses").Write(w)
		return
	}
	s.render(w, r, "index.html", map[string]any{
		"Today":      core.Today().String(),
		"Count":      core.Count(items),
		"Categories": core.DistinctCategories(items),
	})
}

// handleCreateExpense admits a new expense from the add form. Validation
// failures come back as a 422 with the reason; nothing is persisted then.
func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError(http.MethodPost).Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		BadRequestError("Invalid request format").Write(w)
		return
	}

	category := sanitizeInput(r.Form.Get("category"))
	description := sanitizeInput(r.Form.Get("description"))

	amount, err := core.ParseAmount(r.Form.Get("amount"))
	if err != nil {
		UnprocessableEntityError("Amount must be a valid number.").Write(w)
		return
	}
	date, err := parseDateOrToday(r.Form.Get("date"))
	if err != nil {
		UnprocessableEntityError("Date must be in YYYY-MM-DD format.").Write(w)
		return
	}

	e, err := s.ledger.Add(r.Context(), category, amount, description, date)
	if err != nil {
		if reason, ok := validationMessage(err); ok {
			UnprocessableEntityError(reason).Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to save expense",
			"error", err,
			"category", category,
			"operation", "add")
		InternalServerError("Error saving expense").Write(w)
		return
	}

	msg := fmt.Sprintf("Expense added: %s — %s (%s)",
		template.HTMLEscapeString(e.Description),
		formatPKR(e.Amount),
		template.HTMLEscapeString(e.Category))
	NewHTMXResponse().
		TriggerFormReset().
		TriggerSuccessNotification(msg).
		TriggerLedgerChanged().
		Write(w)
}

// handleDeleteExpense removes one expense by its zero-based position in the
// stored order. Out-of-range positions are reported, never swallowed.
func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError(http.MethodPost).Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		BadRequestError("Invalid request format").Write(w)
		return
	}

	index, err := strconv.Atoi(r.Form.Get("index"))
	if err != nil {
		BadRequestError("Missing or invalid expense index").Write(w)
		return
	}

	removed, err := s.ledger.DeleteAt(r.Context(), index)
	if err != nil {
		if errors.Is(err, services.ErrIndexOutOfRange) {
			UnprocessableEntityError("No expense at that position.").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete expense", "error", err, "index", index)
		InternalServerError("Error deleting expense").Write(w)
		return
	}

	msg := fmt.Sprintf("Expense deleted: %s — %s",
		template.HTMLEscapeString(removed.Description),
		formatPKR(removed.Amount))
	NewHTMXResponse().
		TriggerSuccessNotification(msg).
		TriggerLedgerChanged().
		Write(w)
}

// handleClearExpenses implements the two-step confirmation. The first
// request arms the action and returns a confirm control carrying the armed
// flag; only a request with confirm=1 actually clears. The armed state
// travels in the exchanged markup, not in server globals.
func (s *Server) handleClearExpenses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError(http.MethodPost).Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		BadRequestError("Invalid request format").Write(w)
		return
	}

	if r.Form.Get("confirm") != "1" {
		items, err := s.ledger.Snapshot(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Failed to load expenses", "error", err)
			InternalServerError("Error loading expenses").Write(w)
			return
		}
		s.render(w, r, "clear_confirm.html", map[string]any{"Count": core.Count(items)})
		return
	}

	if err := s.ledger.ClearAll(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Failed to clear expenses", "error", err)
		InternalServerError("Error clearing expenses").Write(w)
		return
	}
	NewHTMXResponse().
		TriggerSuccessNotification("All expenses cleared.").
		TriggerLedgerChanged().
		Write(w)
}

// validationMessage maps admission errors to the user-facing reasons the
// form displays. Unknown errors are not validation failures.
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, core.ErrEmptyCategory):
		return "Category cannot be empty.", true
	case errors.Is(err, core.ErrCategoryFormat):
		return "Category must contain only letters.", true
	case errors.Is(err, core.ErrAmountNotNumeric):
		return "Amount must be a valid number.", true
	case errors.Is(err, core.ErrAmountRange):
		return "Amount must be greater than 0.", true
	case errors.Is(err, core.ErrEmptyDescription):
		return "Description cannot be empty.", true
	case errors.Is(err, core.ErrDescriptionShort):
		return "Description must be at least 5 characters.", true
	}
	return "", false
}
