package http

import (
	"fmt"
	"net/http"

	"econfinancas/internal/core"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	filter := core.ExpenseFilter{
		CategoryName: sanitizeInput(r.URL.Query().Get("category")),
		Date:         sanitizeInput(r.URL.Query().Get("date")),
	}

	expenses, err := s.expenses.ListExpenses(r.Context(), filter)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	out := make([]expenseJSON, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseJSON(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// parseExpenseInput extracts and validates the expense fields shared by
// create and update. Value, date and category are all mandatory.
func parseExpenseInput(p *RequestBodyParser) (core.ExpenseInput, error) {
	value := p.Get("value")
	date := p.Get("date")
	category := p.Get("category")

	if value == "" || date == "" || category == "" {
		return core.ExpenseInput{}, core.ValidationError("Value, date, and category are required")
	}

	cents, err := core.ParseAmountCents(value)
	if err != nil {
		return core.ExpenseInput{}, err
	}
	if err := core.ValidateDate(date); err != nil {
		return core.ExpenseInput{}, err
	}

	return core.ExpenseInput{
		ValueCents:   cents,
		Date:         date,
		Description:  p.Get("description"),
		CategoryName: category,
	}, nil
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	in, err := parseExpenseInput(p)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	exp, err := s.expenses.CreateExpense(r.Context(), in)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseJSON(*exp))
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Existence is checked before the body, so an unknown id is a 404 even
	// when the payload is also invalid.
	if _, err := s.expenses.GetExpense(r.Context(), id); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	in, err := parseExpenseInput(p)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	exp, err := s.expenses.UpdateExpense(r.Context(), id, in)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseJSON(*exp))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.expenses.DeleteExpense(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Expense deleted successfully"})
}

func (s *Server) handleResetData(w http.ResponseWriter, r *http.Request) {
	count, err := s.expenses.DeleteAllExpenses(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Reset data failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: fmt.Sprintf("Failed to reset data: %s", err)})
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: fmt.Sprintf("%d expenses deleted successfully", count)})
}
