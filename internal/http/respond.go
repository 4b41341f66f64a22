package http

import (
	"encoding/json"
	"net/http"

	"econfinancas/internal/core"
)

// categoryJSON is the wire representation of a category. Budget travels as a
// decimal amount, not cents.
type categoryJSON struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

// expenseJSON is the wire representation of an expense. Category is null when
// the referenced category no longer exists.
type expenseJSON struct {
	ID          string  `json:"id"`
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
	CategoryID  int64   `json:"category_id"`
}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func toCategoryJSON(c core.Category) categoryJSON {
	return categoryJSON{ID: c.ID, Name: c.Name, Budget: c.Budget.Value()}
}

func toExpenseJSON(e core.Expense) expenseJSON {
	out := expenseJSON{
		ID:          e.ID,
		Value:       e.Value.Value(),
		Date:        e.Date,
		Description: e.Description,
		CategoryID:  e.CategoryID,
	}
	if e.Category != "" {
		out.Category = &e.Category
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeDomainError maps an error to its HTTP status: validation errors are
// 400, conflicts 409, missing records 404, everything else 500.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case core.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case core.IsConflict(err):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case core.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		s.logger.ErrorContext(r.Context(), "Unhandled error",
			"error", err, "method", r.Method, "url", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
	}
}
