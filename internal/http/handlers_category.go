package http

import (
	"net/http"
	"strconv"

	"econfinancas/internal/core"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.categories.ListCategories(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	out := make([]categoryJSON, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	name := p.Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Category name is required"})
		return
	}

	var budgetCents int64
	if raw := p.Get("budget"); raw != "" {
		cents, err := core.ParseBudgetCents(raw)
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		budgetCents = cents
	}

	cat, err := s.categories.CreateCategory(r.Context(), name, budgetCents)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryJSON(*cat))
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Category not found"})
		return
	}

	// Existence is checked before the body, so an unknown id is a 404 even
	// when the payload is also invalid.
	if _, err := s.categories.GetCategory(r.Context(), id); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}

	name := p.Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "New category name is required"})
		return
	}

	// Budget is optional on update: absent means keep the current one.
	var budgetCents *int64
	if p.Has("budget") && p.Get("budget") != "" {
		cents, err := core.ParseBudgetCents(p.Get("budget"))
		if err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		budgetCents = &cents
	}

	cat, err := s.categories.UpdateCategory(r.Context(), id, name, budgetCents)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryJSON(*cat))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Category not found"})
		return
	}

	if err := s.categories.DeleteCategory(r.Context(), id); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Category deleted and expenses reallocated successfully"})
}
