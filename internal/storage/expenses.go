package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"econfinancas/internal/core"

	"github.com/google/uuid"
)

// ListExpenses returns expenses matching the filter, newest date first.
// The category name is resolved at read time; a broken reference yields an
// empty name rather than an error.
func (r *SQLiteRepository) ListExpenses(ctx context.Context, filter core.ExpenseFilter) ([]core.Expense, error) {
	query := `
		SELECT e.id, e.value_cents, e.date, e.description, e.category_id, c.name
		FROM expense e
		LEFT JOIN category c ON c.id = e.category_id`
	var (
		conds []string
		args  []any
	)

	if filter.CategoryName != "" {
		cat, err := r.getCategoryByName(ctx, filter.CategoryName)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, core.NotFoundError("Category not found for filtering")
		}
		conds = append(conds, "e.category_id = ?")
		args = append(args, cat.ID)
	}
	if filter.Date != "" {
		conds = append(conds, "e.date = ?")
		args = append(args, filter.Date)
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	// Dates are canonical YYYY-MM-DD strings, so lexicographic order is
	// chronological order.
	query += " ORDER BY e.date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var (
			e        core.Expense
			category sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Value.Cents, &e.Date, &e.Description, &e.CategoryID, &category); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Category = category.String
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// GetExpense returns the expense with the given id.
func (r *SQLiteRepository) GetExpense(ctx context.Context, id string) (*core.Expense, error) {
	var (
		e        core.Expense
		category sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT e.id, e.value_cents, e.date, e.description, e.category_id, c.name
		FROM expense e
		LEFT JOIN category c ON c.id = e.category_id
		WHERE e.id = ?`, id).
		Scan(&e.ID, &e.Value.Cents, &e.Date, &e.Description, &e.CategoryID, &category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NotFoundError("Expense not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query expense %s: %w", id, err)
	}
	e.Category = category.String
	return &e, nil
}

// CreateExpense inserts a new expense with a generated identifier. An unknown
// category name silently attaches the expense to the fallback category.
func (r *SQLiteRepository) CreateExpense(ctx context.Context, in core.ExpenseInput) (*core.Expense, error) {
	cat, err := r.getCategoryByName(ctx, in.CategoryName)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		cat, err = r.EnsureFallbackCategory(ctx)
		if err != nil {
			return nil, err
		}
		slog.WarnContext(ctx, "Unknown category on expense create, using fallback",
			"requested", in.CategoryName, "fallback", cat.Name)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO expense (id, value_cents, date, description, category_id)
		VALUES (?, ?, ?, ?, ?)`,
		id, in.ValueCents, in.Date, in.Description, cat.ID)
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense created",
		"id", id,
		"value_cents", in.ValueCents,
		"date", in.Date,
		"category", cat.Name)

	return &core.Expense{
		ID:          id,
		Value:       core.Money{Cents: in.ValueCents},
		Date:        in.Date,
		Description: in.Description,
		CategoryID:  cat.ID,
		Category:    cat.Name,
	}, nil
}

// UpdateExpense overwrites every mutable field of an expense. Unlike create,
// an unknown category name is rejected here.
func (r *SQLiteRepository) UpdateExpense(ctx context.Context, id string, in core.ExpenseInput) (*core.Expense, error) {
	if _, err := r.GetExpense(ctx, id); err != nil {
		return nil, err
	}

	cat, err := r.getCategoryByName(ctx, in.CategoryName)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, core.NotFoundError("Category not found")
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE expense SET value_cents = ?, date = ?, description = ?, category_id = ?
		WHERE id = ?`,
		in.ValueCents, in.Date, in.Description, cat.ID, id)
	if err != nil {
		return nil, fmt.Errorf("update expense %s: %w", id, err)
	}

	slog.InfoContext(ctx, "Expense updated", "id", id, "value_cents", in.ValueCents, "category", cat.Name)

	return &core.Expense{
		ID:          id,
		Value:       core.Money{Cents: in.ValueCents},
		Date:        in.Date,
		Description: in.Description,
		CategoryID:  cat.ID,
		Category:    cat.Name,
	}, nil
}

// DeleteExpense removes the expense with the given id.
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expense WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense rows affected: %w", err)
	}
	if affected == 0 {
		return core.NotFoundError("Expense not found")
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// DeleteAllExpenses removes every expense in a single transaction and returns
// the number of rows removed. On any failure the transaction is rolled back
// and no expense is touched.
func (r *SQLiteRepository) DeleteAllExpenses(ctx context.Context) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin reset transaction: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM expense`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete all expenses: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("reset rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reset transaction: %w", err)
	}

	slog.InfoContext(ctx, "All expenses deleted", "count", count)
	return count, nil
}
