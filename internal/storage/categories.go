package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"econfinancas/internal/core"
)

// ListCategories returns every category in insertion order.
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, budget_cents FROM category ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []core.Category
	for rows.Next() {
		var cat core.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Budget.Cents); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

// GetCategory returns the category with the given id.
func (r *SQLiteRepository) GetCategory(ctx context.Context, id int64) (*core.Category, error) {
	var cat core.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, budget_cents FROM category WHERE id = ?`, id).
		Scan(&cat.ID, &cat.Name, &cat.Budget.Cents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NotFoundError("Category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query category %d: %w", id, err)
	}
	return &cat, nil
}

// getCategoryByName returns the category with the given name, or nil when
// no such category exists.
func (r *SQLiteRepository) getCategoryByName(ctx context.Context, name string) (*core.Category, error) {
	var cat core.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, budget_cents FROM category WHERE name = ?`, name).
		Scan(&cat.ID, &cat.Name, &cat.Budget.Cents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query category by name: %w", err)
	}
	return &cat, nil
}

// CreateCategory inserts a new category. The name must be non-empty and not
// already taken.
func (r *SQLiteRepository) CreateCategory(ctx context.Context, name string, budgetCents int64) (*core.Category, error) {
	if name == "" {
		return nil, core.ValidationError("Category name is required")
	}

	existing, err := r.getCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, core.ConflictError("Category with this name already exists")
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO category (name, budget_cents) VALUES (?, ?)`, name, budgetCents)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("category insert id: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "id", id, "name", name, "budget_cents", budgetCents)
	return &core.Category{ID: id, Name: name, Budget: core.Money{Cents: budgetCents}}, nil
}

// UpdateCategory renames a category and, when budgetCents is non-nil, applies
// the new budget. The name is always overwritten, even to its current value.
func (r *SQLiteRepository) UpdateCategory(ctx context.Context, id int64, name string, budgetCents *int64) (*core.Category, error) {
	if name == "" {
		return nil, core.ValidationError("New category name is required")
	}

	cat, err := r.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := r.getCategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if owner != nil && owner.ID != id {
		return nil, core.ConflictError("Category with this name already exists")
	}

	cat.Name = name
	if budgetCents != nil {
		cat.Budget.Cents = *budgetCents
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE category SET name = ?, budget_cents = ? WHERE id = ?`,
		cat.Name, cat.Budget.Cents, id)
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Category updated", "id", id, "name", cat.Name, "budget_cents", cat.Budget.Cents)
	return cat, nil
}

// DeleteCategory removes a category after reassigning every one of its
// expenses to the fallback category. The reassignment runs unconditionally,
// including when the fallback category itself is being deleted.
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, id int64) error {
	cat, err := r.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	fallback, err := r.EnsureFallbackCategory(ctx)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE expense SET category_id = ? WHERE category_id = ?`, fallback.ID, id)
	if err != nil {
		return fmt.Errorf("reassign expenses of category %d: %w", id, err)
	}
	reassigned, _ := result.RowsAffected()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM category WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Category deleted",
		"id", id,
		"name", cat.Name,
		"reassigned_expenses", reassigned,
		"fallback_id", fallback.ID)
	return nil
}

// EnsureFallbackCategory returns the "Outros" category, creating it with a
// zero budget if it is missing.
func (r *SQLiteRepository) EnsureFallbackCategory(ctx context.Context) (*core.Category, error) {
	cat, err := r.getCategoryByName(ctx, core.FallbackCategoryName)
	if err != nil {
		return nil, err
	}
	if cat != nil {
		return cat, nil
	}

	slog.InfoContext(ctx, "Fallback category missing, creating it", "name", core.FallbackCategoryName)
	return r.CreateCategory(ctx, core.FallbackCategoryName, 0)
}
