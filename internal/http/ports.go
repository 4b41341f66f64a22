package http

import (
	"context"

	"econfinancas/internal/core"
)

// CategoryStore is the persistence surface the category handlers depend on.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]core.Category, error)
	GetCategory(ctx context.Context, id int64) (*core.Category, error)
	CreateCategory(ctx context.Context, name string, budgetCents int64) (*core.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string, budgetCents *int64) (*core.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ExpenseStore is the persistence surface the expense handlers depend on.
type ExpenseStore interface {
	ListExpenses(ctx context.Context, filter core.ExpenseFilter) ([]core.Expense, error)
	GetExpense(ctx context.Context, id string) (*core.Expense, error)
	CreateExpense(ctx context.Context, in core.ExpenseInput) (*core.Expense, error)
	UpdateExpense(ctx context.Context, id string, in core.ExpenseInput) (*core.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	DeleteAllExpenses(ctx context.Context) (int64, error)
}
