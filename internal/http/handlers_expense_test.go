package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createExpense(t *testing.T, srv *Server, body string) expenseJSON {
	t.Helper()
	rr := doRequest(t, srv, http.MethodPost, "/api/expenses", body)
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())
	var exp expenseJSON
	decodeBody(t, rr, &exp)
	return exp
}

func TestCreateExpenseHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv := newTestServer(t)

		exp := createExpense(t, srv,
			`{"value": 49.90, "date": "2024-03-01", "description": "mercado", "category": "Alimentação"}`)
		assert.NotEmpty(t, exp.ID)
		assert.Equal(t, 49.9, exp.Value)
		assert.Equal(t, "2024-03-01", exp.Date)
		assert.Equal(t, "mercado", exp.Description)
		require.NotNil(t, exp.Category)
		assert.Equal(t, "Alimentação", *exp.Category)
	})

	t.Run("value as comma string", func(t *testing.T) {
		srv := newTestServer(t)

		exp := createExpense(t, srv,
			`{"value": "49,90", "date": "2024-03-01", "category": "Lazer"}`)
		assert.Equal(t, 49.9, exp.Value)
	})

	t.Run("unknown category falls back to Outros", func(t *testing.T) {
		srv := newTestServer(t)

		exp := createExpense(t, srv,
			`{"value": 10, "date": "2024-03-01", "category": "Inexistente"}`)
		require.NotNil(t, exp.Category)
		assert.Equal(t, "Outros", *exp.Category)
	})

	t.Run("missing fields", func(t *testing.T) {
		srv := newTestServer(t)

		for _, body := range []string{
			`{"date": "2024-03-01", "category": "Lazer"}`,
			`{"value": 10, "category": "Lazer"}`,
			`{"value": 10, "date": "2024-03-01"}`,
		} {
			rr := doRequest(t, srv, http.MethodPost, "/api/expenses", body)
			require.Equal(t, http.StatusBadRequest, rr.Code, body)

			var errResp errorBody
			decodeBody(t, rr, &errResp)
			assert.Equal(t, "Value, date, and category are required", errResp.Error)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		srv := newTestServer(t)

		rr := doRequest(t, srv, http.MethodPost, "/api/expenses",
			`{"value": "abc", "date": "2024-03-01", "category": "Lazer"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp errorBody
		decodeBody(t, rr, &errResp)
		assert.Equal(t, "Invalid value format", errResp.Error)
	})

	t.Run("non-positive value", func(t *testing.T) {
		srv := newTestServer(t)

		rr := doRequest(t, srv, http.MethodPost, "/api/expenses",
			`{"value": -5, "date": "2024-03-01", "category": "Lazer"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp errorBody
		decodeBody(t, rr, &errResp)
		assert.Equal(t, "Value must be positive", errResp.Error)
	})

	t.Run("invalid date", func(t *testing.T) {
		srv := newTestServer(t)

		rr := doRequest(t, srv, http.MethodPost, "/api/expenses",
			`{"value": 10, "date": "01-03-2024", "category": "Lazer"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp errorBody
		decodeBody(t, rr, &errResp)
		assert.Equal(t, "Invalid date format, expected YYYY-MM-DD", errResp.Error)
	})
}

func TestListExpensesHandler(t *testing.T) {
	t.Run("empty list is an empty array", func(t *testing.T) {
		srv := newTestServer(t)

		rr := doRequest(t, srv, http.MethodGet, "/api/expenses", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("ordered and filtered", func(t *testing.T) {
		srv := newTestServer(t)
		createExpense(t, srv, `{"value": 10, "date": "2024-01-15", "category": "Lazer"}`)
		createExpense(t, srv, `{"value": 20, "date": "2024-03-01", "category": "Transporte"}`)
		createExpense(t, srv, `{"value": 30, "date": "2023-12-31", "category": "Lazer"}`)

		rr := doRequest(t, srv, http.MethodGet, "/api/expenses", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var all []expenseJSON
		decodeBody(t, rr, &all)
		require.Len(t, all, 3)
		assert.Equal(t, "2024-03-01", all[0].Date)
		assert.Equal(t, "2023-12-31", all[2].Date)

		rr = doRequest(t, srv, http.MethodGet, "/api/expenses?category=Lazer", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var lazer []expenseJSON
		decodeBody(t, rr, &lazer)
		assert.Len(t, lazer, 2)

		rr = doRequest(t, srv, http.MethodGet, "/api/expenses?date=2024-03-01", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var byDate []expenseJSON
		decodeBody(t, rr, &byDate)
		require.Len(t, byDate, 1)
		assert.Equal(t, 20.0, byDate[0].Value)
	})

	t.Run("unknown filter category", func(t *testing.T) {
		srv := newTestServer(t)

		rr := doRequest(t, srv, http.MethodGet, "/api/expenses?category=Inexistente", "")
		require.Equal(t, http.StatusNotFound, rr.Code)

		var errResp errorBody
		decodeBody(t, rr, &errResp)
		assert.Equal(t, "Category not found for filtering", errResp.Error)
	})
}

func TestUpdateExpenseHandler(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		srv := newTestServer(t)
		exp := createExpense(t, srv, `{"value": 10, "date": "2024-03-01", "category": "Lazer"}`)

		rr := doRequest(t, srv, http.MethodPut, "/api/expenses/"+exp.ID,
			`{"value": 25.50, "date": "2024-04-02", "description": "cinema", "category": "Transporte"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var updated expenseJSON
		decodeBody(t, rr, &updated)
		assert.Equal(t, exp.ID, updated.ID)
		assert.Equal(t, 25.5, updated.Value)
		assert.Equal(t, "2024-04-02", updated.Date)
		assert.Equal(t, "cinema", updated.Description)
		require.NotNil(t, updated.Category)
		assert.Equal(t, "Transporte", *updated.Category)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		srv := newTestServer(t)
		exp := createExpense(t, srv, `{"value": 10, "date": "2024-03-01", "category": "Lazer"}`)

		rr := doRequest(t, srv, http.MethodPut, "/api/expenses/"+exp.ID,
			`{"value": 10, "date": "2024-03-01", "category": "Inexistente"}`)
		require.Equal(t, http.StatusNotFound, rr.Code)

		var errResp errorBody
		decodeBody(t, rr, &errResp)
		assert.Equal(t, "Category not found", errResp.Error)
	})

	t.Run("unknown id beats invalid payload", func(t *testing.T) {
		srv := newTestServer(t)

		rr := doRequest(t, srv, http.MethodPut, "/api/expenses/missing", `{}`)
		require.Equal(t, http.StatusNotFound, rr.Code)

		var errResp errorBody
		decodeBody(t, rr, &errResp)
		assert.Equal(t, "Expense not found", errResp.Error)
	})
}

func TestDeleteExpenseHandler(t *testing.T) {
	srv := newTestServer(t)
	exp := createExpense(t, srv, `{"value": 10, "date": "2024-03-01", "category": "Lazer"}`)

	rr := doRequest(t, srv, http.MethodDelete, "/api/expenses/"+exp.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var msg messageBody
	decodeBody(t, rr, &msg)
	assert.Equal(t, "Expense deleted successfully", msg.Message)

	rr = doRequest(t, srv, http.MethodDelete, "/api/expenses/"+exp.ID, "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var errResp errorBody
	decodeBody(t, rr, &errResp)
	assert.Equal(t, "Expense not found", errResp.Error)
}

func TestResetDataHandler(t *testing.T) {
	srv := newTestServer(t)
	createExpense(t, srv, `{"value": 10, "date": "2024-03-01", "category": "Lazer"}`)
	createExpense(t, srv, `{"value": 20, "date": "2024-03-02", "category": "Lazer"}`)

	rr := doRequest(t, srv, http.MethodDelete, "/api/reset_data", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var msg messageBody
	decodeBody(t, rr, &msg)
	assert.Equal(t, "2 expenses deleted successfully", msg.Message)

	// Categories survive a reset.
	rr = doRequest(t, srv, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var cats []categoryJSON
	decodeBody(t, rr, &cats)
	assert.Len(t, cats, 7)

	rr = doRequest(t, srv, http.MethodDelete, "/api/reset_data", "")
	require.Equal(t, http.StatusOK, rr.Code)
	decodeBody(t, rr, &msg)
	assert.Equal(t, "0 expenses deleted successfully", msg.Message)
}
