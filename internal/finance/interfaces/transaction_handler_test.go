package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

func TestCreateTransaction_Success(t *testing.T) {
	body := strings.NewReader(`{"category":"cat-1","amount":"12.50","date":"2026-03-10","description":"Weekly shopping"}`)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/transactions", body), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		transaction: &domain.Transaction{
			ID: "tx-1", UserID: "user-1", CategoryID: "cat-1",
			Amount: 1250, Date: domain.NewDate(2026, time.March, 10), Description: "Weekly shopping",
		},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Status string `json:"status"`
		Data   struct {
			Amount string `json:"amount"`
			Date   string `json:"date"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, "12.50", response.Data.Amount)
	assert.Equal(t, "2026-03-10", response.Data.Date)
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	body := strings.NewReader(`{"amount":`)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/transactions", body), "user-1")
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestListTransactions_PaginationEnvelope(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/protected/transactions?page=2&page_size=5", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		transactions: []domain.Transaction{
			{ID: "tx-1", CategoryID: "cat-1", Amount: 1250, Date: domain.NewDate(2026, time.March, 10), Description: "A"},
		},
		total: 11,
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.ListTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 2, mockService.lastPage)
	assert.Equal(t, 5, mockService.lastPageSize)

	var response struct {
		Pagination struct {
			Page     int `json:"page"`
			PageSize int `json:"page_size"`
			Total    int `json:"total"`
		} `json:"pagination"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, 2, response.Pagination.Page)
	assert.Equal(t, 5, response.Pagination.PageSize)
	assert.Equal(t, 11, response.Pagination.Total)
}

// Bad paging and date values fall back to the defaults; an unknown category
// type travels through so it matches no categories instead of all of them.
func TestListTransactions_BadFilterValues(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet,
		"/api/protected/transactions?page=abc&page_size=-3&start_date=banana&category_type=savings", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.ListTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 1, mockService.lastPage)
	assert.Equal(t, 10, mockService.lastPageSize)
	assert.Nil(t, mockService.lastFilter.StartDate)
	assert.Equal(t, "savings", mockService.lastFilter.CategoryType)
}

func TestListTransactions_PageSizeCapped(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/protected/transactions?page_size=500", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.ListTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 100, mockService.lastPageSize)
}

func TestUpdateTransaction_ValidationError(t *testing.T) {
	body := strings.NewReader(`{"amount":"-1.00"}`)
	req := withUserID(httptest.NewRequest(http.MethodPut, "/api/protected/transactions/tx-1", body), "user-1")
	req.SetPathValue("transactionID", "tx-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		err: financeErrors.NewFieldError("amount", "Transaction amount must be greater than zero."),
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	fields, ok := response["errors"].(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, fields, "amount")
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/protected/transactions/tx-1", nil), "user-1")
	req.SetPathValue("transactionID", "tx-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{err: financeErrors.ErrNotFound}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
