package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

func withUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "userID", userID))
}

func TestCreateCategory_Success(t *testing.T) {
	body := strings.NewReader(`{"name":"Groceries","category_type":"expense"}`)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/categories", body), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		category: &domain.Category{ID: "cat-1", UserID: "user-1", Name: "Groceries", Type: "expense"},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "success", response["status"])
	assert.Equal(t, "Category successfully created.", response["message"])
}

func TestCreateCategory_ValidationErrors(t *testing.T) {
	body := strings.NewReader(`{}`)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/categories", body), "user-1")
	w := httptest.NewRecorder()

	ve := financeErrors.NewValidationErrors()
	ve.Add("name", "This field is required.")
	ve.Add("category_type", "This field is required.")
	mockService := &MockCategoryService{err: ve}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Validation failed", response["message"])

	fields, ok := response["errors"].(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "category_type")
}

func TestCreateCategory_Conflict(t *testing.T) {
	body := strings.NewReader(`{"name":"Groceries","category_type":"expense"}`)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/protected/categories", body), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: financeErrors.NewConflictError("You already have a category with this name.")}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestCreateCategory_MissingUser(t *testing.T) {
	body := strings.NewReader(`{"name":"Groceries","category_type":"expense"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/protected/categories", body)
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestListCategories_Success(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/protected/categories?category_type=income", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{categories: []domain.Category{
		{ID: "cat-1", Name: "Salary", Type: "income"},
		{ID: "cat-2", Name: "Bonus", Type: "income"},
	}}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.ListCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status string            `json:"status"`
		Data   []domain.Category `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "success", response.Status)
	assert.Len(t, response.Data, 2)
}

func TestGetCategory_NotFound(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/protected/categories/cat-1", nil), "user-1")
	req.SetPathValue("categoryID", "cat-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: financeErrors.ErrNotFound}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.GetCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteCategory_ReferencedConflict(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/protected/categories/cat-1", nil), "user-1")
	req.SetPathValue("categoryID", "cat-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: financeErrors.NewConflictError("Cannot delete a category that is referenced by transactions.")}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Cannot delete a category that is referenced by transactions.", response["message"])
}

func TestListCategories_ErrorFromService(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/protected/categories", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{shouldFail: true}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.ListCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var response map[string]interface{}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, "Failed to retrieve categories", response["message"])
}
