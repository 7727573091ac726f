package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type CategoryServiceInterface interface {
	Create(userID string, input application.CategoryInput) (*domain.Category, error)
	List(userID, categoryType string) ([]domain.Category, error)
	Get(userID, categoryID string) (*domain.Category, error)
	Update(userID, categoryID string, input application.CategoryInput) (*domain.Category, error)
	Delete(userID, categoryID string) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *CategoryHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.Create(userID, input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

// ListCategories is owner-scoped and unpaginated; only the category_type
// filter applies.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	categories, err := h.service.List(userID, parseCategoryTypeParam(r))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Categories retrieved successfully.",
		"data":    categories,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	category, err := h.service.Get(userID, r.PathValue("categoryID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category retrieved successfully.",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.Update(userID, r.PathValue("categoryID"), input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(userID, r.PathValue("categoryID")); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully deleted.",
	})
}
