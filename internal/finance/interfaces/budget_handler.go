package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type BudgetServiceInterface interface {
	Create(userID string, input application.BudgetInput) (*domain.Budget, error)
	List(userID string, filter domain.BudgetFilter, page, pageSize int) ([]domain.Budget, int, error)
	Get(userID, budgetID string) (*domain.Budget, error)
	Update(userID, budgetID string, input application.BudgetInput) (*domain.Budget, error)
	Delete(userID, budgetID string) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewBudgetHandler(service BudgetServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *BudgetHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.BudgetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget, err := h.service.Create(userID, input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create budget")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully created.",
		"data":    budget,
	})
}

func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, pageSize := parsePaging(r)
	budgets, total, err := h.service.List(userID, parseBudgetFilter(r), page, pageSize)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve budgets")
		return
	}

	h.respondJSON(w, http.StatusOK, pageEnvelope("Budgets retrieved successfully.", budgets, page, pageSize, total))
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	budget, err := h.service.Get(userID, r.PathValue("budgetID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget retrieved successfully.",
		"data":    budget,
	})
}

func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.BudgetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget, err := h.service.Update(userID, r.PathValue("budgetID"), input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully updated.",
		"data":    budget,
	})
}

func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(userID, r.PathValue("budgetID")); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete budget")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully deleted.",
	})
}
