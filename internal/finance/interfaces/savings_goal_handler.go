package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type SavingsGoalServiceInterface interface {
	Create(userID string, input application.SavingsGoalInput) (*domain.SavingsGoal, error)
	List(userID string, page, pageSize int) ([]domain.SavingsGoal, int, error)
	Get(userID, goalID string) (*domain.SavingsGoal, error)
	Update(userID, goalID string, input application.SavingsGoalInput) (*domain.SavingsGoal, error)
	Delete(userID, goalID string) error
}

type SavingsGoalHandler struct {
	service      SavingsGoalServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewSavingsGoalHandler(service SavingsGoalServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *SavingsGoalHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &SavingsGoalHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *SavingsGoalHandler) CreateSavingsGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.SavingsGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.service.Create(userID, input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create savings goal")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Savings goal successfully created.",
		"data":    goal,
	})
}

func (h *SavingsGoalHandler) ListSavingsGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, pageSize := parsePaging(r)
	goals, total, err := h.service.List(userID, page, pageSize)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve savings goals")
		return
	}

	h.respondJSON(w, http.StatusOK, pageEnvelope("Savings goals retrieved successfully.", goals, page, pageSize, total))
}

func (h *SavingsGoalHandler) GetSavingsGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goal, err := h.service.Get(userID, r.PathValue("goalID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve savings goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Savings goal retrieved successfully.",
		"data":    goal,
	})
}

func (h *SavingsGoalHandler) UpdateSavingsGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.SavingsGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.service.Update(userID, r.PathValue("goalID"), input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update savings goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Savings goal successfully updated.",
		"data":    goal,
	})
}

func (h *SavingsGoalHandler) DeleteSavingsGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(userID, r.PathValue("goalID")); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete savings goal")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Savings goal successfully deleted.",
	})
}
