package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type TransactionServiceInterface interface {
	Create(userID string, input application.TransactionInput) (*domain.Transaction, error)
	List(userID string, filter domain.TransactionFilter, page, pageSize int) ([]domain.Transaction, int, error)
	Get(userID, transactionID string) (*domain.Transaction, error)
	Update(userID, transactionID string, input application.TransactionInput) (*domain.Transaction, error)
	Delete(userID, transactionID string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.Create(userID, input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page, pageSize := parsePaging(r)
	transactions, total, err := h.service.List(userID, parseTransactionFilter(r), page, pageSize)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, pageEnvelope("Transactions retrieved successfully.", transactions, page, pageSize, total))
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transaction, err := h.service.Get(userID, r.PathValue("transactionID"))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.Update(userID, r.PathValue("transactionID"), input)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(userID, r.PathValue("transactionID")); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully deleted.",
	})
}
