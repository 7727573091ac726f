package interfaces

import (
	"log"
	"net/http"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type ReportServiceInterface interface {
	Totals(userID string, filter domain.TransactionFilter) (*application.TotalReport, error)
	Trends(userID string, filter domain.TransactionFilter, timeframe string) ([]application.TrendRow, error)
	NetWorth(userID string, filter domain.TransactionFilter) (*application.NetWorthReport, error)
	BudgetAlerts(userID string) ([]application.BudgetAlert, error)
}

type ReportHandler struct {
	service      ReportServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewReportHandler(service ReportServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *ReportHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &ReportHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ReportHandler) IncomeExpenseReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.service.Totals(userID, parseTransactionFilter(r))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to generate report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Income and expense report generated successfully.",
		"data":    report,
	})
}

func (h *ReportHandler) TrendsReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	timeframe := r.URL.Query().Get("timeframe")
	if timeframe != "" && timeframe != application.TimeframeMonth && timeframe != application.TimeframeWeek {
		h.respondError(w, http.StatusBadRequest, "Invalid timeframe. Use 'month' or 'week'.")
		return
	}

	rows, err := h.service.Trends(userID, parseTransactionFilter(r), timeframe)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to generate report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Trends report generated successfully.",
		"data":    rows,
	})
}

func (h *ReportHandler) NetWorthReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.service.NetWorth(userID, parseTransactionFilter(r))
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to generate report")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Net worth report generated successfully.",
		"data":    report,
	})
}

func (h *ReportHandler) BudgetAlerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	alerts, err := h.service.BudgetAlerts(userID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to generate alerts")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget alerts generated successfully.",
		"data":    alerts,
	})
}
