package interfaces

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type respondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type respondErrorFunc func(w http.ResponseWriter, status int, message string, fields ...map[string][]string)

func userIDFromContext(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok
}

// parsePaging reads page and page_size, falling back to the defaults and
// capping page_size. Unparseable values are treated as absent, like every
// other filter parameter.
func parsePaging(r *http.Request) (page, pageSize int) {
	page = 1
	pageSize = defaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// parseDateParam returns nil for missing or unparseable dates so that bad
// date filters are silently ignored instead of rejected.
func parseDateParam(r *http.Request, name string) *domain.Date {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	date, err := domain.ParseDate(value)
	if err != nil {
		return nil
	}
	return &date
}

// parseCategoryTypeParam passes the value through untouched: an unknown type
// names no category, so the filter matches nothing rather than everything.
func parseCategoryTypeParam(r *http.Request) string {
	return r.URL.Query().Get("category_type")
}

func parseTransactionFilter(r *http.Request) domain.TransactionFilter {
	return domain.TransactionFilter{
		CategoryID:   r.URL.Query().Get("category"),
		CategoryType: parseCategoryTypeParam(r),
		StartDate:    parseDateParam(r, "start_date"),
		EndDate:      parseDateParam(r, "end_date"),
	}
}

func parseBudgetFilter(r *http.Request) domain.BudgetFilter {
	return domain.BudgetFilter{
		StartDate:    parseDateParam(r, "start_date"),
		EndDate:      parseDateParam(r, "end_date"),
		CategoryType: parseCategoryTypeParam(r),
	}
}

type pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func pageEnvelope(message string, data interface{}, page, pageSize, total int) map[string]interface{} {
	return map[string]interface{}{
		"status":     "success",
		"message":    message,
		"data":       data,
		"pagination": pagination{Page: page, PageSize: pageSize, Total: total},
	}
}

// respondServiceError maps the error taxonomy onto status codes. Validation
// errors carry their field messages; anything unexpected is hidden behind
// the fallback message.
func respondServiceError(respondError respondErrorFunc, w http.ResponseWriter, err error, fallback string) {
	if financeErrors.IsValidationError(err) {
		respondError(w, http.StatusBadRequest, "Validation failed", financeErrors.FieldMessages(err))
		return
	}
	if financeErrors.IsConflictError(err) {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	if errors.Is(err, financeErrors.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Not found.")
		return
	}
	respondError(w, http.StatusInternalServerError, fallback)
}
