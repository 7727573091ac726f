package user

import (
	"encoding/json"
	"log"
	"net/http"

	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

// TokenIssuer mints the JWT pair for a freshly registered user. It is
// implemented by the auth service.
type TokenIssuer interface {
	IssueTokens(userID, hashToken string) (accessToken string, refreshToken string, err error)
}

type Handler struct {
	userService Service
	tokenIssuer TokenIssuer
}

func NewHandler(userService Service, tokenIssuer TokenIssuer) *Handler {
	return &Handler{
		userService: userService,
		tokenIssuer: tokenIssuer,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("JSON encoding error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newUser, err := h.userService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"status":  "error",
				"message": "Validation failed",
				"code":    http.StatusBadRequest,
				"errors":  financeErrors.FieldMessages(err),
			})
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	accessToken, refreshToken, err := h.tokenIssuer.IssueTokens(newUser.ID, newUser.HashToken)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteNoneMode,
		Path:     "/api/refresh/token",
	})

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "User successfully registered.",
		"data": map[string]interface{}{
			"user":         newUser,
			"access_token": accessToken,
		},
	})
}
