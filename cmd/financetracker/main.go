package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/lmalecki/FinanceTracker/internal/auth"
	database "github.com/lmalecki/FinanceTracker/internal/db"
	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/infrastructure"
	"github.com/lmalecki/FinanceTracker/internal/finance/interfaces"
	"github.com/lmalecki/FinanceTracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, fields ...map[string][]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(fields) > 0 && len(fields[0]) > 0 {
		payload["errors"] = fields[0]
	}
	respondJSON(w, status, payload)
}

type Server struct {
	router             *http.ServeMux
	authHandler        *auth.Handler
	userHandler        *user.Handler
	authService        auth.Service
	categoryHandler    *interfaces.CategoryHandler
	budgetHandler      *interfaces.BudgetHandler
	transactionHandler *interfaces.TransactionHandler
	savingsGoalHandler *interfaces.SavingsGoalHandler
	reportHandler      *interfaces.ReportHandler
}

func NewServer(
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	budgetHandler *interfaces.BudgetHandler,
	transactionHandler *interfaces.TransactionHandler,
	savingsGoalHandler *interfaces.SavingsGoalHandler,
	reportHandler *interfaces.ReportHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		authHandler:        authHandler,
		userHandler:        userHandler,
		authService:        authService,
		categoryHandler:    categoryHandler,
		budgetHandler:      budgetHandler,
		transactionHandler: transactionHandler,
		savingsGoalHandler: savingsGoalHandler,
		reportHandler:      reportHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	protect := s.authService.JWTAccessTokenMiddleware()

	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	protectedRoutes.Handle("POST /api/protected/2fa/register", protect(http.HandlerFunc(s.authHandler.HandleRegisterTwoFactor)))
	protectedRoutes.Handle("POST /api/protected/2fa/verify-registration", protect(http.HandlerFunc(s.authHandler.HandleVerifyTwoFactor)))
	protectedRoutes.Handle("DELETE /api/protected/2fa/disable", protect(http.HandlerFunc(s.authHandler.HandleDisableTwoFactor)))

	// CATEGORIES API
	protectedRoutes.Handle("POST /api/protected/categories", protect(http.HandlerFunc(s.categoryHandler.CreateCategory)))
	protectedRoutes.Handle("GET /api/protected/categories", protect(http.HandlerFunc(s.categoryHandler.ListCategories)))
	protectedRoutes.Handle("GET /api/protected/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.GetCategory)))
	protectedRoutes.Handle("PUT /api/protected/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.UpdateCategory)))
	protectedRoutes.Handle("DELETE /api/protected/categories/{categoryID}", protect(http.HandlerFunc(s.categoryHandler.DeleteCategory)))

	// BUDGETS API
	protectedRoutes.Handle("POST /api/protected/budgets", protect(http.HandlerFunc(s.budgetHandler.CreateBudget)))
	protectedRoutes.Handle("GET /api/protected/budgets", protect(http.HandlerFunc(s.budgetHandler.ListBudgets)))
	protectedRoutes.Handle("GET /api/protected/budgets/{budgetID}", protect(http.HandlerFunc(s.budgetHandler.GetBudget)))
	protectedRoutes.Handle("PUT /api/protected/budgets/{budgetID}", protect(http.HandlerFunc(s.budgetHandler.UpdateBudget)))
	protectedRoutes.Handle("DELETE /api/protected/budgets/{budgetID}", protect(http.HandlerFunc(s.budgetHandler.DeleteBudget)))

	// TRANSACTIONS API
	protectedRoutes.Handle("POST /api/protected/transactions", protect(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions", protect(http.HandlerFunc(s.transactionHandler.ListTransactions)))
	protectedRoutes.Handle("GET /api/protected/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	protectedRoutes.Handle("PUT /api/protected/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{transactionID}", protect(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// SAVINGS GOALS API
	protectedRoutes.Handle("POST /api/protected/savings-goals", protect(http.HandlerFunc(s.savingsGoalHandler.CreateSavingsGoal)))
	protectedRoutes.Handle("GET /api/protected/savings-goals", protect(http.HandlerFunc(s.savingsGoalHandler.ListSavingsGoals)))
	protectedRoutes.Handle("GET /api/protected/savings-goals/{goalID}", protect(http.HandlerFunc(s.savingsGoalHandler.GetSavingsGoal)))
	protectedRoutes.Handle("PUT /api/protected/savings-goals/{goalID}", protect(http.HandlerFunc(s.savingsGoalHandler.UpdateSavingsGoal)))
	protectedRoutes.Handle("DELETE /api/protected/savings-goals/{goalID}", protect(http.HandlerFunc(s.savingsGoalHandler.DeleteSavingsGoal)))

	// REPORTS API
	protectedRoutes.Handle("GET /api/protected/reports/income-expenses", protect(http.HandlerFunc(s.reportHandler.IncomeExpenseReport)))
	protectedRoutes.Handle("GET /api/protected/reports/trends", protect(http.HandlerFunc(s.reportHandler.TrendsReport)))
	protectedRoutes.Handle("GET /api/protected/reports/net-worth", protect(http.HandlerFunc(s.reportHandler.NetWorthReport)))
	protectedRoutes.Handle("GET /api/protected/reports/budget-alerts", protect(http.HandlerFunc(s.reportHandler.BudgetAlerts)))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.HandleRefreshToken)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	authRepo := auth.NewUserRepository(dbService.DB)
	jwtManager := auth.NewJWTManager()

	userService := user.NewUserService(userRepo)
	authService := auth.NewAuthService(authRepo, userService, jwtManager)
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService, authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	savingsGoalRepo := infrastructure.NewSavingsGoalRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	budgetService := application.NewBudgetService(budgetRepo, categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo, categoryRepo, budgetRepo)
	savingsGoalService := application.NewSavingsGoalService(savingsGoalRepo)
	reportService := application.NewReportService(transactionRepo, budgetRepo, savingsGoalRepo)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	savingsGoalHandler := interfaces.NewSavingsGoalHandler(savingsGoalService, respondJSON, respondError)
	reportHandler := interfaces.NewReportHandler(reportService, respondJSON, respondError)

	server := NewServer(authHandler, authService, userHandler, categoryHandler, budgetHandler, transactionHandler, savingsGoalHandler, reportHandler)
	server.RegisterRoutes()

	handler := loggingMiddleware(server.router)
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
