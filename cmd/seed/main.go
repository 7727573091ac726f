package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/bxcodec/faker/v3"

	database "github.com/lmalecki/FinanceTracker/internal/db"
	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	"github.com/lmalecki/FinanceTracker/internal/finance/infrastructure"
	"github.com/lmalecki/FinanceTracker/internal/user"
)

const (
	demoPassword     = "demopassword1"
	transactionCount = 60
)

func amountString(cents int64) string {
	return domain.Amount(cents).String()
}

func randomPastDate(maxDaysBack int) domain.Date {
	return domain.Today().AddDays(-rand.Intn(maxDaysBack))
}

// seedUser registers a demo account with a faker-generated identity.
func seedUser(userService user.Service) (*user.User, error) {
	username := strings.ReplaceAll(faker.Username(), "_", "")
	if len(username) < 3 {
		username = fmt.Sprintf("demo%s", username)
	}
	return userService.Register(username, faker.Email(), demoPassword)
}

func main() {
	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	savingsGoalRepo := infrastructure.NewSavingsGoalRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	budgetService := application.NewBudgetService(budgetRepo, categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo, categoryRepo, budgetRepo)
	savingsGoalService := application.NewSavingsGoalService(savingsGoalRepo)

	demoUser, err := seedUser(userService)
	if err != nil {
		log.Fatalf("Could not create demo user: %v", err)
	}
	log.Printf("Created demo user %s (password: %s)", demoUser.Username, demoPassword)

	incomeNames := []string{"Salary", "Freelance", "Dividends"}
	expenseNames := []string{"Groceries", "Rent", "Entertainment", "Transport", "Utilities"}

	var incomeCategories, expenseCategories []*domain.Category
	for _, name := range incomeNames {
		categoryName := name
		categoryType := domain.CategoryTypeIncome
		category, err := categoryService.Create(demoUser.ID, application.CategoryInput{Name: &categoryName, Type: &categoryType})
		if err != nil {
			log.Fatalf("Could not create category %q: %v", name, err)
		}
		incomeCategories = append(incomeCategories, category)
	}
	for _, name := range expenseNames {
		categoryName := name
		categoryType := domain.CategoryTypeExpense
		category, err := categoryService.Create(demoUser.ID, application.CategoryInput{Name: &categoryName, Type: &categoryType})
		if err != nil {
			log.Fatalf("Could not create category %q: %v", name, err)
		}
		expenseCategories = append(expenseCategories, category)
	}
	log.Printf("Created %d categories", len(incomeCategories)+len(expenseCategories))

	var budgets []*domain.Budget
	startDate := domain.Today()
	endDate := startDate.AddDays(30)
	for _, category := range expenseCategories[:2] {
		categoryID := category.ID
		allocated := domain.Amount(20000 + rand.Int63n(80000))
		budget, err := budgetService.Create(demoUser.ID, application.BudgetInput{
			CategoryID:      &categoryID,
			AllocatedAmount: &allocated,
			StartDate:       &startDate,
			EndDate:         &endDate,
		})
		if err != nil {
			log.Fatalf("Could not create budget for %q: %v", category.Name, err)
		}
		budgets = append(budgets, budget)
	}
	log.Printf("Created %d budgets", len(budgets))

	for i := 0; i < transactionCount; i++ {
		var category *domain.Category
		var amount domain.Amount
		if i%4 == 0 {
			category = incomeCategories[rand.Intn(len(incomeCategories))]
			amount = domain.Amount(100000 + rand.Int63n(400000))
		} else {
			category = expenseCategories[rand.Intn(len(expenseCategories))]
			amount = domain.Amount(500 + rand.Int63n(20000))
		}

		categoryID := category.ID
		date := randomPastDate(180)
		description := faker.Sentence()
		input := application.TransactionInput{
			CategoryID:  &categoryID,
			Amount:      &amount,
			Date:        &date,
			Description: &description,
		}
		if category.Type == domain.CategoryTypeExpense && len(budgets) > 0 && rand.Intn(2) == 0 {
			input.BudgetID = &budgets[rand.Intn(len(budgets))].ID
		}
		if _, err := transactionService.Create(demoUser.ID, input); err != nil {
			log.Fatalf("Could not create transaction: %v", err)
		}
	}
	log.Printf("Created %d transactions", transactionCount)

	goalNames := []string{"Emergency fund", "Vacation", "New laptop"}
	for _, name := range goalNames {
		goalName := name
		target := domain.Amount(100000 + rand.Int63n(900000))
		current := target / domain.Amount(1+rand.Int63n(4))
		deadline := domain.Today().AddDays(90 + rand.Intn(365))
		_, err := savingsGoalService.Create(demoUser.ID, application.SavingsGoalInput{
			GoalName:      &goalName,
			TargetAmount:  &target,
			CurrentAmount: &current,
			Deadline:      &deadline,
		})
		if err != nil {
			log.Fatalf("Could not create savings goal %q: %v", name, err)
		}
	}
	log.Printf("Created %d savings goals", len(goalNames))

	log.Printf("Seed complete: demo user has income around %s and expenses to explore", amountString(250000))
}
