package application

import (
	"strings"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

type mockCategoryRepo struct {
	categories []domain.Category
}

func (m *mockCategoryRepo) Save(category *domain.Category) error {
	m.categories = append(m.categories, *category)
	return nil
}

func (m *mockCategoryRepo) FindByUser(userID, categoryType string) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range m.categories {
		if c.UserID != userID {
			continue
		}
		if categoryType != "" && c.Type != categoryType {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryRepo) GetByID(categoryID, userID string) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.ID == categoryID && c.UserID == userID {
			category := c
			return &category, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *mockCategoryRepo) FindByIDAnyOwner(categoryID string) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.ID == categoryID {
			category := c
			return &category, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *mockCategoryRepo) ExistsByName(userID, name, excludeID string) (bool, error) {
	for _, c := range m.categories {
		if c.UserID == userID && strings.EqualFold(c.Name, name) && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCategoryRepo) Update(category domain.Category) error {
	for i, c := range m.categories {
		if c.ID == category.ID && c.UserID == category.UserID {
			m.categories[i] = category
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *mockCategoryRepo) Delete(categoryID, userID string) error {
	for i, c := range m.categories {
		if c.ID == categoryID && c.UserID == userID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

type mockBudgetRepo struct {
	budgets        []domain.Budget
	categoryNames  map[string]string
	linkedExpenses map[string]domain.Amount
}

func (m *mockBudgetRepo) Save(budget *domain.Budget) error {
	m.budgets = append(m.budgets, *budget)
	return nil
}

func (m *mockBudgetRepo) FindByUser(userID string, filter domain.BudgetFilter, limit, offset int) ([]domain.Budget, error) {
	var out []domain.Budget
	for _, b := range m.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockBudgetRepo) CountByUser(userID string, filter domain.BudgetFilter) (int, error) {
	count := 0
	for _, b := range m.budgets {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockBudgetRepo) FindAllByUser(userID string) ([]domain.BudgetWithCategory, error) {
	var out []domain.BudgetWithCategory
	for _, b := range m.budgets {
		if b.UserID == userID {
			out = append(out, domain.BudgetWithCategory{Budget: b, CategoryName: m.categoryNames[b.CategoryID]})
		}
	}
	return out, nil
}

func (m *mockBudgetRepo) GetByID(budgetID, userID string) (*domain.Budget, error) {
	for _, b := range m.budgets {
		if b.ID == budgetID && b.UserID == userID {
			budget := b
			return &budget, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *mockBudgetRepo) FindByIDAnyOwner(budgetID string) (*domain.Budget, error) {
	for _, b := range m.budgets {
		if b.ID == budgetID {
			budget := b
			return &budget, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *mockBudgetRepo) Update(budget domain.Budget) error {
	for i, b := range m.budgets {
		if b.ID == budget.ID && b.UserID == budget.UserID {
			m.budgets[i] = budget
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *mockBudgetRepo) Delete(budgetID, userID string) error {
	for i, b := range m.budgets {
		if b.ID == budgetID && b.UserID == userID {
			m.budgets = append(m.budgets[:i], m.budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *mockBudgetRepo) SumLinkedExpenses(budgetID string) (domain.Amount, error) {
	return m.linkedExpenses[budgetID], nil
}

type mockTransactionRepo struct {
	transactions []domain.Transaction
	entries      []domain.ReportEntry
}

func (m *mockTransactionRepo) Save(transaction *domain.Transaction) error {
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *mockTransactionRepo) FindByUser(userID string, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockTransactionRepo) CountByUser(userID string, filter domain.TransactionFilter) (int, error) {
	count := 0
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockTransactionRepo) GetByID(transactionID, userID string) (*domain.Transaction, error) {
	for _, tx := range m.transactions {
		if tx.ID == transactionID && tx.UserID == userID {
			transaction := tx
			return &transaction, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *mockTransactionRepo) Update(transaction domain.Transaction) error {
	for i, tx := range m.transactions {
		if tx.ID == transaction.ID && tx.UserID == transaction.UserID {
			m.transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *mockTransactionRepo) Delete(transactionID, userID string) error {
	for i, tx := range m.transactions {
		if tx.ID == transactionID && tx.UserID == userID {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *mockTransactionRepo) FindForReport(userID string, filter domain.TransactionFilter) ([]domain.ReportEntry, error) {
	return m.entries, nil
}

type mockSavingsGoalRepo struct {
	goals      []domain.SavingsGoal
	sumCurrent domain.Amount
}

func (m *mockSavingsGoalRepo) Save(goal *domain.SavingsGoal) error {
	m.goals = append(m.goals, *goal)
	return nil
}

func (m *mockSavingsGoalRepo) FindByUser(userID string, limit, offset int) ([]domain.SavingsGoal, error) {
	var out []domain.SavingsGoal
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockSavingsGoalRepo) CountByUser(userID string) (int, error) {
	count := 0
	for _, g := range m.goals {
		if g.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockSavingsGoalRepo) GetByID(goalID, userID string) (*domain.SavingsGoal, error) {
	for _, g := range m.goals {
		if g.ID == goalID && g.UserID == userID {
			goal := g
			return &goal, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *mockSavingsGoalRepo) Update(goal domain.SavingsGoal) error {
	for i, g := range m.goals {
		if g.ID == goal.ID && g.UserID == goal.UserID {
			m.goals[i] = goal
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *mockSavingsGoalRepo) Delete(goalID, userID string) error {
	for i, g := range m.goals {
		if g.ID == goalID && g.UserID == userID {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrNotFound
}

func (m *mockSavingsGoalRepo) SumCurrent(userID string) (domain.Amount, error) {
	if m.sumCurrent != 0 {
		return m.sumCurrent, nil
	}
	var total domain.Amount
	for _, g := range m.goals {
		if g.UserID == userID {
			total += g.CurrentAmount
		}
	}
	return total, nil
}

func strPtr(s string) *string                  { return &s }
func amountPtr(a domain.Amount) *domain.Amount { return &a }
func datePtr(d domain.Date) *domain.Date       { return &d }
