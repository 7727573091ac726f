package interfaces

import (
	"errors"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type MockBudgetService struct {
	budgets      []domain.Budget
	budget       *domain.Budget
	total        int
	lastFilter   domain.BudgetFilter
	lastPage     int
	lastPageSize int
	err          error
	shouldFail   bool
}

func (m *MockBudgetService) Create(userID string, input application.BudgetInput) (*domain.Budget, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.budget, nil
}

func (m *MockBudgetService) List(userID string, filter domain.BudgetFilter, page, pageSize int) ([]domain.Budget, int, error) {
	m.lastFilter = filter
	m.lastPage = page
	m.lastPageSize = pageSize
	if m.shouldFail {
		return nil, 0, errors.New("service error")
	}
	return m.budgets, m.total, nil
}

func (m *MockBudgetService) Get(userID, budgetID string) (*domain.Budget, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.budget, nil
}

func (m *MockBudgetService) Update(userID, budgetID string, input application.BudgetInput) (*domain.Budget, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.budget, nil
}

func (m *MockBudgetService) Delete(userID, budgetID string) error {
	if m.err != nil {
		return m.err
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}
