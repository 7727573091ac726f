package interfaces

import (
	"errors"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type MockSavingsGoalService struct {
	goals        []domain.SavingsGoal
	goal         *domain.SavingsGoal
	total        int
	lastPage     int
	lastPageSize int
	err          error
	shouldFail   bool
}

func (m *MockSavingsGoalService) Create(userID string, input application.SavingsGoalInput) (*domain.SavingsGoal, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.goal, nil
}

func (m *MockSavingsGoalService) List(userID string, page, pageSize int) ([]domain.SavingsGoal, int, error) {
	m.lastPage = page
	m.lastPageSize = pageSize
	if m.shouldFail {
		return nil, 0, errors.New("service error")
	}
	return m.goals, m.total, nil
}

func (m *MockSavingsGoalService) Get(userID, goalID string) (*domain.SavingsGoal, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.goal, nil
}

func (m *MockSavingsGoalService) Update(userID, goalID string, input application.SavingsGoalInput) (*domain.SavingsGoal, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.goal, nil
}

func (m *MockSavingsGoalService) Delete(userID, goalID string) error {
	if m.err != nil {
		return m.err
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}
