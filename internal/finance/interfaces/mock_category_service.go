package interfaces

import (
	"errors"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	category   *domain.Category
	err        error
	shouldFail bool
}

func (m *MockCategoryService) Create(userID string, input application.CategoryInput) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.category, nil
}

func (m *MockCategoryService) List(userID, categoryType string) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) Get(userID, categoryID string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.category, nil
}

func (m *MockCategoryService) Update(userID, categoryID string, input application.CategoryInput) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.category, nil
}

func (m *MockCategoryService) Delete(userID, categoryID string) error {
	if m.err != nil {
		return m.err
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}
