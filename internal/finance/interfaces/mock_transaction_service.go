package interfaces

import (
	"errors"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type MockTransactionService struct {
	transactions []domain.Transaction
	transaction  *domain.Transaction
	total        int
	lastFilter   domain.TransactionFilter
	lastPage     int
	lastPageSize int
	err          error
	shouldFail   bool
}

func (m *MockTransactionService) Create(userID string, input application.TransactionInput) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.transaction, nil
}

func (m *MockTransactionService) List(userID string, filter domain.TransactionFilter, page, pageSize int) ([]domain.Transaction, int, error) {
	m.lastFilter = filter
	m.lastPage = page
	m.lastPageSize = pageSize
	if m.shouldFail {
		return nil, 0, errors.New("service error")
	}
	return m.transactions, m.total, nil
}

func (m *MockTransactionService) Get(userID, transactionID string) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.transaction, nil
}

func (m *MockTransactionService) Update(userID, transactionID string, input application.TransactionInput) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.transaction, nil
}

func (m *MockTransactionService) Delete(userID, transactionID string) error {
	if m.err != nil {
		return m.err
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}
