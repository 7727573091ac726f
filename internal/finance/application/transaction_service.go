package application

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

// TransactionInput is a candidate transaction record, partial on update.
type TransactionInput struct {
	CategoryID  *string        `json:"category"`
	BudgetID    *string        `json:"budget"`
	Amount      *domain.Amount `json:"amount"`
	Date        *domain.Date   `json:"date"`
	Description *string        `json:"description"`
}

type TransactionService struct {
	repo         domain.TransactionRepository
	categoryRepo domain.CategoryRepository
	budgetRepo   domain.BudgetRepository
	today        func() domain.Date
}

func NewTransactionService(repo domain.TransactionRepository, categoryRepo domain.CategoryRepository, budgetRepo domain.BudgetRepository) *TransactionService {
	return &TransactionService{
		repo:         repo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
		today:        domain.Today,
	}
}

// resolveCategory checks that a referenced category exists and belongs to the
// acting user. Both failures surface as validation errors on the category
// field, never as raw storage errors.
func (s *TransactionService) resolveCategory(userID, categoryID string, ve *financeErrors.ValidationErrors) *domain.Category {
	category, err := s.categoryRepo.FindByIDAnyOwner(categoryID)
	if err != nil {
		ve.Add("category", "Invalid category selected.")
		return nil
	}
	if category.UserID != userID {
		ve.Add("category", "You do not own this category.")
		return nil
	}
	return category
}

func (s *TransactionService) resolveBudget(userID, budgetID string, ve *financeErrors.ValidationErrors) *domain.Budget {
	budget, err := s.budgetRepo.FindByIDAnyOwner(budgetID)
	if err != nil || budget.UserID != userID {
		ve.Add("budget", "Invalid budget selected.")
		return nil
	}
	return budget
}

func (s *TransactionService) Create(userID string, input TransactionInput) (*domain.Transaction, error) {
	ve := financeErrors.NewValidationErrors()

	transaction := &domain.Transaction{
		ID:     uuid.NewString(),
		UserID: userID,
	}

	if input.Amount == nil {
		ve.Add("amount", "This field is required.")
	} else if *input.Amount <= 0 {
		ve.Add("amount", "Transaction amount must be greater than zero.")
	} else {
		transaction.Amount = *input.Amount
	}

	if input.Date == nil {
		ve.Add("date", "This field is required.")
	} else if input.Date.After(s.today()) {
		ve.Add("date", "Transaction date cannot be in the future.")
	} else {
		transaction.Date = *input.Date
	}

	if input.Description == nil {
		ve.Add("description", "This field is required.")
	} else {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			ve.Add("description", "Description cannot be empty.")
		}
		transaction.Description = description
	}

	var category *domain.Category
	if input.CategoryID == nil {
		ve.Add("category", "This field is required.")
	} else {
		category = s.resolveCategory(userID, *input.CategoryID, ve)
		if category != nil {
			transaction.CategoryID = category.ID
		}
	}

	if input.BudgetID != nil {
		budget := s.resolveBudget(userID, *input.BudgetID, ve)
		// Budgets only track spending, so the link is dropped for income.
		if budget != nil && category != nil && category.Type == domain.CategoryTypeExpense {
			transaction.BudgetID = &budget.ID
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) List(userID string, filter domain.TransactionFilter, page, pageSize int) ([]domain.Transaction, int, error) {
	limit, offset := normalizePaging(page, pageSize)

	transactions, err := s.repo.FindByUser(userID, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(userID, filter)
	if err != nil {
		return nil, 0, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, total, nil
}

func (s *TransactionService) Get(userID, transactionID string) (*domain.Transaction, error) {
	return s.repo.GetByID(transactionID, userID)
}

func (s *TransactionService) Update(userID, transactionID string, input TransactionInput) (*domain.Transaction, error) {
	transaction, err := s.repo.GetByID(transactionID, userID)
	if err != nil {
		return nil, err
	}

	ve := financeErrors.NewValidationErrors()

	if input.Amount != nil {
		if *input.Amount <= 0 {
			ve.Add("amount", "Transaction amount must be greater than zero.")
		} else {
			transaction.Amount = *input.Amount
		}
	}

	if input.Date != nil {
		if input.Date.After(s.today()) {
			ve.Add("date", "Transaction date cannot be in the future.")
		} else {
			transaction.Date = *input.Date
		}
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			ve.Add("description", "Description cannot be empty.")
		} else {
			transaction.Description = description
		}
	}

	category := &domain.Category{}
	if input.CategoryID != nil {
		category = s.resolveCategory(userID, *input.CategoryID, ve)
		if category != nil {
			transaction.CategoryID = category.ID
		}
	} else {
		category, err = s.categoryRepo.FindByIDAnyOwner(transaction.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	if input.BudgetID != nil {
		budget := s.resolveBudget(userID, *input.BudgetID, ve)
		if budget != nil {
			if category != nil && category.Type == domain.CategoryTypeExpense {
				transaction.BudgetID = &budget.ID
			} else {
				transaction.BudgetID = nil
			}
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) Delete(userID, transactionID string) error {
	return s.repo.Delete(transactionID, userID)
}
