package application

import (
	"github.com/google/uuid"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

// BudgetInput is a candidate budget record, partial on update.
type BudgetInput struct {
	CategoryID      *string        `json:"category"`
	AllocatedAmount *domain.Amount `json:"allocated_amount"`
	StartDate       *domain.Date   `json:"start_date"`
	EndDate         *domain.Date   `json:"end_date"`
}

type BudgetService struct {
	repo         domain.BudgetRepository
	categoryRepo domain.CategoryRepository
	today        func() domain.Date
}

func NewBudgetService(repo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *BudgetService {
	return &BudgetService{
		repo:         repo,
		categoryRepo: categoryRepo,
		today:        domain.Today,
	}
}

func (s *BudgetService) resolveCategory(userID, categoryID string, ve *financeErrors.ValidationErrors) *domain.Category {
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

func (s *BudgetService) Create(userID string, input BudgetInput) (*domain.Budget, error) {
	ve := financeErrors.NewValidationErrors()

	budget := &domain.Budget{
		ID:     uuid.NewString(),
		UserID: userID,
	}

	if input.AllocatedAmount == nil {
		ve.Add("allocated_amount", "This field is required.")
	} else if *input.AllocatedAmount <= 0 {
		ve.Add("allocated_amount", "Allocated amount must be greater than zero.")
	} else {
		budget.AllocatedAmount = *input.AllocatedAmount
	}

	if input.StartDate == nil {
		ve.Add("start_date", "This field is required.")
	} else if input.StartDate.Before(s.today()) {
		// Only creation is pinned to today; updates may keep a past start.
		ve.Add("start_date", "Start date cannot be in the past.")
	} else {
		budget.StartDate = *input.StartDate
	}

	if input.EndDate == nil {
		ve.Add("end_date", "This field is required.")
	} else {
		budget.EndDate = *input.EndDate
	}

	if input.StartDate != nil && input.EndDate != nil && !input.EndDate.After(*input.StartDate) {
		ve.Add("end_date", "End date must be after the start date.")
	}

	if input.CategoryID == nil {
		ve.Add("category", "This field is required.")
	} else if category := s.resolveCategory(userID, *input.CategoryID, ve); category != nil {
		budget.CategoryID = category.ID
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) List(userID string, filter domain.BudgetFilter, page, pageSize int) ([]domain.Budget, int, error) {
	limit, offset := normalizePaging(page, pageSize)

	budgets, err := s.repo.FindByUser(userID, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(userID, filter)
	if err != nil {
		return nil, 0, err
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	return budgets, total, nil
}

func (s *BudgetService) Get(userID, budgetID string) (*domain.Budget, error) {
	return s.repo.GetByID(budgetID, userID)
}

func (s *BudgetService) Update(userID, budgetID string, input BudgetInput) (*domain.Budget, error) {
	budget, err := s.repo.GetByID(budgetID, userID)
	if err != nil {
		return nil, err
	}

	ve := financeErrors.NewValidationErrors()

	if input.AllocatedAmount != nil {
		if *input.AllocatedAmount <= 0 {
			ve.Add("allocated_amount", "Allocated amount must be greater than zero.")
		} else {
			budget.AllocatedAmount = *input.AllocatedAmount
		}
	}

	if input.StartDate != nil {
		budget.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		budget.EndDate = *input.EndDate
	}
	// Cross-field check runs on the merged record so a partial update cannot
	// slip an inverted range past it.
	if !budget.EndDate.After(budget.StartDate) {
		ve.Add("end_date", "End date must be after the start date.")
	}

	if input.CategoryID != nil {
		if category := s.resolveCategory(userID, *input.CategoryID, ve); category != nil {
			budget.CategoryID = category.ID
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// Delete removes the budget; linked transactions keep existing with their
// budget reference cleared by the storage layer.
func (s *BudgetService) Delete(userID, budgetID string) error {
	return s.repo.Delete(budgetID, userID)
}
