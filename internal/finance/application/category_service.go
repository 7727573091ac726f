package application

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

// CategoryInput is a candidate category record. Nil fields are absent, which
// is an error on create and "leave unchanged" on update.
type CategoryInput struct {
	Name *string `json:"name"`
	Type *string `json:"category_type"`
}

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(userID string, input CategoryInput) (*domain.Category, error) {
	ve := financeErrors.NewValidationErrors()

	var name string
	if input.Name == nil {
		ve.Add("name", "This field is required.")
	} else {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			ve.Add("name", "This field may not be blank.")
		}
	}

	var categoryType string
	if input.Type == nil {
		ve.Add("category_type", "This field is required.")
	} else {
		categoryType = strings.ToLower(strings.TrimSpace(*input.Type))
		if !domain.IsValidCategoryType(categoryType) {
			ve.Add("category_type", "Category type must be either 'income' or 'expense'.")
		}
	}

	if name != "" {
		exists, err := s.repo.ExistsByName(userID, name, "")
		if err != nil {
			return nil, err
		}
		if exists {
			ve.Add("name", "You already have a category with this name.")
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Type:   categoryType,
	}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(userID, categoryType string) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(userID, categoryType)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) Get(userID, categoryID string) (*domain.Category, error) {
	return s.repo.GetByID(categoryID, userID)
}

func (s *CategoryService) Update(userID, categoryID string, input CategoryInput) (*domain.Category, error) {
	category, err := s.repo.GetByID(categoryID, userID)
	if err != nil {
		return nil, err
	}

	ve := financeErrors.NewValidationErrors()

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			ve.Add("name", "This field may not be blank.")
		} else {
			exists, err := s.repo.ExistsByName(userID, name, categoryID)
			if err != nil {
				return nil, err
			}
			if exists {
				ve.Add("name", "You already have a category with this name.")
			}
			category.Name = name
		}
	}

	if input.Type != nil {
		categoryType := strings.ToLower(strings.TrimSpace(*input.Type))
		if !domain.IsValidCategoryType(categoryType) {
			ve.Add("category_type", "Category type must be either 'income' or 'expense'.")
		} else {
			category.Type = categoryType
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that transactions still reference; the
// repository reports that as a conflict.
func (s *CategoryService) Delete(userID, categoryID string) error {
	return s.repo.Delete(categoryID, userID)
}
