package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

func TestCategoryCreate_Valid(t *testing.T) {
	repo := &mockCategoryRepo{}
	service := NewCategoryService(repo)

	category, err := service.Create("user-1", CategoryInput{
		Name: strPtr("  Groceries "),
		Type: strPtr("Expense"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, domain.CategoryTypeExpense, category.Type)
	assert.NotEmpty(t, category.ID)
	assert.Len(t, repo.categories, 1)
}

func TestCategoryCreate_MissingFields(t *testing.T) {
	service := NewCategoryService(&mockCategoryRepo{})

	_, err := service.Create("user-1", CategoryInput{})
	assert.Error(t, err)
	fields := financeErrors.FieldMessages(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "category_type")
}

func TestCategoryCreate_InvalidType(t *testing.T) {
	service := NewCategoryService(&mockCategoryRepo{})

	_, err := service.Create("user-1", CategoryInput{
		Name: strPtr("Groceries"),
		Type: strPtr("savings"),
	})
	assert.Error(t, err)
	fields := financeErrors.FieldMessages(err)
	assert.Equal(t, []string{"Category type must be either 'income' or 'expense'."}, fields["category_type"])
}

func TestCategoryCreate_DuplicateNameCaseInsensitive(t *testing.T) {
	repo := &mockCategoryRepo{categories: []domain.Category{
		{ID: "cat-1", UserID: "user-1", Name: "Groceries", Type: domain.CategoryTypeExpense},
	}}
	service := NewCategoryService(repo)

	_, err := service.Create("user-1", CategoryInput{
		Name: strPtr("groceries"),
		Type: strPtr("expense"),
	})
	assert.Error(t, err)
	fields := financeErrors.FieldMessages(err)
	assert.Equal(t, []string{"You already have a category with this name."}, fields["name"])
}

func TestCategoryCreate_SameNameDifferentUser(t *testing.T) {
	repo := &mockCategoryRepo{categories: []domain.Category{
		{ID: "cat-1", UserID: "user-2", Name: "Groceries", Type: domain.CategoryTypeExpense},
	}}
	service := NewCategoryService(repo)

	_, err := service.Create("user-1", CategoryInput{
		Name: strPtr("Groceries"),
		Type: strPtr("expense"),
	})
	assert.NoError(t, err)
}

func TestCategoryUpdate_PartialKeepsType(t *testing.T) {
	repo := &mockCategoryRepo{categories: []domain.Category{
		{ID: "cat-1", UserID: "user-1", Name: "Groceries", Type: domain.CategoryTypeExpense},
	}}
	service := NewCategoryService(repo)

	updated, err := service.Update("user-1", "cat-1", CategoryInput{Name: strPtr("Food")})
	assert.NoError(t, err)
	assert.Equal(t, "Food", updated.Name)
	assert.Equal(t, domain.CategoryTypeExpense, updated.Type)
}

func TestCategoryUpdate_SameNameAllowed(t *testing.T) {
	repo := &mockCategoryRepo{categories: []domain.Category{
		{ID: "cat-1", UserID: "user-1", Name: "Groceries", Type: domain.CategoryTypeExpense},
	}}
	service := NewCategoryService(repo)

	_, err := service.Update("user-1", "cat-1", CategoryInput{Name: strPtr("Groceries")})
	assert.NoError(t, err)
}

func TestCategoryGet_OtherOwnerNotFound(t *testing.T) {
	repo := &mockCategoryRepo{categories: []domain.Category{
		{ID: "cat-1", UserID: "user-2", Name: "Groceries", Type: domain.CategoryTypeExpense},
	}}
	service := NewCategoryService(repo)

	_, err := service.Get("user-1", "cat-1")
	assert.ErrorIs(t, err, financeErrors.ErrNotFound)
}

func TestCategoryList_EmptyIsNotNil(t *testing.T) {
	service := NewCategoryService(&mockCategoryRepo{})

	categories, err := service.List("user-1", "")
	assert.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}
