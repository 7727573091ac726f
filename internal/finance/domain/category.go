package domain

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

func IsValidCategoryType(categoryType string) bool {
	return categoryType == CategoryTypeIncome || categoryType == CategoryTypeExpense
}

type Category struct {
	ID     string `json:"id"`
	UserID string `json:"-"`
	Name   string `json:"name"`
	Type   string `json:"category_type"`
}

type CategoryRepository interface {
	Save(category *Category) error
	FindByUser(userID, categoryType string) ([]Category, error)
	// GetByID is owner-scoped: a category owned by another user is not found.
	GetByID(categoryID, userID string) (*Category, error)
	// FindByIDAnyOwner is used for ownership checks on referenced categories.
	FindByIDAnyOwner(categoryID string) (*Category, error)
	ExistsByName(userID, name, excludeID string) (bool, error)
	Update(category Category) error
	Delete(categoryID, userID string) error
}
