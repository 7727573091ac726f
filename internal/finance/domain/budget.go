package domain

type Budget struct {
	ID              string `json:"id"`
	UserID          string `json:"-"`
	CategoryID      string `json:"category"`
	AllocatedAmount Amount `json:"allocated_amount"`
	StartDate       Date   `json:"start_date"`
	EndDate         Date   `json:"end_date"`
}

// BudgetFilter narrows a budget listing. Both dates must be present for the
// containment filter to apply: the budget's own range has to fall inside the
// supplied window.
type BudgetFilter struct {
	StartDate    *Date
	EndDate      *Date
	CategoryType string
}

// BudgetWithCategory carries the linked category's name for alert reporting.
type BudgetWithCategory struct {
	Budget
	CategoryName string
}

type BudgetRepository interface {
	Save(budget *Budget) error
	FindByUser(userID string, filter BudgetFilter, limit, offset int) ([]Budget, error)
	CountByUser(userID string, filter BudgetFilter) (int, error)
	FindAllByUser(userID string) ([]BudgetWithCategory, error)
	GetByID(budgetID, userID string) (*Budget, error)
	FindByIDAnyOwner(budgetID string) (*Budget, error)
	Update(budget Budget) error
	Delete(budgetID, userID string) error
	// SumLinkedExpenses totals the expense transactions explicitly linked to
	// the budget, 0 when none exist.
	SumLinkedExpenses(budgetID string) (Amount, error)
}
