package domain

type Transaction struct {
	ID          string  `json:"id"`
	UserID      string  `json:"-"`
	CategoryID  string  `json:"category"`
	BudgetID    *string `json:"budget"`
	Amount      Amount  `json:"amount"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
}

// TransactionFilter narrows a transaction listing. Unset fields are ignored.
type TransactionFilter struct {
	CategoryID   string
	CategoryType string
	StartDate    *Date
	EndDate      *Date
}

// ReportEntry is a transaction row joined with its category type, the input
// of every aggregation report.
type ReportEntry struct {
	Amount       Amount
	Date         Date
	CategoryType string
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByUser(userID string, filter TransactionFilter, limit, offset int) ([]Transaction, error)
	CountByUser(userID string, filter TransactionFilter) (int, error)
	GetByID(transactionID, userID string) (*Transaction, error)
	Update(transaction Transaction) error
	Delete(transactionID, userID string) error
	FindForReport(userID string, filter TransactionFilter) ([]ReportEntry, error)
}
