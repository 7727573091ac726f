package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// transactionFilterClauses renders the optional filters as WHERE conditions.
// The category join is always present so type filters and reports can reach
// the category's type.
func transactionFilterClauses(userID string, filter domain.TransactionFilter) (string, []interface{}) {
	where := `WHERE t.user_id = $1`
	args := []interface{}{userID}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		where += fmt.Sprintf(` AND t.category_id::text = $%d`, len(args))
	}
	if filter.CategoryType != "" {
		args = append(args, filter.CategoryType)
		where += fmt.Sprintf(` AND c.type = $%d`, len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		where += fmt.Sprintf(` AND t.date >= $%d`, len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		where += fmt.Sprintf(` AND t.date <= $%d`, len(args))
	}
	return where, args
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, user_id, category_id, budget_id, amount, date, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		transaction.ID, transaction.UserID, transaction.CategoryID, transaction.BudgetID,
		transaction.Amount, transaction.Date, transaction.Description,
	)
	return err
}

func (r *TransactionRepository) FindByUser(userID string, filter domain.TransactionFilter, limit, offset int) ([]domain.Transaction, error) {
	where, args := transactionFilterClauses(userID, filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT t.id, t.user_id, t.category_id, t.budget_id, t.amount, t.date, t.description
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 %s
		 ORDER BY t.date DESC, t.id
		 LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.UserID, &transaction.CategoryID,
			&transaction.BudgetID, &transaction.Amount, &transaction.Date, &transaction.Description); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) CountByUser(userID string, filter domain.TransactionFilter) (int, error) {
	where, args := transactionFilterClauses(userID, filter)
	query := fmt.Sprintf(
		`SELECT COUNT(*) FROM transactions t JOIN categories c ON c.id = t.category_id %s`,
		where,
	)

	var count int
	err := r.db.QueryRow(query, args...).Scan(&count)
	return count, err
}

func (r *TransactionRepository) GetByID(transactionID, userID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT id, user_id, category_id, budget_id, amount, date, description
		 FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	).Scan(&transaction.ID, &transaction.UserID, &transaction.CategoryID,
		&transaction.BudgetID, &transaction.Amount, &transaction.Date, &transaction.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	result, err := r.db.Exec(
		`UPDATE transactions
		 SET category_id = $1, budget_id = $2, amount = $3, date = $4, description = $5
		 WHERE id = $6 AND user_id = $7`,
		transaction.CategoryID, transaction.BudgetID, transaction.Amount,
		transaction.Date, transaction.Description, transaction.ID, transaction.UserID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(transactionID, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) FindForReport(userID string, filter domain.TransactionFilter) ([]domain.ReportEntry, error) {
	where, args := transactionFilterClauses(userID, filter)
	query := fmt.Sprintf(
		`SELECT t.amount, t.date, c.type
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 %s
		 ORDER BY t.date`,
		where,
	)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ReportEntry
	for rows.Next() {
		var entry domain.ReportEntry
		if err := rows.Scan(&entry.Amount, &entry.Date, &entry.CategoryType); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
