package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func budgetFilterClauses(userID string, filter domain.BudgetFilter) (string, []interface{}) {
	where := `WHERE b.user_id = $1`
	args := []interface{}{userID}

	// Containment filter: the budget's own range must fall inside the
	// supplied window, and only applies when both bounds are present.
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate)
		where += fmt.Sprintf(` AND b.start_date >= $%d`, len(args))
		args = append(args, *filter.EndDate)
		where += fmt.Sprintf(` AND b.end_date <= $%d`, len(args))
	}
	if filter.CategoryType != "" {
		args = append(args, filter.CategoryType)
		where += fmt.Sprintf(` AND c.type = $%d`, len(args))
	}
	return where, args
}

func (r *BudgetRepository) Save(budget *domain.Budget) error {
	_, err := r.db.Exec(
		`INSERT INTO budgets (id, user_id, category_id, allocated_amount, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		budget.ID, budget.UserID, budget.CategoryID, budget.AllocatedAmount,
		budget.StartDate, budget.EndDate,
	)
	return err
}

func (r *BudgetRepository) FindByUser(userID string, filter domain.BudgetFilter, limit, offset int) ([]domain.Budget, error) {
	where, args := budgetFilterClauses(userID, filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT b.id, b.user_id, b.category_id, b.allocated_amount, b.start_date, b.end_date
		 FROM budgets b
		 JOIN categories c ON c.id = b.category_id
		 %s
		 ORDER BY b.start_date, b.id
		 LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.CategoryID,
			&budget.AllocatedAmount, &budget.StartDate, &budget.EndDate); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) CountByUser(userID string, filter domain.BudgetFilter) (int, error) {
	where, args := budgetFilterClauses(userID, filter)
	query := fmt.Sprintf(
		`SELECT COUNT(*) FROM budgets b JOIN categories c ON c.id = b.category_id %s`,
		where,
	)

	var count int
	err := r.db.QueryRow(query, args...).Scan(&count)
	return count, err
}

func (r *BudgetRepository) FindAllByUser(userID string) ([]domain.BudgetWithCategory, error) {
	rows, err := r.db.Query(
		`SELECT b.id, b.user_id, b.category_id, b.allocated_amount, b.start_date, b.end_date, c.name
		 FROM budgets b
		 JOIN categories c ON c.id = b.category_id
		 WHERE b.user_id = $1
		 ORDER BY b.start_date, b.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.BudgetWithCategory
	for rows.Next() {
		var budget domain.BudgetWithCategory
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.CategoryID,
			&budget.AllocatedAmount, &budget.StartDate, &budget.EndDate, &budget.CategoryName); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) GetByID(budgetID, userID string) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRow(
		`SELECT id, user_id, category_id, allocated_amount, start_date, end_date
		 FROM budgets WHERE id = $1 AND user_id = $2`,
		budgetID, userID,
	).Scan(&budget.ID, &budget.UserID, &budget.CategoryID,
		&budget.AllocatedAmount, &budget.StartDate, &budget.EndDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

func (r *BudgetRepository) FindByIDAnyOwner(budgetID string) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRow(
		`SELECT id, user_id, category_id, allocated_amount, start_date, end_date
		 FROM budgets WHERE id = $1`,
		budgetID,
	).Scan(&budget.ID, &budget.UserID, &budget.CategoryID,
		&budget.AllocatedAmount, &budget.StartDate, &budget.EndDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

func (r *BudgetRepository) Update(budget domain.Budget) error {
	result, err := r.db.Exec(
		`UPDATE budgets
		 SET category_id = $1, allocated_amount = $2, start_date = $3, end_date = $4
		 WHERE id = $5 AND user_id = $6`,
		budget.CategoryID, budget.AllocatedAmount, budget.StartDate, budget.EndDate,
		budget.ID, budget.UserID,
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

// Delete removes the budget; the budget_id foreign key on transactions is
// declared ON DELETE SET NULL, so linked transactions survive unlinked.
func (r *BudgetRepository) Delete(budgetID, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM budgets WHERE id = $1 AND user_id = $2`,
		budgetID, userID,
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

func (r *BudgetRepository) SumLinkedExpenses(budgetID string) (domain.Amount, error) {
	var sum domain.Amount
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(t.amount), 0)
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 WHERE t.budget_id = $1 AND c.type = 'expense'`,
		budgetID,
	).Scan(&sum)
	return sum, err
}
