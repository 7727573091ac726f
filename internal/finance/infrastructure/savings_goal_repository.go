package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

type SavingsGoalRepository struct {
	db *sql.DB
}

func NewSavingsGoalRepository(db *sql.DB) *SavingsGoalRepository {
	return &SavingsGoalRepository{db: db}
}

func (r *SavingsGoalRepository) Save(goal *domain.SavingsGoal) error {
	_, err := r.db.Exec(
		`INSERT INTO savings_goals (id, user_id, goal_name, target_amount, current_amount, deadline)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		goal.ID, goal.UserID, goal.GoalName, goal.TargetAmount, goal.CurrentAmount, goal.Deadline,
	)
	return err
}

func (r *SavingsGoalRepository) FindByUser(userID string, limit, offset int) ([]domain.SavingsGoal, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, goal_name, target_amount, current_amount, deadline
		 FROM savings_goals
		 WHERE user_id = $1
		 ORDER BY deadline, id
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.SavingsGoal
	for rows.Next() {
		var goal domain.SavingsGoal
		if err := rows.Scan(&goal.ID, &goal.UserID, &goal.GoalName,
			&goal.TargetAmount, &goal.CurrentAmount, &goal.Deadline); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *SavingsGoalRepository) CountByUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM savings_goals WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *SavingsGoalRepository) GetByID(goalID, userID string) (*domain.SavingsGoal, error) {
	var goal domain.SavingsGoal
	err := r.db.QueryRow(
		`SELECT id, user_id, goal_name, target_amount, current_amount, deadline
		 FROM savings_goals WHERE id = $1 AND user_id = $2`,
		goalID, userID,
	).Scan(&goal.ID, &goal.UserID, &goal.GoalName,
		&goal.TargetAmount, &goal.CurrentAmount, &goal.Deadline)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *SavingsGoalRepository) Update(goal domain.SavingsGoal) error {
	result, err := r.db.Exec(
		`UPDATE savings_goals
		 SET goal_name = $1, target_amount = $2, current_amount = $3, deadline = $4
		 WHERE id = $5 AND user_id = $6`,
		goal.GoalName, goal.TargetAmount, goal.CurrentAmount, goal.Deadline, goal.ID, goal.UserID,
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

func (r *SavingsGoalRepository) Delete(goalID, userID string) error {
	result, err := r.db.Exec(
		`DELETE FROM savings_goals WHERE id = $1 AND user_id = $2`,
		goalID, userID,
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

func (r *SavingsGoalRepository) SumCurrent(userID string) (domain.Amount, error) {
	var sum domain.Amount
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(current_amount), 0) FROM savings_goals WHERE user_id = $1`,
		userID,
	).Scan(&sum)
	return sum, err
}
