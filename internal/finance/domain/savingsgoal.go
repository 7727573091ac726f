package domain

type SavingsGoal struct {
	ID            string `json:"id"`
	UserID        string `json:"-"`
	GoalName      string `json:"goal_name"`
	TargetAmount  Amount `json:"target_amount"`
	CurrentAmount Amount `json:"current_amount"`
	Deadline      Date   `json:"deadline"`
}

type SavingsGoalRepository interface {
	Save(goal *SavingsGoal) error
	FindByUser(userID string, limit, offset int) ([]SavingsGoal, error)
	CountByUser(userID string) (int, error)
	GetByID(goalID, userID string) (*SavingsGoal, error)
	Update(goal SavingsGoal) error
	Delete(goalID, userID string) error
	// SumCurrent totals current_amount across all of the user's goals.
	SumCurrent(userID string) (Amount, error)
}
