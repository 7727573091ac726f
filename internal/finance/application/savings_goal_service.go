package application

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/lmalecki/FinanceTracker/internal/finance/errors"
)

// SavingsGoalInput is a candidate savings goal, partial on update.
type SavingsGoalInput struct {
	GoalName      *string        `json:"goal_name"`
	TargetAmount  *domain.Amount `json:"target_amount"`
	CurrentAmount *domain.Amount `json:"current_amount"`
	Deadline      *domain.Date   `json:"deadline"`
}

type SavingsGoalService struct {
	repo  domain.SavingsGoalRepository
	today func() domain.Date
}

func NewSavingsGoalService(repo domain.SavingsGoalRepository) *SavingsGoalService {
	return &SavingsGoalService{
		repo:  repo,
		today: domain.Today,
	}
}

func (s *SavingsGoalService) Create(userID string, input SavingsGoalInput) (*domain.SavingsGoal, error) {
	ve := financeErrors.NewValidationErrors()

	goal := &domain.SavingsGoal{
		ID:     uuid.NewString(),
		UserID: userID,
	}

	if input.GoalName == nil {
		ve.Add("goal_name", "This field is required.")
	} else {
		name := strings.TrimSpace(*input.GoalName)
		if name == "" {
			ve.Add("goal_name", "This field may not be blank.")
		}
		goal.GoalName = name
	}

	if input.TargetAmount == nil {
		ve.Add("target_amount", "This field is required.")
	} else if *input.TargetAmount <= 0 {
		ve.Add("target_amount", "Target amount must be greater than zero.")
	} else {
		goal.TargetAmount = *input.TargetAmount
	}

	if input.CurrentAmount != nil {
		if *input.CurrentAmount < 0 {
			ve.Add("current_amount", "Current amount cannot be negative.")
		} else {
			goal.CurrentAmount = *input.CurrentAmount
		}
	}

	if goal.TargetAmount > 0 && goal.CurrentAmount > goal.TargetAmount {
		ve.Add("current_amount", "Current amount cannot exceed the target amount.")
	}

	if input.Deadline == nil {
		ve.Add("deadline", "This field is required.")
	} else if !input.Deadline.After(s.today()) {
		ve.Add("deadline", "Deadline must be a future date.")
	} else {
		goal.Deadline = *input.Deadline
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *SavingsGoalService) List(userID string, page, pageSize int) ([]domain.SavingsGoal, int, error) {
	limit, offset := normalizePaging(page, pageSize)

	goals, err := s.repo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}
	if goals == nil {
		goals = []domain.SavingsGoal{}
	}
	return goals, total, nil
}

func (s *SavingsGoalService) Get(userID, goalID string) (*domain.SavingsGoal, error) {
	return s.repo.GetByID(goalID, userID)
}

func (s *SavingsGoalService) Update(userID, goalID string, input SavingsGoalInput) (*domain.SavingsGoal, error) {
	goal, err := s.repo.GetByID(goalID, userID)
	if err != nil {
		return nil, err
	}

	ve := financeErrors.NewValidationErrors()

	if input.GoalName != nil {
		name := strings.TrimSpace(*input.GoalName)
		if name == "" {
			ve.Add("goal_name", "This field may not be blank.")
		} else {
			goal.GoalName = name
		}
	}

	if input.TargetAmount != nil {
		if *input.TargetAmount <= 0 {
			ve.Add("target_amount", "Target amount must be greater than zero.")
		} else {
			goal.TargetAmount = *input.TargetAmount
		}
	}

	if input.CurrentAmount != nil {
		if *input.CurrentAmount < 0 {
			ve.Add("current_amount", "Current amount cannot be negative.")
		} else {
			goal.CurrentAmount = *input.CurrentAmount
		}
	}

	// The comparison uses stored values for whichever side the partial
	// update left out.
	if goal.CurrentAmount > goal.TargetAmount {
		ve.Add("current_amount", "Current amount cannot exceed the target amount.")
	}

	if input.Deadline != nil {
		if !input.Deadline.After(s.today()) {
			ve.Add("deadline", "Deadline must be a future date.")
		} else {
			goal.Deadline = *input.Deadline
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(*goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *SavingsGoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(goalID, userID)
}
