package application

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

const (
	TimeframeMonth = "month"
	TimeframeWeek  = "week"
)

type TotalReport struct {
	TotalIncome  domain.Amount `json:"total_income"`
	TotalExpense domain.Amount `json:"total_expense"`
}

// TrendRow is one calendar bucket of the trends report. Period is the bucket
// start day; a bucket appears only when at least one transaction fell into it.
type TrendRow struct {
	Period        domain.Date   `json:"period"`
	TotalIncome   domain.Amount `json:"total_income"`
	TotalExpenses domain.Amount `json:"total_expenses"`
}

type NetWorthReport struct {
	NetWorth     domain.Amount `json:"net_worth"`
	TotalIncome  domain.Amount `json:"total_income"`
	TotalExpense domain.Amount `json:"total_expense"`
	TotalSavings domain.Amount `json:"total_savings"`
}

type BudgetAlert struct {
	Message         string        `json:"message"`
	Category        string        `json:"category"`
	AllocatedAmount domain.Amount `json:"allocated_amount"`
	SpentAmount     domain.Amount `json:"spent_amount"`
	IsHighPriority  bool          `json:"is_high_priority"`
}

type ReportService struct {
	transactionRepo domain.TransactionRepository
	budgetRepo      domain.BudgetRepository
	savingsRepo     domain.SavingsGoalRepository
}

func NewReportService(transactionRepo domain.TransactionRepository, budgetRepo domain.BudgetRepository, savingsRepo domain.SavingsGoalRepository) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		savingsRepo:     savingsRepo,
	}
}

func sumByType(entries []domain.ReportEntry) (income, expense domain.Amount) {
	for _, entry := range entries {
		switch entry.CategoryType {
		case domain.CategoryTypeIncome:
			income += entry.Amount
		case domain.CategoryTypeExpense:
			expense += entry.Amount
		}
	}
	return income, expense
}

// Totals sums income and expense amounts over the filtered set. An empty set
// reports zero for both, never an error.
func (s *ReportService) Totals(userID string, filter domain.TransactionFilter) (*TotalReport, error) {
	entries, err := s.transactionRepo.FindForReport(userID, filter)
	if err != nil {
		return nil, err
	}

	income, expense := sumByType(entries)
	return &TotalReport{TotalIncome: income, TotalExpense: expense}, nil
}

// Trends buckets the filtered transactions by calendar month or week and
// reports per-bucket income and expense sums, ascending by bucket start.
func (s *ReportService) Trends(userID string, filter domain.TransactionFilter, timeframe string) ([]TrendRow, error) {
	if timeframe == "" {
		timeframe = TimeframeMonth
	}
	if timeframe != TimeframeMonth && timeframe != TimeframeWeek {
		return nil, fmt.Errorf("unsupported timeframe %q", timeframe)
	}

	entries, err := s.transactionRepo.FindForReport(userID, filter)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*TrendRow)
	for _, entry := range entries {
		var period domain.Date
		if timeframe == TimeframeWeek {
			period = entry.Date.WeekStart()
		} else {
			period = entry.Date.MonthStart()
		}

		key := period.String()
		row, ok := buckets[key]
		if !ok {
			row = &TrendRow{Period: period}
			buckets[key] = row
		}
		switch entry.CategoryType {
		case domain.CategoryTypeIncome:
			row.TotalIncome += entry.Amount
		case domain.CategoryTypeExpense:
			row.TotalExpenses += entry.Amount
		}
	}

	rows := make([]TrendRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Period.Before(rows[j].Period)
	})
	return rows, nil
}

// NetWorth is total income minus total expense plus the sum of current
// amounts across all of the user's savings goals. Savings are never filtered
// by date.
func (s *ReportService) NetWorth(userID string, filter domain.TransactionFilter) (*NetWorthReport, error) {
	var (
		entries []domain.ReportEntry
		savings domain.Amount
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		entries, err = s.transactionRepo.FindForReport(userID, filter)
		return err
	})
	g.Go(func() error {
		var err error
		savings, err = s.savingsRepo.SumCurrent(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	income, expense := sumByType(entries)
	return &NetWorthReport{
		NetWorth:     income - expense + savings,
		TotalIncome:  income,
		TotalExpense: expense,
		TotalSavings: savings,
	}, nil
}

// BudgetAlerts checks every budget of the user against the expense
// transactions explicitly linked to it and reports the ones whose spending
// strictly exceeds the allocation. Nothing is persisted or pushed.
func (s *ReportService) BudgetAlerts(userID string) ([]BudgetAlert, error) {
	budgets, err := s.budgetRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	alerts := []BudgetAlert{}
	for _, budget := range budgets {
		spent, err := s.budgetRepo.SumLinkedExpenses(budget.ID)
		if err != nil {
			return nil, err
		}
		if spent > budget.AllocatedAmount {
			alerts = append(alerts, BudgetAlert{
				Message: fmt.Sprintf(
					"Your total expenses for the %s category have exceeded your allocated budget of %s.",
					budget.CategoryName, budget.AllocatedAmount,
				),
				Category:        budget.CategoryName,
				AllocatedAmount: budget.AllocatedAmount,
				SpentAmount:     spent,
				IsHighPriority:  true,
			})
		}
	}
	return alerts, nil
}
