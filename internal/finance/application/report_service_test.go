package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

func TestReportTotals(t *testing.T) {
	transactionRepo := &mockTransactionRepo{entries: []domain.ReportEntry{
		{Amount: 10012, Date: domain.NewDate(2026, time.January, 10), CategoryType: domain.CategoryTypeIncome},
		{Amount: 5055, Date: domain.NewDate(2026, time.January, 15), CategoryType: domain.CategoryTypeExpense},
		{Amount: 30045, Date: domain.NewDate(2026, time.February, 5), CategoryType: domain.CategoryTypeIncome},
	}}
	service := NewReportService(transactionRepo, &mockBudgetRepo{}, &mockSavingsGoalRepo{})

	report, err := service.Totals("user-1", domain.TransactionFilter{})
	assert.NoError(t, err)
	assert.Equal(t, domain.Amount(40057), report.TotalIncome)
	assert.Equal(t, domain.Amount(5055), report.TotalExpense)
}

func TestReportTotals_EmptyIsZero(t *testing.T) {
	service := NewReportService(&mockTransactionRepo{}, &mockBudgetRepo{}, &mockSavingsGoalRepo{})

	report, err := service.Totals("user-1", domain.TransactionFilter{})
	assert.NoError(t, err)
	assert.Equal(t, domain.Amount(0), report.TotalIncome)
	assert.Equal(t, domain.Amount(0), report.TotalExpense)
}

func TestReportTrends_MonthlyBucketsSortedAscending(t *testing.T) {
	transactionRepo := &mockTransactionRepo{entries: []domain.ReportEntry{
		{Amount: 30045, Date: domain.NewDate(2026, time.February, 5), CategoryType: domain.CategoryTypeIncome},
		{Amount: 10012, Date: domain.NewDate(2026, time.January, 10), CategoryType: domain.CategoryTypeIncome},
		{Amount: 5055, Date: domain.NewDate(2026, time.January, 15), CategoryType: domain.CategoryTypeExpense},
		{Amount: 2000, Date: domain.NewDate(2026, time.February, 28), CategoryType: domain.CategoryTypeExpense},
	}}
	service := NewReportService(transactionRepo, &mockBudgetRepo{}, &mockSavingsGoalRepo{})

	rows, err := service.Trends("user-1", domain.TransactionFilter{}, "")
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, domain.NewDate(2026, time.January, 1), rows[0].Period)
		assert.Equal(t, domain.Amount(10012), rows[0].TotalIncome)
		assert.Equal(t, domain.Amount(5055), rows[0].TotalExpenses)
		assert.Equal(t, domain.NewDate(2026, time.February, 1), rows[1].Period)
		assert.Equal(t, domain.Amount(30045), rows[1].TotalIncome)
		assert.Equal(t, domain.Amount(2000), rows[1].TotalExpenses)
	}
}

func TestReportTrends_WeeklyBucketsStartOnMonday(t *testing.T) {
	// 2026-03-11 is a Wednesday, 2026-03-15 the following Sunday; both belong
	// to the week starting Monday 2026-03-09.
	transactionRepo := &mockTransactionRepo{entries: []domain.ReportEntry{
		{Amount: 1000, Date: domain.NewDate(2026, time.March, 11), CategoryType: domain.CategoryTypeExpense},
		{Amount: 2000, Date: domain.NewDate(2026, time.March, 15), CategoryType: domain.CategoryTypeExpense},
		{Amount: 3000, Date: domain.NewDate(2026, time.March, 16), CategoryType: domain.CategoryTypeExpense},
	}}
	service := NewReportService(transactionRepo, &mockBudgetRepo{}, &mockSavingsGoalRepo{})

	rows, err := service.Trends("user-1", domain.TransactionFilter{}, TimeframeWeek)
	assert.NoError(t, err)
	if assert.Len(t, rows, 2) {
		assert.Equal(t, domain.NewDate(2026, time.March, 9), rows[0].Period)
		assert.Equal(t, domain.Amount(3000), rows[0].TotalExpenses)
		assert.Equal(t, domain.NewDate(2026, time.March, 16), rows[1].Period)
		assert.Equal(t, domain.Amount(3000), rows[1].TotalExpenses)
	}
}

func TestReportTrends_UnsupportedTimeframe(t *testing.T) {
	service := NewReportService(&mockTransactionRepo{}, &mockBudgetRepo{}, &mockSavingsGoalRepo{})

	_, err := service.Trends("user-1", domain.TransactionFilter{}, "year")
	assert.Error(t, err)
}

func TestReportNetWorth(t *testing.T) {
	transactionRepo := &mockTransactionRepo{entries: []domain.ReportEntry{
		{Amount: 10000, Date: domain.NewDate(2026, time.January, 10), CategoryType: domain.CategoryTypeIncome},
		{Amount: 5000, Date: domain.NewDate(2026, time.January, 15), CategoryType: domain.CategoryTypeExpense},
	}}
	savingsRepo := &mockSavingsGoalRepo{sumCurrent: 20000}
	service := NewReportService(transactionRepo, &mockBudgetRepo{}, savingsRepo)

	report, err := service.NetWorth("user-1", domain.TransactionFilter{})
	assert.NoError(t, err)
	assert.Equal(t, domain.Amount(25000), report.NetWorth)
	assert.Equal(t, domain.Amount(10000), report.TotalIncome)
	assert.Equal(t, domain.Amount(5000), report.TotalExpense)
	assert.Equal(t, domain.Amount(20000), report.TotalSavings)
}

func TestReportBudgetAlerts_OverspentBudgetFlagged(t *testing.T) {
	budgetRepo := &mockBudgetRepo{
		budgets: []domain.Budget{
			{ID: "budget-1", UserID: "user-1", CategoryID: "cat-1", AllocatedAmount: 20000},
			{ID: "budget-2", UserID: "user-1", CategoryID: "cat-2", AllocatedAmount: 20000},
		},
		categoryNames: map[string]string{"cat-1": "Groceries", "cat-2": "Transport"},
		linkedExpenses: map[string]domain.Amount{
			"budget-1": 25000,
			"budget-2": 15000,
		},
	}
	service := NewReportService(&mockTransactionRepo{}, budgetRepo, &mockSavingsGoalRepo{})

	alerts, err := service.BudgetAlerts("user-1")
	assert.NoError(t, err)
	if assert.Len(t, alerts, 1) {
		assert.Equal(t, "Groceries", alerts[0].Category)
		assert.Equal(t, domain.Amount(20000), alerts[0].AllocatedAmount)
		assert.Equal(t, domain.Amount(25000), alerts[0].SpentAmount)
		assert.True(t, alerts[0].IsHighPriority)
		assert.Equal(t, "Your total expenses for the Groceries category have exceeded your allocated budget of 200.00.", alerts[0].Message)
	}
}

func TestReportBudgetAlerts_ExactSpendIsNotAlert(t *testing.T) {
	budgetRepo := &mockBudgetRepo{
		budgets: []domain.Budget{
			{ID: "budget-1", UserID: "user-1", CategoryID: "cat-1", AllocatedAmount: 20000},
		},
		categoryNames:  map[string]string{"cat-1": "Groceries"},
		linkedExpenses: map[string]domain.Amount{"budget-1": 20000},
	}
	service := NewReportService(&mockTransactionRepo{}, budgetRepo, &mockSavingsGoalRepo{})

	alerts, err := service.BudgetAlerts("user-1")
	assert.NoError(t, err)
	assert.Empty(t, alerts)
	assert.NotNil(t, alerts)
}
