package interfaces

import (
	"errors"

	"github.com/lmalecki/FinanceTracker/internal/finance/application"
	"github.com/lmalecki/FinanceTracker/internal/finance/domain"
)

type MockReportService struct {
	totals        *application.TotalReport
	trends        []application.TrendRow
	netWorth      *application.NetWorthReport
	alerts        []application.BudgetAlert
	lastTimeframe string
	shouldFail    bool
}

func (m *MockReportService) Totals(userID string, filter domain.TransactionFilter) (*application.TotalReport, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.totals, nil
}

func (m *MockReportService) Trends(userID string, filter domain.TransactionFilter, timeframe string) ([]application.TrendRow, error) {
	m.lastTimeframe = timeframe
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.trends, nil
}

func (m *MockReportService) NetWorth(userID string, filter domain.TransactionFilter) (*application.NetWorthReport, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.netWorth, nil
}

func (m *MockReportService) BudgetAlerts(userID string) ([]application.BudgetAlert, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.alerts, nil
}
