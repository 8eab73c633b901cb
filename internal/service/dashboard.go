package service

import (
	"time"

	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/store"
)

// TransactionSource is the read surface the aggregation endpoints need
// from the transaction store.
type TransactionSource interface {
	List(userID int64, f store.Filter) []model.Transaction
	ListAll(userID int64) []model.Transaction
}

type DashboardService struct {
	txs TransactionSource
}

func NewDashboardService(txs TransactionSource) *DashboardService {
	return &DashboardService{txs: txs}
}

// Summary aggregates the user's transactions for one calendar month.
// Zero month or year default to the current date.
func (s *DashboardService) Summary(userID int64, month, year int, now time.Time) model.DashboardSummary {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	summary := model.DashboardSummary{Month: month, Year: year}
	for _, tx := range s.txs.ListAll(userID) {
		if int(tx.TxDate.Month()) != month || tx.TxDate.Year() != year {
			continue
		}
		summary.TransactionsCount++
		switch tx.Type {
		case model.TransactionIncome:
			summary.Income += tx.Amount
		case model.TransactionExpense:
			summary.Expense += tx.Amount
		case model.TransactionInvestment:
			summary.Investments += tx.Amount
		}
	}
	summary.Savings = summary.Income - summary.Expense
	return summary
}

// SpendingByCategory buckets the user's expense transactions by category
// over an optional inclusive date range.
func (s *DashboardService) SpendingByCategory(userID int64, from, to *time.Time) []model.CategorySpending {
	filtered := s.txs.List(userID, store.Filter{Type: model.TransactionExpense, From: from, To: to})

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, tx := range filtered {
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += tx.Amount
	}

	out := make([]model.CategorySpending, 0, len(order))
	for _, name := range order {
		out = append(out, model.CategorySpending{Name: name, Value: totals[name]})
	}
	return out
}
