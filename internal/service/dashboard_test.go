package service

import (
	"testing"
	"time"

	"github.com/wealthvault/backend/internal/model"
	"github.com/wealthvault/backend/internal/store"
)

func seedTransactions(s *store.TransactionStore) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	s.Add(1, model.TransactionIncome, 3000, "salary", day(1), "")
	s.Add(1, model.TransactionExpense, 400, "rent", day(2), "")
	s.Add(1, model.TransactionExpense, 150, "groceries", day(8), "")
	s.Add(1, model.TransactionExpense, 50, "groceries", day(15), "")
	s.Add(1, model.TransactionInvestment, 500, "etf", day(20), "")
	// Outside March.
	s.Add(1, model.TransactionExpense, 999, "travel", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), "")
	// Another user.
	s.Add(2, model.TransactionExpense, 777, "rent", day(3), "")
}

func TestDashboardSummary(t *testing.T) {
	txs := store.NewTransactionStore()
	seedTransactions(txs)
	svc := NewDashboardService(txs)

	got := svc.Summary(1, 3, 2025, time.Now())

	want := model.DashboardSummary{
		Month:             3,
		Year:              2025,
		Income:            3000,
		Expense:           600,
		Investments:       500,
		Savings:           2400,
		TransactionsCount: 5,
	}
	if got != want {
		t.Fatalf("summary mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestDashboardSummaryDefaultsToCurrentMonth(t *testing.T) {
	txs := store.NewTransactionStore()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	txs.Add(1, model.TransactionIncome, 100, "salary", now, "")
	svc := NewDashboardService(txs)

	got := svc.Summary(1, 0, 0, now)
	if got.Month != 3 || got.Year != 2025 {
		t.Fatalf("expected defaults 3/2025, got %d/%d", got.Month, got.Year)
	}
	if got.Income != 100 || got.TransactionsCount != 1 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestSpendingByCategory(t *testing.T) {
	txs := store.NewTransactionStore()
	seedTransactions(txs)
	svc := NewDashboardService(txs)

	got := svc.SpendingByCategory(1, nil, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 categories, got %d: %+v", len(got), got)
	}

	totals := map[string]float64{}
	for _, entry := range got {
		totals[entry.Name] = entry.Value
	}
	if totals["rent"] != 400 || totals["groceries"] != 200 || totals["travel"] != 999 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestSpendingByCategoryDateRange(t *testing.T) {
	txs := store.NewTransactionStore()
	seedTransactions(txs)
	svc := NewDashboardService(txs)

	from := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	got := svc.SpendingByCategory(1, &from, &to)

	if len(got) != 1 || got[0].Name != "groceries" || got[0].Value != 200 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
