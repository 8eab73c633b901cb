package model

import "time"

const (
	TransactionIncome     = "income"
	TransactionExpense    = "expense"
	TransactionInvestment = "investment"
)

func ValidTransactionType(t string) bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionInvestment:
		return true
	default:
		return false
	}
}

type Transaction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	TxDate    time.Time `json:"tx_date"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TransactionCreateRequest struct {
	Type     string  `json:"type" binding:"required,oneof=income expense investment"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required,min=1,max=50"`
	TxDate   string  `json:"tx_date" binding:"required"`
	Note     string  `json:"note" binding:"max=200"`
}

type DashboardSummary struct {
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	Income            float64 `json:"income"`
	Expense           float64 `json:"expense"`
	Investments       float64 `json:"investments"`
	Savings           float64 `json:"savings"`
	TransactionsCount int     `json:"transactions_count"`
}

type CategorySpending struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
