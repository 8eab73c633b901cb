// Package store holds the in-memory transaction store backing the
// transactions, dashboard, and analytics endpoints. It is a stand-in for
// a future transactions table; the dashboard reads are simple filtered
// scans over per-user slices.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wealthvault/backend/internal/model"
)

type Filter struct {
	Type string
	From *time.Time
	To   *time.Time
}

type TransactionStore struct {
	mu     sync.RWMutex
	byUser map[int64][]model.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{byUser: make(map[int64][]model.Transaction)}
}

// Add records a transaction for the user, assigning it an id and
// creation timestamp, and returns the stored value.
func (s *TransactionStore) Add(userID int64, txType string, amount float64, category string, txDate time.Time, note string) model.Transaction {
	tx := model.Transaction{
		ID:        uuid.NewString(),
		Type:      txType,
		Amount:    amount,
		Category:  category,
		TxDate:    txDate,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.byUser[userID] = append(s.byUser[userID], tx)
	s.mu.Unlock()

	return tx
}

// List returns the user's transactions matching the filter. Date bounds
// are inclusive and compared at calendar-day granularity.
func (s *TransactionStore) List(userID int64, f Filter) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Transaction, 0)
	for _, tx := range s.byUser[userID] {
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		if f.From != nil && dayOf(tx.TxDate).Before(dayOf(*f.From)) {
			continue
		}
		if f.To != nil && dayOf(tx.TxDate).After(dayOf(*f.To)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// ListAll returns every transaction recorded for the user.
func (s *TransactionStore) ListAll(userID int64) []model.Transaction {
	return s.List(userID, Filter{})
}

// Delete removes the transaction by id and reports whether it existed.
func (s *TransactionStore) Delete(userID int64, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.byUser[userID]
	for i, tx := range items {
		if tx.ID == id {
			s.byUser[userID] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
