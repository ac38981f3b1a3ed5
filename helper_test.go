package cashbook

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// t0 is the reference instant of test books.
var t0 = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// at returns t0 plus seconds.
func at(seconds float64) time.Time {
	return t0.Add(time.Duration(seconds * float64(time.Second)))
}

// id returns a readable, deterministic transaction id.
func id(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

// book returns transactions with ids 1, 2, ... dated at the given seconds.
func book(seconds ...float64) []Transaction {
	txs := make([]Transaction, len(seconds))
	for i, s := range seconds {
		txs[i] = Transaction{
			ID:    id(i + 1),
			Type:  fmt.Sprintf("tx%d", i+1),
			Price: decimal.NewFromInt(int64(i + 1)),
			Date:  at(s),
		}
	}
	return txs
}

func ids(txs []Transaction) []uuid.UUID {
	out := make([]uuid.UUID, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}

func dates(txs []Transaction) []time.Time {
	out := make([]time.Time, len(txs))
	for i, tx := range txs {
		out[i] = tx.Date
	}
	return out
}

// mockBackend is a Backend whose behaviour is set per test.
type mockBackend struct {
	LoadFunc func() ([]Transaction, error)
	SaveFunc func([]Transaction) error
}

func (m *mockBackend) Load() ([]Transaction, error) {
	if m.LoadFunc == nil {
		return nil, nil
	}
	return m.LoadFunc()
}

func (m *mockBackend) Save(txs []Transaction) error {
	if m.SaveFunc == nil {
		return nil
	}
	return m.SaveFunc(txs)
}
