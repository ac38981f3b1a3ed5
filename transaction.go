package cashbook

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingType is returned when an entry has no type once trimmed.
	ErrMissingType = errors.New("missing transaction type")
	// ErrMissingDate is returned when an entry has a zero date.
	ErrMissingDate = errors.New("missing transaction date")
	// ErrTypeTooLong is returned when an entry type exceeds MaxTypeLength.
	ErrTypeTooLong = errors.New("transaction type is too long")
)

// MaxTypeLength is the longest type, in bytes, a transaction can have. Once
// JSON escaped it still fits in a ledger line.
const MaxTypeLength = 64 * 1024

// Transaction is a single recorded monetary event.
//
// Date is both the moment the transaction occurred and its sort key: the
// canonical order of a book is Date descending.
type Transaction struct {
	ID    uuid.UUID       // assigned at creation, for display only
	Type  string          // free-text label, e.g. "groceries"
	Price decimal.Decimal // signed amount in the book currency
	Date  time.Time
}

// Entry holds the user supplied fields of a transaction, before it is written
// to a book.
type Entry struct {
	Type  string
	Price decimal.Decimal
	Date  time.Time
}

// Validate checks the presence rules of an entry.
func (e Entry) Validate() error {
	var errs error
	switch typ := strings.TrimSpace(e.Type); {
	case typ == "":
		errs = errors.Join(errs, ErrMissingType)
	case len(typ) > MaxTypeLength:
		errs = errors.Join(errs, fmt.Errorf("%w: %d bytes, at most %d", ErrTypeTooLong, len(typ), MaxTypeLength))
	}
	if e.Date.IsZero() {
		errs = errors.Join(errs, ErrMissingDate)
	}
	return errs
}

// Entry returns the user supplied fields of tx.
func (tx Transaction) Entry() Entry {
	return Entry{Type: tx.Type, Price: tx.Price, Date: tx.Date}
}

// apply sets the fields of e into tx, normalized.
func (tx *Transaction) apply(e Entry) {
	tx.Type = strings.TrimSpace(e.Type)
	tx.Price = e.Price
	tx.Date = e.Date
}

// Equal reports whether tx and x hold the same values.
func (tx Transaction) Equal(x Transaction) bool {
	return tx.ID == x.ID && tx.Type == x.Type && tx.Price.Equal(x.Price) && tx.Date.Equal(x.Date)
}

func (tx Transaction) String() string {
	return fmt.Sprintf("%s %q %s", tx.Date.Format(time.RFC3339), tx.Type, tx.Price)
}

// newer is the canonical order: most recent first.
func newer(a, b Transaction) int { return b.Date.Compare(a.Date) }

// sortTransactions sorts txs in canonical order. The sort is stable, so that
// transactions with the same date keep their relative order.
func sortTransactions(txs []Transaction) {
	slices.SortStableFunc(txs, newer)
}
