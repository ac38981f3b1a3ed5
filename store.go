package cashbook

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrNotFound is returned when a transaction is not in the book.
	ErrNotFound = errors.New("transaction not found")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")
	// ErrCommit wraps the backend error when a change could not be persisted.
	// The store is left as it was before the change.
	ErrCommit = errors.New("commit failed")
)

// EventKind identifies the kind of change notified to subscribers.
type EventKind int

const (
	Created EventKind = iota
	Updated
	Deleted
	Moved
)

func (k EventKind) String() string {
	switch k {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	case Moved:
		return "moved"
	default:
		return "unknown"
	}
}

// Event describes a committed change. Transactions are the affected
// transactions, as they are after the change (before it for deletions).
type Event struct {
	Kind         EventKind
	Transactions []Transaction
}

// Store holds the transactions of a book in canonical order and commits every
// change to its Backend.
//
// A Store is meant to be driven by a single thread of control, one user action
// at a time, and is not safe for concurrent use.
type Store struct {
	backend Backend
	txs     []Transaction // canonical order
	closed  bool

	subscribers []subscriber
	nextSub     int

	log zerolog.Logger
	now func() time.Time
}

type subscriber struct {
	id int
	fn func(Event)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report commits.
func WithLogger(l zerolog.Logger) Option { return func(s *Store) { s.log = l } }

// WithClock sets the clock used to date a move into an otherwise empty list.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// Open loads the book from backend.
func Open(backend Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	txs, err := backend.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	sortTransactions(txs)
	s.txs = txs
	s.log.Debug().Int("transactions", len(txs)).Msg("book opened")
	return s, nil
}

// Close releases the store. Subscribers are dropped and later operations
// return ErrClosed. If the backend is an io.Closer it is closed too.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.subscribers = nil
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// List returns a copy of all transactions, sorted by date descending.
func (s *Store) List() []Transaction { return slices.Clone(s.txs) }

// Len returns the number of transactions.
func (s *Store) Len() int { return len(s.txs) }

// Get returns the transaction with the given id.
func (s *Store) Get(id uuid.UUID) (Transaction, bool) {
	i := s.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return s.txs[i], true
}

// At returns the transaction at position i in the list.
func (s *Store) At(i int) (Transaction, error) {
	if i < 0 || i >= len(s.txs) {
		return Transaction{}, fmt.Errorf("invalid position %d in a list of %d: %w", i, len(s.txs), ErrIndex)
	}
	return s.txs[i], nil
}

func (s *Store) index(id uuid.UUID) int {
	return slices.IndexFunc(s.txs, func(tx Transaction) bool { return tx.ID == id })
}

// Create records a new transaction.
func (s *Store) Create(e Entry) (Transaction, error) {
	if s.closed {
		return Transaction{}, ErrClosed
	}
	if err := e.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	tx := Transaction{ID: uuid.New()}
	tx.apply(e)

	next := append(slices.Clone(s.txs), tx)
	sortTransactions(next)
	if err := s.commit(Created, next, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Update replaces the fields of the transaction with the given id.
func (s *Store) Update(id uuid.UUID, e Entry) (Transaction, error) {
	if s.closed {
		return Transaction{}, ErrClosed
	}
	if err := e.Validate(); err != nil {
		return Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	i := s.index(id)
	if i < 0 {
		return Transaction{}, fmt.Errorf("cannot update %s: %w", id, ErrNotFound)
	}
	tx := s.txs[i]
	tx.apply(e)
	if tx.Equal(s.txs[i]) {
		return tx, nil
	}

	next := slices.Clone(s.txs)
	next[i] = tx
	sortTransactions(next)
	if err := s.commit(Updated, next, tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Delete removes the transactions with the given ids. Nothing is removed if
// one of them is unknown.
func (s *Store) Delete(ids ...uuid.UUID) error {
	if s.closed {
		return ErrClosed
	}
	var errs error
	for _, id := range ids {
		if s.index(id) < 0 {
			errs = errors.Join(errs, fmt.Errorf("cannot delete %s: %w", id, ErrNotFound))
		}
	}
	if errs != nil {
		return errs
	}
	return s.delete(func(tx Transaction) bool { return slices.Contains(ids, tx.ID) })
}

// DeleteAt removes the transactions at the given positions in the list.
func (s *Store) DeleteAt(offsets ...int) error {
	if s.closed {
		return ErrClosed
	}
	ids := make([]uuid.UUID, 0, len(offsets))
	for _, i := range offsets {
		tx, err := s.At(i)
		if err != nil {
			return fmt.Errorf("cannot delete: %w", err)
		}
		ids = append(ids, tx.ID)
	}
	return s.delete(func(tx Transaction) bool { return slices.Contains(ids, tx.ID) })
}

func (s *Store) delete(match func(Transaction) bool) error {
	var removed []Transaction
	next := make([]Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if match(tx) {
			removed = append(removed, tx)
			continue
		}
		next = append(next, tx)
	}
	if len(removed) == 0 {
		return nil
	}
	return s.commit(Deleted, next, removed...)
}

// Move moves the transactions at the source positions so that they appear as
// a block at destination, by changing their dates. See Reorder.
func (s *Store) Move(source []int, destination int) error {
	if s.closed {
		return ErrClosed
	}
	order, moved, err := Reorder(s.txs, source, destination, s.now)
	if err != nil {
		return fmt.Errorf("cannot move: %w", err)
	}
	if len(moved) == 0 {
		return nil
	}
	sortTransactions(order)
	return s.commit(Moved, order, moved...)
}

// commit persists next as the new content of the book. On success it becomes
// the store content and subscribers are notified.
func (s *Store) commit(kind EventKind, next []Transaction, changed ...Transaction) error {
	if err := s.backend.Save(next); err != nil {
		s.log.Error().Err(err).Stringer("kind", kind).Int("transactions", len(changed)).Msg("commit failed")
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}
	s.txs = next
	s.log.Debug().Stringer("kind", kind).Int("transactions", len(changed)).Msg("committed")

	ev := Event{Kind: kind, Transactions: changed}
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(ev)
	}
	return nil
}

// Subscribe registers fn to be called after each committed change. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	id := s.nextSub
	s.nextSub++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool { return sub.id == id })
	}
}
