package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// logger returns the console logger on stderr.
func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

// OpenStore opens the store over the application ledger file.
func OpenStore() (*cashbook.Store, error) {
	log := logger()
	s, err := cashbook.Open(cashbook.NewFileBackend(*ledgerFile), cashbook.WithLogger(log), cashbook.WithClock(now))
	if err != nil {
		return nil, fmt.Errorf("error opening ledger %q: %w", *ledgerFile, err)
	}
	log.Debug().Str("ledger", *ledgerFile).Int("transactions", s.Len()).Msg("ledger opened")
	return s, nil
}

// Locale returns the locale selected on the command line.
func Locale() cashbook.Locale { return cashbook.LocaleFor(*locale) }

// resolve finds a transaction from a command line reference: either its id
// or its position in the list.
func resolve(s *cashbook.Store, ref string) (cashbook.Transaction, error) {
	if id, err := uuid.Parse(ref); err == nil {
		tx, ok := s.Get(id)
		if !ok {
			return cashbook.Transaction{}, fmt.Errorf("transaction %s: %w", id, cashbook.ErrNotFound)
		}
		return tx, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil {
		return cashbook.Transaction{}, fmt.Errorf("invalid transaction reference %q, want a position or an id", ref)
	}
	return s.At(n)
}

// positions maps each transaction id to its position in the book.
func positions(txs []cashbook.Transaction) func(cashbook.Transaction) int {
	m := make(map[uuid.UUID]int, len(txs))
	for i, tx := range txs {
		m[tx.ID] = i
	}
	return func(tx cashbook.Transaction) int { return m[tx.ID] }
}
