package cashbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxLine is the longest ledger line DecodeLedger reads. Entry.Validate
// bounds the type so that a valid transaction always fits.
const maxLine = 1 << 20

// ledgerLine is the on-disk form of a transaction. Its field order is the
// canonical key order of a ledger line.
type ledgerLine struct {
	ID    uuid.UUID   `json:"id"`
	Date  time.Time   `json:"date"`
	Type  string      `json:"type"`
	Price json.Number `json:"price"`
}

// MarshalJSON encodes a transaction as a ledger line.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(ledgerLine{
		ID:    tx.ID,
		Date:  tx.Date,
		Type:  tx.Type,
		Price: json.Number(tx.Price.String()),
	})
}

// UnmarshalJSON decodes a transaction and enforces its presence rules. A
// missing price is zero.
func (tx *Transaction) UnmarshalJSON(b []byte) error {
	var l ledgerLine
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	price := decimal.Zero
	if l.Price != "" {
		p, err := decimal.NewFromString(l.Price.String())
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", l.Price, err)
		}
		price = p
	}
	e := Entry{Type: l.Type, Price: price, Date: l.Date}
	if err := e.Validate(); err != nil {
		return err
	}
	if l.ID == uuid.Nil {
		return fmt.Errorf("missing transaction id")
	}
	tx.ID = l.ID
	tx.apply(e)
	return nil
}

// DecodeLedger decodes transactions from a stream of JSONL data and returns
// them in canonical order.
func DecodeLedger(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d %q: %w", line, string(lineBytes), err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	sortTransactions(txs)
	return txs, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction %s: %w", tx.ID, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes transactions in canonical order to w in JSONL format.
// txs is not modified.
func EncodeLedger(w io.Writer, txs []Transaction) error {
	sorted := append([]Transaction(nil), txs...)
	sortTransactions(sorted)
	for _, tx := range sorted {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
