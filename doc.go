// Package cashbook records personal money transactions in a local book.
//
// A book is a list of transactions, each with a free-text type, a signed
// price and a date. The date is both when the transaction happened and its
// position: a book is always listed most recent first.
//
// The core functionalities include:
//   - Store: create, update, delete and list transactions. Every change is
//     committed to a Backend (a JSONL ledger file, or memory) and notified to
//     subscribers. A change that cannot be committed is not applied.
//   - Reordering: moving transactions in the list re-dates the moved ones
//     between their new neighbours, without touching the others.
//   - Forms: validation of the type and price text typed by the user, with
//     locale aware number parsing.
//   - Day grouping: sections of the list by calendar day.
//   - Query: JSONPath selection of transactions.
//
// This package is the foundational logic of the `cb` command-line tool.
package cashbook
