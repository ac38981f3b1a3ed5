package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/cashbook"
	"github.com/google/subcommands"
)

// useLedger points the global flags to a new ledger file in a temp dir and
// freezes the clock.
func useLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.jsonl")

	oldLedgerFile, oldLocale, oldCurrency := ledgerFile, locale, defaultCurrency
	en, usd := "en", "USD"
	ledgerFile, locale, defaultCurrency = &path, &en, &usd
	t.Cleanup(func() { ledgerFile, locale, defaultCurrency = oldLedgerFile, oldLocale, oldCurrency })

	t.Setenv(EnvTestingNow, "2025-01-10 12:00:00")
	return path
}

// run executes c with args and returns its status and what it printed on stdout.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: invalid arguments %q: %v", c.Name(), args, err)
	}

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	out := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		out <- string(b)
	}()

	status := c.Execute(context.Background(), f)

	w.Close()
	os.Stdout = oldStdout
	return status, <-out
}

// load reads the ledger file.
func load(t *testing.T, path string) []cashbook.Transaction {
	t.Helper()
	txs, err := cashbook.NewFileBackend(path).Load()
	if err != nil {
		t.Fatalf("cannot load ledger: %v", err)
	}
	return txs
}

func types(txs []cashbook.Transaction) []string {
	s := make([]string, len(txs))
	for i, tx := range txs {
		s[i] = tx.Type
	}
	return s
}
