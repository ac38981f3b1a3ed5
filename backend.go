package cashbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Backend durably stores the transactions of a book.
//
// Save is the commit: it must either persist all of txs or fail without
// altering what a later Load returns.
type Backend interface {
	Load() ([]Transaction, error)
	Save(txs []Transaction) error
}

// FileBackend stores a book in a JSONL ledger file.
type FileBackend struct {
	Path string
}

// NewFileBackend returns a backend for the ledger file at path.
func NewFileBackend(path string) *FileBackend { return &FileBackend{Path: path} }

// Load reads the ledger file. A missing file is an empty book.
func (b *FileBackend) Load() ([]Transaction, error) {
	f, err := os.Open(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening ledger file %q: %w", b.Path, err)
	}
	defer f.Close()

	txs, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding ledger file %q: %w", b.Path, err)
	}
	return txs, nil
}

// Save writes txs to a temporary file next to the ledger and renames it over
// the ledger file, so that a failed save leaves the previous file intact.
func (b *FileBackend) Save(txs []Transaction) (err error) {
	dir := filepath.Dir(b.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.Path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary ledger file in %q: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodeLedger(tmp, txs); err != nil {
		return fmt.Errorf("error encoding ledger: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("error syncing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing ledger: %w", err)
	}
	// a new ledger is 0644, an existing one keeps its mode.
	mode := fs.FileMode(0644)
	if fi, err := os.Stat(b.Path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("error setting ledger permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", b.Path, err)
	}
	return nil
}

// MemoryBackend keeps a book in memory. Its zero value is an empty book.
type MemoryBackend struct {
	txs   []Transaction
	saves int
}

// NewMemoryBackend returns a backend holding a copy of txs.
func NewMemoryBackend(txs ...Transaction) *MemoryBackend {
	return &MemoryBackend{txs: slices.Clone(txs)}
}

func (b *MemoryBackend) Load() ([]Transaction, error) { return slices.Clone(b.txs), nil }

func (b *MemoryBackend) Save(txs []Transaction) error {
	b.txs = slices.Clone(txs)
	b.saves++
	return nil
}

// Saves returns the number of commits received.
func (b *MemoryBackend) Saves() int { return b.saves }
