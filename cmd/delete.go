package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete transactions" }
func (*deleteCmd) Usage() string {
	return `cb delete <position|id>...

  Deletes the given transactions, by position as shown by list or by id.
  Either all of them are deleted or none is.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction is required.")
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	// positions are resolved before any deletion so they all refer to the same list.
	ids := make([]uuid.UUID, 0, f.NArg())
	for _, ref := range f.Args() {
		tx, err := resolve(s, ref)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if !slices.Contains(ids, tx.ID) {
			ids = append(ids, tx.ID)
		}
	}
	if err := s.Delete(ids...); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d transaction(s)\n", len(ids))
	return subcommands.ExitSuccess
}
