package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type moveCmd struct {
	to int
}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "reorder transactions" }
func (*moveCmd) Usage() string {
	return `cb move -to <position> <position>...

  Moves transactions to a new position in the list, as shown by list. The
  moved transactions get a new date between their new neighbours so that the
  list stays sorted by date. See 'cb topic reorder'.

Usage Examples:
# move the oldest of three transactions to the top
$ cb move -to 0 2
`
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.to, "to", -1, "Destination position, counted in the list without the moved transactions")
}

func (c *moveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 || c.to < 0 {
		fmt.Fprintln(os.Stderr, "Error: -to and at least one position are required.")
		return subcommands.ExitUsageError
	}
	source := make([]int, 0, f.NArg())
	for _, arg := range f.Args() {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid position %q\n", arg)
			return subcommands.ExitUsageError
		}
		source = append(source, n)
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := s.Move(source, c.to); err != nil {
		fmt.Fprintf(os.Stderr, "Error moving transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
