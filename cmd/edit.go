package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id    string
	n     int
	typ   string
	price string
	on    string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an existing transaction" }
func (*editCmd) Usage() string {
	return `cb edit (-id <id> | -n <position>) [-type <type>] [-price <price>] [-on <date>]

  Modifies a transaction. Fields whose flag is not given keep their current
  value. Changing the day keeps the time of day of the transaction.

Usage Examples:
$ cb edit -n 0 -price -5
$ cb edit -id 7f1c0a52-2a43-4c4f-8a4e-9a3c9b8f0e11 -type lunch
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit")
	f.IntVar(&c.n, "n", -1, "Position of the transaction to edit, as shown by list")
	f.StringVar(&c.typ, "type", "", "New type")
	f.StringVar(&c.price, "price", "", "New price, empty for zero")
	f.StringVar(&c.on, "on", "", "New day, ISO or relative (-1d)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.id == "") == (c.n < 0) {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -id or -n is required.")
		return subcommands.ExitUsageError
	}
	ref := c.id
	if ref == "" {
		ref = strconv.Itoa(c.n)
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	tx, err := resolve(s, ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	loc := Locale()
	form := cashbook.EditForm(tx, loc)
	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "type":
			form.Type = c.typ
		case "price":
			form.Price = c.price
		case "on":
			form.Date, parseErr = parseOn(c.on, tx.Date)
		}
	})
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -on: %v\n", parseErr)
		return subcommands.ExitUsageError
	}

	e, err := form.Entry(loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot save transaction: %v\n", err)
		return subcommands.ExitUsageError
	}
	updated, err := s.Update(tx.ID, e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error editing transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Edited %s\n", renderer.Transaction(updated, *defaultCurrency))
	return subcommands.ExitSuccess
}
