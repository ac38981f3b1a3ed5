package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	typ   string
	price string
	on    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction" }
func (*addCmd) Usage() string {
	return `cb add -type <type> [-price <price>] [-on <date>]

  Records a new transaction. The price is written with the decimal separator
  of the current locale, an empty price is zero. Negative prices are expenses.
  The date defaults to now, a day like 2025-07-01 or -1d records it at the
  current time of that day.

Usage Examples:
$ cb add -type coffee -price -4.5
$ cb add -type salary -price 3000 -on 2025-07-01
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Kind of transaction, like rent or coffee (required)")
	f.StringVar(&c.price, "price", "", "Signed amount, negative for an expense")
	f.StringVar(&c.on, "on", "", "Day of the transaction, ISO or relative (-1d). Defaults to now")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loc := Locale()
	form := cashbook.NewForm(now())
	form.Type, form.Price = c.typ, c.price
	if c.on != "" {
		d, err := parseOn(c.on, form.Date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -on: %v\n", err)
			return subcommands.ExitUsageError
		}
		form.Date = d
	}
	e, err := form.Entry(loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot save transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	tx, err := s.Create(e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s\n", renderer.Transaction(tx, *defaultCurrency))
	return subcommands.ExitSuccess
}
