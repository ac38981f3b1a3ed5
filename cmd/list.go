package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	period string
	start  string
	date   string
	query  string
	head   int
	totals bool
	raw    bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions grouped by day" }
func (*listCmd) Usage() string {
	return `cb list [-p <period> | -s <start_date>] [-d <end_date>] [-q <jsonpath>] [-head <n>] [-totals] [-raw]

  Lists transactions grouped by day, most recent first. Each transaction shows
  its position, used by edit, delete and move.

Usage Examples:
# this month expenses
$ cb list -p month -q '$[?(@.price < 0)]'
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, year) ending on -d.")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range. Defaults to today.")
	f.StringVar(&c.query, "q", "", "JSONPath filter over the transactions, like '$[?(@.type == \"rent\")]'.")
	f.IntVar(&c.head, "head", 0, "Show only the N most recent transactions.")
	f.BoolVar(&c.totals, "totals", false, "Show the total of each day.")
	f.BoolVar(&c.raw, "raw", false, "Print markdown instead of rendering it.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()
	all := s.List()

	txs := all
	if c.start != "" || c.date != "" || c.period != "" {
		r, err := c.dateRange()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		txs = nil
		for _, tx := range all {
			if r.Contains(date.Of(tx.Date, time.Local)) {
				txs = append(txs, tx)
			}
		}
	}

	if c.query != "" {
		txs, err = cashbook.Query(txs, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in query %q: %v\n", c.query, err)
			return subcommands.ExitUsageError
		}
	}
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}

	md := renderer.Days(cashbook.GroupByDay(txs, time.Local), renderer.Options{
		Currency: *defaultCurrency,
		Location: time.Local,
		Position: positions(all),
		Totals:   c.totals,
	})
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}

// dateRange returns the range selected by the date flags.
func (c *listCmd) dateRange() (date.Range, error) {
	end := date.Of(now(), time.Local)
	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			return date.Range{}, fmt.Errorf("parsing end date: %w", err)
		}
		end = d
	}
	if c.start != "" {
		start, err := date.Parse(c.start)
		if err != nil {
			return date.Range{}, fmt.Errorf("parsing start date: %w", err)
		}
		return date.Between(start, end), nil
	}
	if c.period == "" {
		return date.Between(date.Date{}, end), nil
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return date.Range{}, fmt.Errorf("parsing period: %w", err)
	}
	return date.NewRange(end, period), nil
}
