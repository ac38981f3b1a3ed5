package renderer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/cashbook"
)

// DayLayout is the medium date layout used for day headers.
const DayLayout = "Mon, Jan 2, 2006"

// Options controls how days are rendered.
type Options struct {
	// Currency is the ISO code used to format prices.
	Currency string
	// Position returns the position of tx in the whole book. When nil,
	// transactions are numbered in the order they are rendered.
	Position func(tx cashbook.Transaction) int
	// Location is the zone of the time column. Nil means local time.
	Location *time.Location
	// Totals adds a total line below each day.
	Totals bool
}

// Days renders grouped transactions as markdown, one section per day, most
// recent first.
func Days(days []cashbook.Day, opts Options) string {
	b := &strings.Builder{}
	if len(days) == 0 {
		b.WriteString("No transactions yet. Use `cb add` to record one.\n")
		return b.String()
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	n := 0
	for _, day := range days {
		fmt.Fprintf(b, "## %s\n\n", day.Date.Format(DayLayout))
		table := markdownTable(b, "#", "Time", "Type", "Price")
		for _, tx := range day.Transactions {
			pos := n
			if opts.Position != nil {
				pos = opts.Position(tx)
			}
			n++
			table.Append([]string{
				strconv.Itoa(pos),
				tx.Date.In(loc).Format("15:04"),
				tx.Type,
				Money(tx.Price, opts.Currency),
			})
		}
		table.Render()
		if opts.Totals {
			fmt.Fprintf(b, "\nTotal: %s\n", SignedMoney(day.Total(), opts.Currency))
		}
		b.WriteString("\n")
	}
	return b.String()
}
