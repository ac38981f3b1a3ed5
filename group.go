package cashbook

import (
	"slices"
	"time"

	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

// Day is a section of the book: the transactions of one calendar day.
type Day struct {
	Date         date.Date
	Transactions []Transaction // date descending
}

// Start returns the first instant of the day in loc.
func (d Day) Start(loc *time.Location) time.Time { return d.Date.Start(loc) }

// Total returns the sum of the day's prices.
func (d Day) Total() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range d.Transactions {
		total = total.Add(tx.Price)
	}
	return total
}

// GroupByDay buckets txs by their calendar day in loc (time.Local if nil).
// Days are sorted most recent first and so are the transactions within a day.
// Grouping is for display only: it does not change positions in the list.
func GroupByDay(txs []Transaction, loc *time.Location) []Day {
	index := make(map[date.Date]int)
	var days []Day
	for _, tx := range txs {
		on := date.Of(tx.Date, loc)
		i, ok := index[on]
		if !ok {
			i = len(days)
			index[on] = i
			days = append(days, Day{Date: on})
		}
		days[i].Transactions = append(days[i].Transactions, tx)
	}
	slices.SortFunc(days, func(a, b Day) int { return b.Date.Compare(a.Date) })
	for _, d := range days {
		sortTransactions(d.Transactions)
	}
	return days
}
