package renderer

import (
	"fmt"

	"github.com/etnz/cashbook"
)

// TimeLayout is the layout used for transaction times.
const TimeLayout = "2006-01-02 15:04"

// Transaction renders a one line summary of tx, used as command feedback.
func Transaction(tx cashbook.Transaction, currency string) string {
	return fmt.Sprintf("%s %q %s (%s)", tx.Date.Local().Format(TimeLayout), tx.Type, Money(tx.Price, currency), tx.ID)
}
