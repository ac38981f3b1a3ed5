package cmd

import (
	"time"

	"github.com/etnz/cashbook/date"
)

// parseOn parses a day on the command line and places it at the time of day
// of at.
func parseOn(on string, at time.Time) (time.Time, error) {
	d, err := date.Parse(on)
	if err != nil {
		return time.Time{}, err
	}
	return d.At(at, time.Local), nil
}
