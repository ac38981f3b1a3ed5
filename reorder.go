package cashbook

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrIndex is returned when a position does not exist in the list.
var ErrIndex = errors.New("index out of range")

// Reorder moves the items of list at the source positions to destination,
// and gives each moved item a new date so that ordering the result by date
// descending reproduces the requested order.
//
// list must be in canonical order (date descending). The moved items keep
// their relative order and are inserted as a single block; destination is a
// position in the list once the moved items have been removed from it.
//
// A moved item is dated between its new neighbours:
//   - both exist: the midpoint of the predecessor and successor dates,
//   - only a predecessor (end of the list): one second before it,
//   - only a successor (start of the list): one second after it,
//   - none: now().
//
// Neighbours are read in the new order as it is being updated: a moved item
// followed by another moved item uses that item's old date.
//
// Reorder returns the new order and the moved items with their new dates. If
// the move does not change the order, moved is empty and no date changes.
func Reorder(list []Transaction, source []int, destination int, now func() time.Time) (order, moved []Transaction, err error) {
	src := slices.Clone(source)
	slices.Sort(src)
	src = slices.Compact(src)
	for _, i := range src {
		if i < 0 || i >= len(list) {
			return nil, nil, fmt.Errorf("invalid source position %d in a list of %d: %w", i, len(list), ErrIndex)
		}
	}
	if len(src) == 0 {
		return slices.Clone(list), nil, nil
	}

	// Extract the items being moved, and the remaining ones.
	moving := make([]Transaction, 0, len(src))
	current := make([]Transaction, 0, len(list))
	for i, tx := range list {
		if _, found := slices.BinarySearch(src, i); found {
			moving = append(moving, tx)
		} else {
			current = append(current, tx)
		}
	}
	if destination < 0 || destination > len(current) {
		return nil, nil, fmt.Errorf("invalid destination %d in a list of %d: %w", destination, len(current), ErrIndex)
	}
	current = slices.Insert(current, destination, moving...)

	if sameOrder(list, current) {
		return current, nil, nil
	}

	for idx := destination; idx < destination+len(moving); idx++ {
		var newer, older *time.Time
		if idx > 0 {
			newer = &current[idx-1].Date
		}
		if idx+1 < len(current) {
			older = &current[idx+1].Date
		}
		current[idx].Date = between(newer, older, now)
	}
	return current, slices.Clone(current[destination : destination+len(moving)]), nil
}

// between returns a date strictly between newer and older when possible.
func between(newer, older *time.Time, now func() time.Time) time.Time {
	switch {
	case newer != nil && older != nil:
		return newer.Add(-newer.Sub(*older) / 2)
	case newer != nil:
		return newer.Add(-time.Second)
	case older != nil:
		return older.Add(time.Second)
	default:
		return now()
	}
}

func sameOrder(a, b []Transaction) bool {
	return slices.EqualFunc(a, b, func(x, y Transaction) bool { return x.ID == y.ID })
}
