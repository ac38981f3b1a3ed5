package cashbook

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func noClock() time.Time { panic("clock should not be used") }

func TestReorder(t *testing.T) {
	testCases := []struct {
		name        string
		source      []int
		destination int
		wantOrder   []uuid.UUID
		wantMoved   []time.Time
	}{
		{
			name:        "to the start",
			source:      []int{3},
			destination: 0,
			wantOrder:   []uuid.UUID{id(4), id(1), id(2), id(3), id(5)},
			wantMoved:   []time.Time{at(11)},
		},
		{
			name:        "between two items",
			source:      []int{4},
			destination: 1,
			wantOrder:   []uuid.UUID{id(1), id(5), id(2), id(3), id(4)},
			wantMoved:   []time.Time{at(9)},
		},
		{
			name:        "one step down",
			source:      []int{0},
			destination: 1,
			wantOrder:   []uuid.UUID{id(2), id(1), id(3), id(4), id(5)},
			wantMoved:   []time.Time{at(7)},
		},
		{
			name:        "to the end",
			source:      []int{1},
			destination: 4,
			wantOrder:   []uuid.UUID{id(1), id(3), id(4), id(5), id(2)},
			wantMoved:   []time.Time{at(1)},
		},
		{
			name:        "block to the end",
			source:      []int{1, 0},
			destination: 3,
			wantOrder:   []uuid.UUID{id(3), id(4), id(5), id(1), id(2)},
			wantMoved:   []time.Time{at(1), at(0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			list := book(10, 8, 6, 4, 2)
			before := slices.Clone(list)

			order, moved, err := Reorder(list, tc.source, tc.destination, noClock)
			if err != nil {
				t.Fatalf("Reorder() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.wantOrder, ids(order)); diff != "" {
				t.Errorf("Reorder() order mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantMoved, dates(moved)); diff != "" {
				t.Errorf("Reorder() moved dates mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(dates(before), dates(list)); diff != "" {
				t.Errorf("Reorder() modified its input (-want +got):\n%s", diff)
			}

			// The date order must reproduce the requested visual order.
			sorted := slices.Clone(order)
			sortTransactions(sorted)
			if diff := cmp.Diff(ids(order), ids(sorted)); diff != "" {
				t.Errorf("sorting by date does not give the requested order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReorder_NoOp(t *testing.T) {
	testCases := []struct {
		name        string
		list        []Transaction
		source      []int
		destination int
	}{
		{"same position", book(10, 8, 5, 4, 2), []int{2}, 2},
		{"first item", book(10, 8, 5, 4, 2), []int{0}, 0},
		{"last item", book(10, 8, 5, 4, 2), []int{4}, 4},
		{"whole block in place", book(10, 8, 5, 4, 2), []int{1, 2}, 1},
		{"nothing selected", book(10, 8, 5, 4, 2), nil, 3},
		{"single item list", book(3), []int{0}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, moved, err := Reorder(tc.list, tc.source, tc.destination, noClock)
			if err != nil {
				t.Fatalf("Reorder() unexpected error: %v", err)
			}
			if len(moved) != 0 {
				t.Errorf("Reorder() moved %v, want nothing", moved)
			}
			if diff := cmp.Diff(dates(tc.list), dates(order)); diff != "" {
				t.Errorf("Reorder() changed dates (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReorder_DuplicateSources(t *testing.T) {
	order, moved, err := Reorder(book(10, 8, 6), []int{2, 2}, 0, noClock)
	if err != nil {
		t.Fatalf("Reorder() unexpected error: %v", err)
	}
	if len(moved) != 1 || !moved[0].Date.Equal(at(11)) {
		t.Errorf("Reorder() moved = %v, want one item at 11s", moved)
	}
	if diff := cmp.Diff([]uuid.UUID{id(3), id(1), id(2)}, ids(order)); diff != "" {
		t.Errorf("Reorder() order mismatch (-want +got):\n%s", diff)
	}
}

func TestReorder_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		source      []int
		destination int
	}{
		{"negative source", []int{-1}, 0},
		{"source past the end", []int{5}, 0},
		{"negative destination", []int{0}, -1},
		// once the item is removed there are only 4 items left.
		{"destination past the end", []int{0}, 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Reorder(book(10, 8, 6, 4, 2), tc.source, tc.destination, noClock)
			if !errors.Is(err, ErrIndex) {
				t.Errorf("Reorder() error = %v, want ErrIndex", err)
			}
		})
	}
}

// TestReorder_BlockUsesStaleNeighbour records how a block is dated when a
// moved item is followed by another moved item: the first one is dated from
// the old date of the second one, so the date order can differ from the
// requested order.
func TestReorder_BlockUsesStaleNeighbour(t *testing.T) {
	testCases := []struct {
		name        string
		source      []int
		destination int
		wantOrder   []uuid.UUID
		wantMoved   []time.Time
		wantSorted  []uuid.UUID
	}{
		{
			name:        "block to the start",
			source:      []int{3, 4},
			destination: 0,
			wantOrder:   []uuid.UUID{id(4), id(5), id(1), id(2), id(3)},
			// 4 is dated after 5's old date (2s), then 5 between 4 (3s) and 1 (10s).
			wantMoved:  []time.Time{at(3), at(6.5)},
			wantSorted: []uuid.UUID{id(1), id(2), id(5), id(3), id(4)},
		},
		{
			name:        "scattered items",
			source:      []int{0, 2},
			destination: 2,
			wantOrder:   []uuid.UUID{id(2), id(4), id(1), id(3), id(5)},
			// 1 between 4 (4s) and 3's old date (6s), then 3 between 1 (5s) and 5 (2s).
			wantMoved:  []time.Time{at(5), at(3.5)},
			wantSorted: []uuid.UUID{id(2), id(1), id(4), id(3), id(5)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, moved, err := Reorder(book(10, 8, 6, 4, 2), tc.source, tc.destination, noClock)
			if err != nil {
				t.Fatalf("Reorder() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.wantOrder, ids(order)); diff != "" {
				t.Errorf("Reorder() order mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantMoved, dates(moved)); diff != "" {
				t.Errorf("Reorder() moved dates mismatch (-want +got):\n%s", diff)
			}
			sortTransactions(order)
			if diff := cmp.Diff(tc.wantSorted, ids(order)); diff != "" {
				t.Errorf("date order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	newer, older := at(10), at(8)
	now := func() time.Time { return at(100) }

	testCases := []struct {
		name         string
		newer, older *time.Time
		want         time.Time
	}{
		{"both", &newer, &older, at(9)},
		{"predecessor only", &newer, nil, at(9)},
		{"successor only", nil, &older, at(9)},
		{"none", nil, nil, at(100)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := between(tc.newer, tc.older, now); !got.Equal(tc.want) {
				t.Errorf("between() = %v, want %v", got, tc.want)
			}
		})
	}
}
