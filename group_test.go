package cashbook

import (
	"testing"
	"time"

	"github.com/etnz/cashbook/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGroupByDay(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	txs := []Transaction{
		{ID: id(1), Type: "breakfast", Price: decimal.NewFromInt(-5), Date: time.Date(2024, 1, 1, 8, 0, 0, 0, seoul)},
		{ID: id(2), Type: "late snack", Price: decimal.NewFromInt(-3), Date: time.Date(2024, 1, 2, 0, 1, 0, 0, seoul)},
		{ID: id(3), Type: "dinner", Price: decimal.NewFromInt(-20), Date: time.Date(2024, 1, 1, 20, 0, 0, 0, seoul)},
		{ID: id(4), Type: "salary", Price: decimal.NewFromInt(3000), Date: time.Date(2023, 12, 25, 9, 0, 0, 0, seoul)},
	}

	days := GroupByDay(txs, seoul)

	gotDays := make([]date.Date, len(days))
	gotIDs := make([][]uuid.UUID, len(days))
	for i, d := range days {
		gotDays[i] = d.Date
		gotIDs[i] = ids(d.Transactions)
	}
	wantDays := []date.Date{date.New(2024, 1, 2), date.New(2024, 1, 1), date.New(2023, 12, 25)}
	if diff := cmp.Diff(wantDays, gotDays, cmp.Comparer(func(a, b date.Date) bool { return a == b })); diff != "" {
		t.Errorf("GroupByDay() days mismatch (-want +got):\n%s", diff)
	}
	wantIDs := [][]uuid.UUID{{id(2)}, {id(3), id(1)}, {id(4)}}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("GroupByDay() transactions mismatch (-want +got):\n%s", diff)
	}

	if got := days[1].Total(); !got.Equal(decimal.NewFromInt(-25)) {
		t.Errorf("Total() = %v, want -25", got)
	}
	if got, want := days[0].Start(seoul), time.Date(2024, 1, 2, 0, 0, 0, 0, seoul); !got.Equal(want) {
		t.Errorf("Start() = %v, want %v", got, want)
	}
}

func TestGroupByDay_Location(t *testing.T) {
	// The same instants fall on different days depending on the location.
	txs := book(0, 3600*10)
	if got := len(GroupByDay(txs, time.UTC)); got != 1 {
		t.Errorf("GroupByDay(UTC) gave %d days, want 1", got)
	}
	if got := len(GroupByDay(txs, time.FixedZone("", 20*3600))); got != 2 {
		t.Errorf("GroupByDay(+20h) gave %d days, want 2", got)
	}
}

func TestGroupByDay_Empty(t *testing.T) {
	if days := GroupByDay(nil, time.UTC); len(days) != 0 {
		t.Errorf("GroupByDay(nil) = %v, want no day", days)
	}
}
