package ledger

import (
	"testing"
	"time"

	"tablesync/lib/timezone"

	"github.com/stretchr/testify/require"
)

func stamp(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, timezone.Location)
}

func TestTrailingWindowBoundaries(t *testing.T) {
	end := stamp(8, 10, 0)
	window := TrailingWindow{Start: end.Add(-24 * time.Hour), End: end}

	cases := []struct {
		stamp time.Time
		keep  bool
	}{
		{stamp: end.Add(-24 * time.Hour), keep: true},  // exactly at start
		{stamp: end.Add(-24*time.Hour - time.Minute), keep: false},
		{stamp: end.Add(-time.Minute), keep: true},
		{stamp: end, keep: false}, // end is exclusive
		{stamp: end.Add(time.Minute), keep: false},
	}
	for _, test := range cases {
		require.Equal(t, test.keep, window.Keep(test.stamp), "stamp %v", test.stamp)
	}
}

func TestNewerThanBoundaries(t *testing.T) {
	mark := stamp(7, 10, 0)
	policy := NewerThan{Mark: mark}

	require.False(t, policy.Keep(mark), "high-water mark itself is excluded")
	require.False(t, policy.Keep(mark.Add(-time.Hour)))
	require.True(t, policy.Keep(mark.Add(time.Minute)))
}

func TestNewerThanEmptyLedgerKeepsEverything(t *testing.T) {
	led := &Ledger{}
	mark, ok := led.HighWaterMark()
	require.False(t, ok)

	policy := NewerThan{Mark: mark}
	require.True(t, policy.Keep(stamp(1, 0, 0)))
}

func TestFilterPreservesOrder(t *testing.T) {
	// newest first, as the source page delivers rows
	records := []Record{
		{Stamp: stamp(7, 11, 0), Col2: "newer"},
		{Stamp: stamp(7, 9, 0), Col2: "older"},
	}
	kept := Filter(records, NewerThan{Mark: stamp(7, 10, 0)})

	require.Len(t, kept, 1)
	require.Equal(t, "newer", kept[0].Col2)
}

func TestNoveltyIdempotence(t *testing.T) {
	led := &Ledger{Rows: []Record{
		{Stamp: stamp(7, 9, 0), Col2: "a", Col3: "b", Col4: "c"},
		{Stamp: stamp(7, 10, 0), Col2: "d", Col3: "e", Col4: "f"},
	}}
	mark, ok := led.HighWaterMark()
	require.True(t, ok)

	// re-scrape of an unchanged source yields zero new rows
	kept := Filter(led.Rows, NewerThan{Mark: mark})
	require.Empty(t, kept)
}
