package feedtable

import (
	"testing"
	"time"

	"tablesync/lib/ledger"
	"tablesync/lib/timezone"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseStamp(t *testing.T) {
	stamp, err := ParseStamp("07 Jan, 14:30", 2024)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.January, 7, 14, 30, 0, 0, timezone.Location), stamp)
}

func TestNormalizeRow(t *testing.T) {
	cases := []struct {
		name   string
		cells  []string
		ok     bool
		expect ledger.Record
	}{
		{
			name:  "full row",
			cells: []string{"1", "07 Jan, 14:30", "alpha", "docs", "12kb"},
			ok:    true,
			expect: ledger.Record{
				Stamp: time.Date(2024, time.January, 7, 14, 30, 0, 0, timezone.Location),
				Col2:  "alpha",
				Col3:  "docs",
				Col4:  "12kb",
			},
		},
		{
			name:  "short row with stamp only",
			cells: []string{"1", "07 Jan, 14:30"},
			ok:    true,
			expect: ledger.Record{
				Stamp: time.Date(2024, time.January, 7, 14, 30, 0, 0, timezone.Location),
			},
		},
		{
			name:  "row with fewer than two cells",
			cells: []string{"1"},
			ok:    false,
		},
		{
			name:  "empty raw row",
			cells: nil,
			ok:    false,
		},
		{
			name:  "header row text in stamp position",
			cells: []string{"#", "Time", "Name", "Category", "Size"},
			ok:    false,
		},
		{
			name:  "separator row",
			cells: []string{"", "---", "", "", ""},
			ok:    false,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			record, ok := NormalizeRow(test.cells, 2024)
			require.Equal(t, test.ok, ok)
			if !ok {
				return
			}
			diff := cmp.Diff(test.expect, record)
			if diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestNormalizeRowsDropsNoise(t *testing.T) {
	rows := [][]string{
		nil, // header row, no <td> cells
		{"1", "07 Jan, 14:30", "alpha", "docs", "12kb"},
		{"", "not a stamp", "x", "y", "z"},
		{"2", "07 Jan, 09:15", "beta", "media", "4mb"},
	}
	records := NormalizeRows(rows, 2024)

	require.Len(t, records, 2)
	require.Equal(t, "alpha", records[0].Col2)
	require.Equal(t, "beta", records[1].Col2)
}
