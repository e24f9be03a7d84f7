package feedtable

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"tablesync/lib/ledger"
	"tablesync/lib/telemetry"
	"tablesync/lib/timezone"

	"github.com/stretchr/testify/require"
)

// end to end: markup -> rows -> records -> novelty filter -> merge ->
// persist -> reload
func TestScrapeAndMergePipeline(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/feedtable")
	defer cleanup()

	page := `<table>
	  <tr><th>#</th><th>Time</th><th>Name</th><th>Category</th><th>Size</th></tr>
	  <tr><td>1</td><td>07 Jan, 11:00</td><td>newer</td><td>docs</td><td>1kb</td></tr>
	  <tr><td>2</td><td>07 Jan, 09:00</td><td>older</td><td>docs</td><td>2kb</td></tr>
	</table>`

	mark := time.Date(2024, time.January, 7, 10, 0, 0, 0, timezone.Location)
	led := &ledger.Ledger{Rows: []ledger.Record{
		{Stamp: mark, Col2: "existing", Col3: "docs", Col4: "9kb"},
		{}, {},
	}}

	rows, err := ExtractRows(context.Background(), []byte(page))
	require.NoError(t, err)

	records := NormalizeRows(rows, 2024)
	require.Len(t, records, 2)

	kept := ledger.Filter(records, ledger.NewerThan{Mark: mark})
	require.Len(t, kept, 1, "only the row newer than the high-water mark survives")
	require.Equal(t, "newer", kept[0].Col2)

	slices.Reverse(kept)
	stats := led.Merge(kept)
	require.Equal(t, 1, stats.Updated)
	require.Equal(t, 0, stats.Truncated)

	path := filepath.Join(t.TempDir(), "ledger.xlsx")
	require.NoError(t, led.SaveFile(path))

	reloaded, err := ledger.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, reloaded.Rows, 3)
	require.Equal(t, "newer", reloaded.Rows[1].Col2)
	require.True(t, reloaded.Rows[2].Empty(), "unfilled placeholder survives the round trip")

	// idempotence: a second run against the unchanged page finds
	// nothing newer
	newMark, ok := reloaded.HighWaterMark()
	require.True(t, ok)
	require.Empty(t, ledger.Filter(NormalizeRows(rows, 2024), ledger.NewerThan{Mark: newMark}))
}
