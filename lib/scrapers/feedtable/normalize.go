package feedtable

import (
	"fmt"
	"strings"
	"time"

	"tablesync/lib/ledger"
	"tablesync/lib/timezone"
)

// the source table prints stamps like "07 Jan, 14:30", year omitted
const rawStampLayout = "02 Jan, 15:04 2006"

func cellAt(cells []string, idx int) string {
	if idx < len(cells) {
		return cells[idx]
	}
	return ""
}

// ParseStamp reconstructs a full timestamp from the source's
// year-less day-month text and the supplied year.
func ParseStamp(raw string, year int) (time.Time, error) {
	return time.ParseInLocation(
		rawStampLayout,
		fmt.Sprintf("%s %d", strings.TrimSpace(raw), year),
		timezone.Location,
	)
}

// NormalizeRow turns one raw row into a typed record. Column mapping
// is positional: cell 0 is a row-index artifact and always discarded,
// cell 1 is the stamp, cells 2-4 are the text columns. Rows that are
// too short, carry an unparsable stamp (header and separator rows), or
// are blank across all four fields yield ok=false rather than an
// error: such rows are expected noise in the source table.
func NormalizeRow(cells []string, year int) (ledger.Record, bool) {
	if len(cells) < 2 {
		return ledger.Record{}, false
	}

	stamp, err := ParseStamp(cellAt(cells, 1), year)
	if err != nil {
		return ledger.Record{}, false
	}

	record := ledger.Record{
		Stamp: stamp,
		Col2:  strings.TrimSpace(cellAt(cells, 2)),
		Col3:  strings.TrimSpace(cellAt(cells, 3)),
		Col4:  strings.TrimSpace(cellAt(cells, 4)),
	}
	if record.Empty() {
		return ledger.Record{}, false
	}
	return record, true
}

// NormalizeRows filter-maps raw rows into records, preserving the
// source order (newest first).
func NormalizeRows(rows [][]string, year int) []ledger.Record {
	var records []ledger.Record
	for _, cells := range rows {
		record, ok := NormalizeRow(cells, year)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}
