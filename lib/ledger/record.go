package ledger

import (
	"strings"
	"time"
)

// stamp layout used in workbook cells, the scraped source has minute
// precision so nothing finer is ever stored
const StampLayout = "2006-01-02 15:04"

// Record is one row of the ledger: a timestamp plus the three text
// columns carried over from the scraped table. A zero Stamp marks the
// field as absent.
type Record struct {
	Stamp time.Time
	Col2  string
	Col3  string
	Col4  string
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Empty reports whether all four tracked fields are absent. Empty rows
// in the ledger are placeholder slots reserved for future data.
func (r Record) Empty() bool {
	return r.Stamp.IsZero() && blank(r.Col2) && blank(r.Col3) && blank(r.Col4)
}

// Ledger is the persisted system of record: an ordered sequence of
// records whose non-empty stamps are non-decreasing with position.
// Trailing rows may be placeholders awaiting fill.
type Ledger struct {
	Rows []Record
}

// HighWaterMark returns the maximum stamp present in the ledger, ok is
// false when no row carries a stamp.
func (l *Ledger) HighWaterMark() (time.Time, bool) {
	var mark time.Time
	ok := false
	for _, r := range l.Rows {
		if r.Stamp.IsZero() {
			continue
		}
		if !ok || r.Stamp.After(mark) {
			mark = r.Stamp
			ok = true
		}
	}
	return mark, ok
}
