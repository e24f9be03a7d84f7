package ledger

import "log/slog"

// MergeStats summarizes one merge call. Updated counts only rows whose
// four fields all went from absent to present in this call; rows that
// merely gained some fields are counted separately because a partial
// fill mutates the ledger without completing the slot.
type MergeStats struct {
	Updated   int
	Partial   int
	Truncated int
}

// attemptFill writes batch values into the absent fields of a ledger
// row, never touching a field that already holds data. It reports how
// many fields were written and whether the row went from fully empty
// to fully populated.
func attemptFill(row *Record, values Record) (filled int, complete bool) {
	wasEmpty := row.Empty()

	if row.Stamp.IsZero() && !values.Stamp.IsZero() {
		row.Stamp = values.Stamp
		filled++
	}
	if blank(row.Col2) && !blank(values.Col2) {
		row.Col2 = values.Col2
		filled++
	}
	if blank(row.Col3) && !blank(values.Col3) {
		row.Col3 = values.Col3
		filled++
	}
	if blank(row.Col4) && !blank(values.Col4) {
		row.Col4 = values.Col4
		filled++
	}

	return filled, wasEmpty && filled == 4
}

// insertIndex is the position immediately after the last row whose
// stamp equals the high-water mark, or len(rows) when no row matches.
func (l *Ledger) insertIndex() int {
	mark, ok := l.HighWaterMark()
	if !ok {
		return len(l.Rows)
	}
	for i := len(l.Rows) - 1; i >= 0; i-- {
		if l.Rows[i].Stamp.Equal(mark) {
			return i + 1
		}
	}
	return len(l.Rows)
}

// Merge fills the batch into the ledger's placeholder slots starting
// immediately after the high-water mark. The batch must already be in
// chronological order (oldest first) so that filling preserves the
// ledger's non-decreasing stamp invariant. The ledger never grows:
// batch rows beyond the last placeholder are dropped and reported in
// Truncated.
//
// Note a row that was partially filled by an earlier interrupted run is
// no longer an empty slot, so a re-run skips it rather than completing
// it. The remaining absent fields of such a row stay absent.
func (l *Ledger) Merge(batch []Record) MergeStats {
	var stats MergeStats

	insert := l.insertIndex()
	for i, values := range batch {
		target := insert + i
		if target >= len(l.Rows) {
			stats.Truncated = len(batch) - i
			slog.Warn(
				"ledger has fewer placeholder slots than new rows",
				"dropped", stats.Truncated,
			)
			break
		}

		filled, complete := attemptFill(&l.Rows[target], values)
		if complete {
			stats.Updated++
		} else if filled > 0 {
			stats.Partial++
		}
	}

	return stats
}
