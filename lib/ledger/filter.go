package ledger

import "time"

// Policy decides whether a scraped record is worth keeping. The two
// implementations are mutually exclusive per run: the trailing window
// when no ledger exists to compare against, novelty otherwise. Keeping
// this an explicit type means the choice is made by the caller instead
// of being inferred from what happens to exist on disk.
type Policy interface {
	Keep(stamp time.Time) bool
}

// TrailingWindow keeps records with Start <= stamp < End.
type TrailingWindow struct {
	Start time.Time
	End   time.Time
}

func (w TrailingWindow) Keep(stamp time.Time) bool {
	return !stamp.Before(w.Start) && stamp.Before(w.End)
}

// NewerThan keeps records strictly newer than the ledger's high-water
// mark. A zero Mark (empty ledger) keeps every stamped record, and a
// re-run against an unchanged source keeps nothing.
type NewerThan struct {
	Mark time.Time
}

func (n NewerThan) Keep(stamp time.Time) bool {
	return stamp.After(n.Mark)
}

// Filter applies a policy preserving input order (newest first, as the
// source page delivers rows).
func Filter(records []Record, policy Policy) []Record {
	var kept []Record
	for _, r := range records {
		if policy.Keep(r.Stamp) {
			kept = append(kept, r)
		}
	}
	return kept
}
