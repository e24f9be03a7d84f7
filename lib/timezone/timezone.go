package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Singapore")
	if err != nil {
		panic(err)
	}
}

// force timezone to be the source site's local time because the
// scraped table omits both year and zone, so reconstructing a
// timestamp from server-local time would shift rows across the
// day boundary
func Now() time.Time {
	return time.Now().In(Location)
}

// the trailing window used when no ledger is available to compare
// against, ending at `now` exclusive
func TrailingDay(now time.Time) (time.Time, time.Time) {
	return now.Add(-24 * time.Hour), now
}
