package logger

import (
	"os"
	"sync/atomic"
	"time"
)

// TimestampLayout is the incomplete ISO 8601 form used on the destination
// stream, e.g. 2012-12-12T16:13:30.
const TimestampLayout = "2006-01-02T15:04:05"

var location atomic.Pointer[time.Location]

// Now returns the current local time formatted with TimestampLayout.
func Now() string {
	return nowIn(time.Now())
}

func nowIn(t time.Time) string {
	if loc := location.Load(); loc != nil {
		t = t.In(loc)
	}
	return t.Format(TimestampLayout)
}

// resetLocation pins the zone used by Now. TZ wins when it names a loadable
// zone; otherwise time.Local is kept.
func resetLocation() {
	loc := time.Local
	if tz, ok := os.LookupEnv("TZ"); ok && tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	location.Store(loc)
}
