package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Since returns the span from the given instant until now.
func Since(from time.Time) TimeSpan {
	return timespan.BetweenTimes(from, time.Now())
}
