package interval

import (
	"fmt"
	"math"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

// Micros flattens the delta to BIGINT microseconds, the storage encoding for
// databases without a native interval type. Years and months are rejected:
// a month has no fixed number of microseconds, and flattening it would
// silently change the value.
func (d Delta) Micros() (int64, error) {
	if d.Years != 0 || d.Months != 0 {
		return 0, fmt.Errorf("cannot flatten %q to microseconds: %w", d.String(), pderrors.ErrCalendarUnits)
	}

	days := int64(d.Days)
	if days > math.MaxInt64/MicrosPerDay || days < math.MinInt64/MicrosPerDay {
		return 0, fmt.Errorf("days: %w", pderrors.ErrOverflow)
	}

	total := days * MicrosPerDay
	for _, part := range [...]int64{
		int64(d.Hours) * MicrosPerHour,
		int64(d.Minutes) * MicrosPerMinute,
		int64(d.Seconds) * MicrosPerSecond,
		d.Microseconds,
	} {
		sum := total + part
		if (part > 0 && sum < total) || (part < 0 && sum > total) {
			return 0, fmt.Errorf("total microseconds: %w", pderrors.ErrOverflow)
		}
		total = sum
	}
	return total, nil
}

// FromMicros is the inverse of Micros: it splits BIGINT microseconds back
// into normalized days/hours/minutes/seconds/microseconds. The calendar
// components of the result are always zero.
func FromMicros(micros int64) Delta {
	var d Delta
	d.Days = int(micros / MicrosPerDay)
	micros %= MicrosPerDay
	d.Hours = int(micros / MicrosPerHour)
	micros %= MicrosPerHour
	d.Minutes = int(micros / MicrosPerMinute)
	micros %= MicrosPerMinute
	d.Seconds = int(micros / MicrosPerSecond)
	d.Microseconds = micros % MicrosPerSecond
	return d
}
