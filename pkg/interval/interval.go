// Package interval implements a calendar-aware duration value: a delta
// expressed in calendar units (years, months) plus clock units (days, hours,
// minutes, seconds, microseconds), together with the conversions needed to
// store it in a database. On PostgreSQL the value maps to the native INTERVAL
// type, text or binary; everywhere else it flattens to BIGINT microseconds.
package interval

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

const (
	MicrosPerSecond = 1_000_000
	MicrosPerMinute = 60 * MicrosPerSecond
	MicrosPerHour   = 60 * MicrosPerMinute
	MicrosPerDay    = 24 * MicrosPerHour

	MonthsPerYear = 12
)

// Delta is a calendar delta. Unlike time.Duration it distinguishes
// "1 month" from "30 days" and "1 day" from "24 hours".
//
// Components are unbounded signed accumulators; the displayed ranges
// (minutes and seconds in [0,59], microseconds in [0,1e6)) are enforced by
// Parse, not by the type.
type Delta struct {
	Years        int
	Months       int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int64
}

// FromDuration splits a fixed-length duration into clock components.
// The calendar components of the result are always zero.
func FromDuration(d time.Duration) Delta {
	return FromMicros(d.Microseconds())
}

// Duration converts the delta to a fixed-length time.Duration. It fails when
// years or months are set, since those have no fixed length, and when the
// total exceeds the time.Duration range.
func (d Delta) Duration() (time.Duration, error) {
	micros, err := d.Micros()
	if err != nil {
		return 0, err
	}
	if micros > math.MaxInt64/1000 || micros < math.MinInt64/1000 {
		return 0, fmt.Errorf("%d microseconds: %w", micros, pderrors.ErrOverflow)
	}
	return time.Duration(micros) * time.Microsecond, nil
}

func (d Delta) IsZero() bool {
	return d == Delta{}
}

// String renders the human text form parsed by Parse:
// "[[D]D days, ]HH:MM:SS[.ffffff]". Years and months have no place in that
// form and are rendered as a calendar prefix when present. The sub-day
// components are combined into one signed clock, so a negative delta renders
// as "-HH:MM:SS" rather than per-component negatives that nothing can parse
// back.
func (d Delta) String() string {
	var b strings.Builder
	writeCalendarUnit(&b, d.Years, "year")
	writeCalendarUnit(&b, d.Months, "month")
	writeCalendarUnit(&b, d.Days, "day")

	clock := d.clockMicros()
	if clock < 0 {
		b.WriteByte('-')
		clock = -clock
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d",
		clock/MicrosPerHour,
		clock%MicrosPerHour/MicrosPerMinute,
		clock%MicrosPerMinute/MicrosPerSecond)
	if frac := clock % MicrosPerSecond; frac != 0 {
		fmt.Fprintf(&b, ".%06d", frac)
	}
	return b.String()
}

func writeCalendarUnit(b *strings.Builder, v int, unit string) {
	if v == 0 {
		return
	}
	if v != 1 && v != -1 {
		unit += "s"
	}
	fmt.Fprintf(b, "%d %s, ", v, unit)
}

// Compare orders two deltas lexicographically over
// (years, months, days, hours, minutes, seconds, microseconds).
// It reports -1, 0 or 1. Note that this is a sort key, not a duration
// comparison: {Months: 1} sorts after {Days: 40}.
func Compare(lhs, rhs Delta) int {
	for _, c := range [...]int64{
		int64(lhs.Years) - int64(rhs.Years),
		int64(lhs.Months) - int64(rhs.Months),
		int64(lhs.Days) - int64(rhs.Days),
		int64(lhs.Hours) - int64(rhs.Hours),
		int64(lhs.Minutes) - int64(rhs.Minutes),
		int64(lhs.Seconds) - int64(rhs.Seconds),
	} {
		if c < 0 {
			return -1
		}
		if c > 0 {
			return 1
		}
	}
	switch {
	case lhs.Microseconds < rhs.Microseconds:
		return -1
	case lhs.Microseconds > rhs.Microseconds:
		return 1
	}
	return 0
}

// Less reports whether d sorts before other under Compare.
func (d Delta) Less(other Delta) bool {
	return Compare(d, other) < 0
}

// Sort sorts deltas in place into Compare order.
func Sort(deltas []Delta) {
	sort.Slice(deltas, func(i, j int) bool {
		return Compare(deltas[i], deltas[j]) < 0
	})
}
