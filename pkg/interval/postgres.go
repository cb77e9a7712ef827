package interval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ccoveille/go-safecast"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

var (
	yearsRe  = regexp.MustCompile(`(?i)(-?\d+)\s+years?`)
	monthsRe = regexp.MustCompile(`(?i)(-?\d+)\s+mon(?:th)?s?`)
	daysRe   = regexp.MustCompile(`(?i)(-?\d+)\s+days?`)
	hoursRe  = regexp.MustCompile(`(?i)(-?\d+)\s+hours?`)
	minsRe   = regexp.MustCompile(`(?i)(-?\d+)\s+min(?:ute)?s?`)
	secsRe   = regexp.MustCompile(`(?i)(-?\d+)\s+sec(?:ond)?s?`)
	microsRe = regexp.MustCompile(`(?i)(-?\d+)\s+microseconds?`)
	clockRe  = regexp.MustCompile(`([+-]?)(\d+):(\d\d):(\d\d)(?:\.(\d{1,6}))?`)
)

// ParsePostgres recovers a Delta from the text form PostgreSQL prints for
// INTERVAL columns, e.g. "1 year 2 mons 3 days 04:05:06.789" or
// "-1 days +02:03:00". Repeated unit groups accumulate. An empty string is
// the zero delta.
func ParsePostgres(value string) (Delta, error) {
	var d Delta

	if strings.TrimSpace(value) == "" {
		return d, nil
	}

	for _, g := range []struct {
		re   *regexp.Regexp
		dst  *int
		unit string
	}{
		{yearsRe, &d.Years, "years"},
		{monthsRe, &d.Months, "months"},
		{daysRe, &d.Days, "days"},
		{hoursRe, &d.Hours, "hours"},
		{minsRe, &d.Minutes, "minutes"},
		{secsRe, &d.Seconds, "seconds"},
	} {
		for _, m := range g.re.FindAllStringSubmatch(value, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return Delta{}, fmt.Errorf("%s %q: %w", g.unit, m[1], pderrors.ErrFormat)
			}
			*g.dst += n
		}
	}
	for _, m := range microsRe.FindAllStringSubmatch(value, -1) {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Delta{}, fmt.Errorf("microseconds %q: %w", m[1], pderrors.ErrFormat)
		}
		d.Microseconds += n
	}

	for _, m := range clockRe.FindAllStringSubmatch(value, -1) {
		sign := 1
		if m[1] == "-" {
			sign = -1
		}
		h, _ := strconv.Atoi(m[2])
		min, _ := strconv.Atoi(m[3])
		sec, _ := strconv.Atoi(m[4])
		d.Hours += sign * h
		d.Minutes += sign * min
		d.Seconds += sign * sec
		if m[5] != "" {
			frac, _ := strconv.ParseInt(m[5], 10, 64)
			for i := len(m[5]); i < 6; i++ {
				frac *= 10
			}
			d.Microseconds += int64(sign) * frac
		}
	}

	return d, nil
}

// PostgresString renders the delta as an INTERVAL literal, e.g.
// "2 MONS 3 DAYS 7 HOURS 30 MINS". Zero components are omitted; the zero
// delta renders as "0".
func (d Delta) PostgresString() string {
	var buf []string
	for _, c := range []struct {
		v    int64
		unit string
	}{
		{int64(d.Years), "YEARS"},
		{int64(d.Months), "MONS"},
		{int64(d.Days), "DAYS"},
		{int64(d.Hours), "HOURS"},
		{int64(d.Minutes), "MINS"},
		{int64(d.Seconds), "SECS"},
		{d.Microseconds, "MICROSECONDS"},
	} {
		if c.v != 0 {
			buf = append(buf, fmt.Sprintf("%d %s", c.v, c.unit))
		}
	}
	if len(buf) == 0 {
		return "0"
	}
	return strings.Join(buf, " ")
}

// ScanInterval implements pgtype.IntervalScanner, so interval columns read
// through pgx decode straight into a Delta. The wire triple
// (months, days, microseconds) is unfolded the way postgres itself displays
// it: months into years+months, microseconds into the clock components.
func (d *Delta) ScanInterval(v pgtype.Interval) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into *interval.Delta: %w", pderrors.ErrNull)
	}
	*d = fromWire(v.Months, v.Days, v.Microseconds)
	return nil
}

// IntervalValue implements pgtype.IntervalValuer, the write half of the pgx
// binding. It fails when the calendar components overflow the 32-bit wire
// fields.
func (d Delta) IntervalValue() (pgtype.Interval, error) {
	months, err := safecast.ToInt32(int64(d.Years)*MonthsPerYear + int64(d.Months))
	if err != nil {
		return pgtype.Interval{}, fmt.Errorf("months: %w", pderrors.ErrOverflow)
	}
	days, err := safecast.ToInt32(d.Days)
	if err != nil {
		return pgtype.Interval{}, fmt.Errorf("days: %w", pderrors.ErrOverflow)
	}
	return pgtype.Interval{
		Months:       months,
		Days:         days,
		Microseconds: d.clockMicros(),
		Valid:        true,
	}, nil
}

// clockMicros flattens the sub-day components only.
func (d Delta) clockMicros() int64 {
	return int64(d.Hours)*MicrosPerHour +
		int64(d.Minutes)*MicrosPerMinute +
		int64(d.Seconds)*MicrosPerSecond +
		d.Microseconds
}

func fromWire(months, days int32, micros int64) Delta {
	d := Delta{
		Years:  int(months) / MonthsPerYear,
		Months: int(months) % MonthsPerYear,
		Days:   int(days),
	}
	d.Hours = int(micros / MicrosPerHour)
	micros %= MicrosPerHour
	d.Minutes = int(micros / MicrosPerMinute)
	micros %= MicrosPerMinute
	d.Seconds = int(micros / MicrosPerSecond)
	d.Microseconds = micros % MicrosPerSecond
	return d
}
