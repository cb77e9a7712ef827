package interval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

// Parse parses the strict human text form "[[D]D days,]HH:MM:SS[.ms]",
// e.g. "12:30:00", "3 days, 01:02:03" or "00:00:00.5". The days prefix must
// be nonnegative, minutes and seconds must be in [0,59] and the fractional
// part may carry at most microsecond precision. Each violated constraint
// produces its own error; anything structurally off produces a format error
// naming the expected layout.
func Parse(s string) (Delta, error) {
	var d Delta

	rest := strings.TrimSpace(s)
	if rest == "" || !strings.Contains(rest, ":") {
		return Delta{}, formatError(s)
	}
	for _, sep := range []string{"days,", "day,"} {
		if before, after, found := strings.Cut(rest, sep); found {
			days, err := rangeCheck(strings.TrimSpace(before), "days", 0, -1)
			if err != nil {
				return Delta{}, err
			}
			d.Days = days
			rest = strings.TrimSpace(after)
			break
		}
	}

	// the clock has no sign; "-00" would otherwise slip past Atoi as 0
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+") {
		return Delta{}, formatError(s)
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return Delta{}, formatError(s)
	}

	var err error
	if d.Hours, err = rangeCheck(parts[0], "hours", 0, -1); err != nil {
		return Delta{}, err
	}
	if d.Minutes, err = rangeCheck(parts[1], "minutes", 0, 59); err != nil {
		return Delta{}, err
	}

	secPart, frac, hasFrac := strings.Cut(parts[2], ".")
	if d.Seconds, err = rangeCheck(secPart, "seconds", 0, 59); err != nil {
		return Delta{}, err
	}

	if hasFrac {
		micros, err := parseFraction(frac)
		if err != nil {
			return Delta{}, err
		}
		d.Microseconds = micros
	}

	return d, nil
}

// MustParse is Parse for fixtures and tests; it panics on error.
func MustParse(s string) Delta {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// parseFraction scales a digit string after the decimal point to
// microseconds: "5" is half a second, "000001" a single microsecond.
// More than six digits would be sub-microsecond precision and is rejected.
func parseFraction(frac string) (int64, error) {
	if frac == "" || len(frac) > 6 {
		return 0, formatError(frac)
	}
	v, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%q is not an integer: %w", frac, pderrors.ErrRange)
	}
	for i := len(frac); i < 6; i++ {
		v *= 10
	}
	if v >= MicrosPerSecond {
		return 0, fmt.Errorf("microseconds: %d is more than %d: %w", v, MicrosPerSecond-1, pderrors.ErrRange)
	}
	return v, nil
}

// rangeCheck parses one numeric component and enforces its bounds.
// max < 0 means unbounded above.
func rangeCheck(raw, name string, min, max int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer: %w", name, raw, pderrors.ErrRange)
	}
	if v < min {
		return 0, fmt.Errorf("%s: %d is less than %d: %w", name, v, min, pderrors.ErrRange)
	}
	if max >= 0 && v > max {
		return 0, fmt.Errorf("%s: %d is more than %d: %w", name, v, max, pderrors.ErrRange)
	}
	return v, nil
}

func formatError(value string) error {
	return fmt.Errorf("please use [[DD]D days,]HH:MM:SS[.ms] instead of %q: %w", value, pderrors.ErrFormat)
}
