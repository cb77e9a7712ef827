package interval

import (
	"fmt"
	"strings"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

// Form field display formats. FormatDHMS shows a days prefix when the value
// has one; FormatHMS folds days into the hour count.
const (
	FormatDHMS = "DHMS"
	FormatHMS  = "HMS"
)

// FormField validates human-entered interval text against optional bounds,
// mirroring what the database field cannot do on its own: required checks,
// a min/max window and a display format for initial values.
type FormField struct {
	Min      *Delta
	Max      *Delta
	Format   string
	Required bool
	Label    string
	HelpText string
	Initial  *Delta
}

// NewFormField builds a FormField and rejects inverted bounds.
func NewFormField(min, max *Delta, format string) (*FormField, error) {
	if min != nil && max != nil && Compare(*min, *max) >= 0 {
		return nil, fmt.Errorf("min %q is not below max %q: %w",
			min.String(), max.String(), pderrors.ErrBounds)
	}
	if format == "" {
		format = FormatDHMS
	}
	return &FormField{Min: min, Max: max, Format: format}, nil
}

// Clean parses and validates one submitted value. Blank input yields nil
// for optional fields and an error for required ones; everything else goes
// through the strict parser and then the bounds.
func (f *FormField) Clean(input string) (*Delta, error) {
	if strings.TrimSpace(input) == "" {
		if f.Required {
			return nil, fmt.Errorf("this field is required: %w", pderrors.ErrFormat)
		}
		if f.Initial != nil {
			d := *f.Initial
			return &d, nil
		}
		return nil, nil
	}

	d, err := Parse(input)
	if err != nil {
		return nil, err
	}

	if f.Min != nil && Compare(d, *f.Min) < 0 {
		return nil, fmt.Errorf("%q is less than %q: %w", d.String(), f.Min.String(), pderrors.ErrRange)
	}
	if f.Max != nil && Compare(d, *f.Max) > 0 {
		return nil, fmt.Errorf("%q is more than %q: %w", d.String(), f.Max.String(), pderrors.ErrRange)
	}
	return &d, nil
}

// Render formats a value for an input widget according to the field format.
func (f *FormField) Render(d Delta) string {
	if f.Format == FormatHMS {
		clock := int64(d.Days)*MicrosPerDay + d.clockMicros()
		sign := ""
		if clock < 0 {
			sign = "-"
			clock = -clock
		}
		s := fmt.Sprintf("%s%02d:%02d:%02d", sign,
			clock/MicrosPerHour,
			clock%MicrosPerHour/MicrosPerMinute,
			clock%MicrosPerMinute/MicrosPerSecond)
		if frac := clock % MicrosPerSecond; frac != 0 {
			s += fmt.Sprintf(".%06d", frac)
		}
		return s
	}
	return d.String()
}
