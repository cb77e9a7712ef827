package interval

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

func TestParsePostgres(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Delta
	}{
		{
			name: "empty is zero",
		},
		{
			name:     "clock only",
			input:    "04:05:06",
			expected: Delta{Hours: 4, Minutes: 5, Seconds: 6},
		},
		{
			name:     "postgres default style",
			input:    "1 year 2 mons 3 days 04:05:06.789",
			expected: Delta{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6, Microseconds: 789000},
		},
		{
			name:     "plural years and mons",
			input:    "2 years 11 mons",
			expected: Delta{Years: 2, Months: 11},
		},
		{
			name:     "verbose month units",
			input:    "14 months 2 days",
			expected: Delta{Months: 14, Days: 2},
		},
		{
			name:     "negative days positive clock",
			input:    "-1 days +02:03:00",
			expected: Delta{Days: -1, Hours: 2, Minutes: 3},
		},
		{
			name:     "negative clock",
			input:    "-00:00:01",
			expected: Delta{Seconds: -1},
		},
		{
			name:     "repeated groups accumulate",
			input:    "1 day 2 days 01:00:00 02:00:00",
			expected: Delta{Days: 3, Hours: 3},
		},
		{
			name:     "fraction with trailing zeros implied",
			input:    "00:00:00.5",
			expected: Delta{Microseconds: 500000},
		},
		{
			name:     "no recognizable units",
			input:    "whatever",
			expected: Delta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePostgres(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPostgresString(t *testing.T) {
	tests := []struct {
		name     string
		input    Delta
		expected string
	}{
		{
			name:     "zero",
			expected: "0",
		},
		{
			name:     "all components",
			input:    Delta{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6, Microseconds: 7},
			expected: "1 YEARS 2 MONS 3 DAYS 4 HOURS 5 MINS 6 SECS 7 MICROSECONDS",
		},
		{
			name:     "sparse components",
			input:    Delta{Months: 14, Seconds: 30},
			expected: "14 MONS 30 SECS",
		},
		{
			name:     "negative components",
			input:    Delta{Days: -1, Hours: 2},
			expected: "-1 DAYS 2 HOURS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.PostgresString())
		})
	}
}

func TestPostgresStringRoundTrips(t *testing.T) {
	for _, d := range []Delta{
		{},
		{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6, Microseconds: 7},
		{Months: 14, Seconds: 30},
		{Hours: 36},
	} {
		got, err := ParsePostgres(d.PostgresString())
		require.NoError(t, err)
		assert.Equal(t, d, got, "literal %q", d.PostgresString())
	}
}

func TestScanInterval(t *testing.T) {
	var d Delta
	err := d.ScanInterval(pgtype.Interval{
		Months:       14,
		Days:         3,
		Microseconds: 26*MicrosPerHour + 90*MicrosPerSecond + 5,
		Valid:        true,
	})
	require.NoError(t, err)
	// months unfold to years+months, microseconds to clock components;
	// hours may exceed 24 because days are carried separately on the wire.
	assert.Equal(t, Delta{Years: 1, Months: 2, Days: 3, Hours: 26, Minutes: 1, Seconds: 30, Microseconds: 5}, d)

	require.ErrorIs(t, d.ScanInterval(pgtype.Interval{}), pderrors.ErrNull)
}

func TestDeltaIntervalValue(t *testing.T) {
	d := Delta{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6, Microseconds: 7}
	v, err := d.IntervalValue()
	require.NoError(t, err)
	assert.Equal(t, pgtype.Interval{
		Months:       14,
		Days:         3,
		Microseconds: 4*MicrosPerHour + 5*MicrosPerMinute + 6*MicrosPerSecond + 7,
		Valid:        true,
	}, v)

	_, err = Delta{Years: 200_000_000}.IntervalValue()
	require.ErrorIs(t, err, pderrors.ErrOverflow)
}

func TestWireRoundTrip(t *testing.T) {
	orig := Delta{Years: 2, Months: 3, Days: 10, Hours: 7, Minutes: 30, Seconds: 59, Microseconds: 999999}
	v, err := orig.IntervalValue()
	require.NoError(t, err)

	var back Delta
	require.NoError(t, back.ScanInterval(v))
	assert.Equal(t, orig, back)
}
