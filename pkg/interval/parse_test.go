package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Delta
		wantErr  error
	}{
		{
			name:     "plain clock",
			input:    "12:30:05",
			expected: Delta{Hours: 12, Minutes: 30, Seconds: 5},
		},
		{
			name:     "single digit hours",
			input:    "5:06:07",
			expected: Delta{Hours: 5, Minutes: 6, Seconds: 7},
		},
		{
			name:     "hours beyond a day",
			input:    "36:00:00",
			expected: Delta{Hours: 36},
		},
		{
			name:     "days prefix",
			input:    "3 days, 01:02:03",
			expected: Delta{Days: 3, Hours: 1, Minutes: 2, Seconds: 3},
		},
		{
			name:     "single day prefix",
			input:    "1 day, 00:00:30",
			expected: Delta{Days: 1, Seconds: 30},
		},
		{
			name:     "fraction half second",
			input:    "00:00:00.5",
			expected: Delta{Microseconds: 500000},
		},
		{
			name:     "fraction full precision",
			input:    "2 days, 04:05:06.000001",
			expected: Delta{Days: 2, Hours: 4, Minutes: 5, Seconds: 6, Microseconds: 1},
		},
		{
			name:     "surrounding whitespace",
			input:    "  10 days,  00:00:01 ",
			expected: Delta{Days: 10, Seconds: 1},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: pderrors.ErrFormat,
		},
		{
			name:    "no colons",
			input:   "5 days",
			wantErr: pderrors.ErrFormat,
		},
		{
			name:    "two clock fields",
			input:   "12:30",
			wantErr: pderrors.ErrFormat,
		},
		{
			name:    "four clock fields",
			input:   "1:2:3:4",
			wantErr: pderrors.ErrFormat,
		},
		{
			name:    "negative days",
			input:   "-1 days, 00:00:00",
			wantErr: pderrors.ErrRange,
		},
		{
			name:    "signed clock",
			input:   "-01:00:00",
			wantErr: pderrors.ErrFormat,
		},
		{
			name:    "negative zero hours",
			input:   "-00:00:01",
			wantErr: pderrors.ErrFormat,
		},
		{
			name:    "minutes above 59",
			input:   "00:60:00",
			wantErr: pderrors.ErrRange,
		},
		{
			name:    "seconds above 59",
			input:   "00:00:60",
			wantErr: pderrors.ErrRange,
		},
		{
			name:    "days not an integer",
			input:   "x days, 00:00:00",
			wantErr: pderrors.ErrRange,
		},
		{
			name:    "hours not an integer",
			input:   "aa:00:00",
			wantErr: pderrors.ErrRange,
		},
		{
			name:    "sub-microsecond fraction",
			input:   "00:00:00.0000005",
			wantErr: pderrors.ErrFormat,
		},
		{
			name:    "empty fraction",
			input:   "00:00:00.",
			wantErr: pderrors.ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRoundTripsString(t *testing.T) {
	for _, s := range []string{
		"00:00:00",
		"01:02:03",
		"3 days, 01:02:03",
		"1 day, 00:00:00.250000",
	} {
		d, err := Parse(s)
		require.NoError(t, err)
		got, err := Parse(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got, "input %q", s)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nonsense") })
	assert.Equal(t, Delta{Hours: 1}, MustParse("01:00:00"))
}
