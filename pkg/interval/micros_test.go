package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgdelta/pgdelta/internal/pderrors"
)

func TestMicros(t *testing.T) {
	tests := []struct {
		name     string
		input    Delta
		expected int64
		wantErr  error
	}{
		{
			name:     "zero",
			expected: 0,
		},
		{
			name:     "one day",
			input:    Delta{Days: 1},
			expected: MicrosPerDay,
		},
		{
			name:     "all clock components",
			input:    Delta{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Microseconds: 5},
			expected: MicrosPerDay + 2*MicrosPerHour + 3*MicrosPerMinute + 4*MicrosPerSecond + 5,
		},
		{
			name:     "negative",
			input:    Delta{Days: -2, Hours: -1},
			expected: -2*MicrosPerDay - MicrosPerHour,
		},
		{
			name:    "months rejected",
			input:   Delta{Months: 1},
			wantErr: pderrors.ErrCalendarUnits,
		},
		{
			name:    "years rejected",
			input:   Delta{Years: 1},
			wantErr: pderrors.ErrCalendarUnits,
		},
		{
			name:    "day overflow",
			input:   Delta{Days: math.MaxInt32, Hours: math.MaxInt32},
			wantErr: pderrors.ErrOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Micros()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFromMicros(t *testing.T) {
	d := FromMicros(MicrosPerDay + 2*MicrosPerHour + 3*MicrosPerMinute + 4*MicrosPerSecond + 5)
	assert.Equal(t, Delta{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Microseconds: 5}, d)

	assert.Equal(t, Delta{}, FromMicros(0))
	assert.Equal(t, Delta{Seconds: -1, Microseconds: -500000}, FromMicros(-1_500_000))
}

func TestMicrosRoundTrips(t *testing.T) {
	for _, micros := range []int64{0, 1, -1, MicrosPerDay, 123_456_789_012} {
		d := FromMicros(micros)
		got, err := d.Micros()
		require.NoError(t, err)
		assert.Equal(t, micros, got)
	}
}
