package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{in: "00:00", want: TimeOfDay{}},
		{in: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{in: "14:00:00", want: TimeOfDay{Hour: 14}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "nonsense", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestTimeOfDayOrdering(t *testing.T) {
	early := TimeOfDay{Hour: 9, Minute: 0}
	late := TimeOfDay{Hour: 9, Minute: 1}

	require.True(t, early.Before(late))
	require.False(t, late.Before(early))
	require.False(t, early.Before(early))
	require.Equal(t, 540, early.Minutes())
	require.Equal(t, "09:00", early.String())
}

func TestDateStampRoundTrip(t *testing.T) {
	d, err := ParseDateStamp("2025-02-28")
	require.NoError(t, err)
	require.Equal(t, DateStamp{Year: 2025, Month: time.February, Day: 28}, d)
	require.Equal(t, "2025-02-28", d.String())
	require.Equal(t, d, DateOf(d.Time()))

	_, err = ParseDateStamp("2025-02-30")
	require.Error(t, err)
}

func TestDateStampCompare(t *testing.T) {
	a := DateStamp{Year: 2024, Month: time.December, Day: 31}
	b := DateStamp{Year: 2025, Month: time.January, Day: 1}

	require.True(t, a.Before(b))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}
