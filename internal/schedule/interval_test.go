package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func iv(t *testing.T, resourceID, date, start, end string) Interval {
	t.Helper()
	d, err := ParseDateStamp(date)
	require.NoError(t, err)
	return Interval{
		ResourceID: resourceID,
		Date:       d,
		Start:      mustTime(t, start),
		End:        mustTime(t, end),
	}
}

func TestFindConflicts(t *testing.T) {
	tests := []struct {
		name      string
		candidate Interval
		existing  []Interval
		want      int
	}{
		{
			name:      "no overlap, earlier booking",
			candidate: iv(t, "r1", "2024-09-24", "13:00", "15:00"),
			existing:  []Interval{iv(t, "r1", "2024-09-24", "08:00", "09:00")},
			want:      0,
		},
		{
			name:      "back-to-back is not a conflict",
			candidate: iv(t, "r1", "2024-09-24", "10:00", "11:00"),
			existing:  []Interval{iv(t, "r1", "2024-09-24", "09:00", "10:00")},
			want:      0,
		},
		{
			name:      "partial overlap",
			candidate: iv(t, "r1", "2024-09-24", "09:30", "10:30"),
			existing:  []Interval{iv(t, "r1", "2024-09-24", "10:00", "11:00")},
			want:      1,
		},
		{
			name:      "candidate contains existing",
			candidate: iv(t, "r1", "2024-09-24", "09:00", "12:00"),
			existing:  []Interval{iv(t, "r1", "2024-09-24", "10:00", "11:00")},
			want:      1,
		},
		{
			name:      "existing contains candidate",
			candidate: iv(t, "r1", "2024-09-24", "10:00", "11:00"),
			existing:  []Interval{iv(t, "r1", "2024-09-24", "09:00", "12:00")},
			want:      1,
		},
		{
			name:      "different resource never conflicts",
			candidate: iv(t, "r1", "2024-09-24", "09:00", "12:00"),
			existing:  []Interval{iv(t, "r2", "2024-09-24", "09:00", "12:00")},
			want:      0,
		},
		{
			name:      "different date never conflicts",
			candidate: iv(t, "r1", "2024-09-24", "09:00", "12:00"),
			existing:  []Interval{iv(t, "r1", "2024-09-25", "09:00", "12:00")},
			want:      0,
		},
		{
			name:      "degenerate candidate at an existing boundary",
			candidate: iv(t, "r1", "2024-09-24", "10:00", "10:00"),
			existing:  []Interval{iv(t, "r1", "2024-09-24", "10:00", "11:00")},
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflicts(tt.candidate, tt.existing)
			require.Len(t, got, tt.want)
		})
	}
}

func TestFindConflictsSymmetry(t *testing.T) {
	pairs := [][2]Interval{
		{iv(t, "r1", "2025-03-01", "09:00", "10:00"), iv(t, "r1", "2025-03-01", "09:30", "11:00")},
		{iv(t, "r1", "2025-03-01", "09:00", "10:00"), iv(t, "r1", "2025-03-01", "10:00", "11:00")},
		{iv(t, "r1", "2025-03-01", "08:00", "18:00"), iv(t, "r1", "2025-03-01", "12:00", "13:00")},
		{iv(t, "r1", "2025-03-01", "09:00", "10:00"), iv(t, "r2", "2025-03-01", "09:00", "10:00")},
	}

	for _, p := range pairs {
		ab := len(FindConflicts(p[0], []Interval{p[1]})) > 0
		ba := len(FindConflicts(p[1], []Interval{p[0]})) > 0
		require.Equal(t, ab, ba, "overlap must be symmetric for %v and %v", p[0], p[1])
	}
}

func TestFindConflictsKeepsInputOrder(t *testing.T) {
	candidate := iv(t, "r1", "2025-03-01", "09:00", "17:00")
	existing := []Interval{
		iv(t, "r1", "2025-03-01", "16:00", "18:00"),
		iv(t, "r1", "2025-03-01", "07:00", "08:00"), // clear
		iv(t, "r1", "2025-03-01", "10:00", "11:00"),
		iv(t, "r1", "2025-03-01", "12:00", "13:00"),
	}

	got := FindConflicts(candidate, existing)
	require.Len(t, got, 3)
	require.Equal(t, existing[0], got[0])
	require.Equal(t, existing[2], got[1])
	require.Equal(t, existing[3], got[2])
}
