package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want Week
	}{
		{
			name: "midweek",
			// Wednesday of ISO week 10, 2025.
			now:  time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC),
			want: Week{Year: 2025, Week: 9},
		},
		{
			name: "year boundary",
			// 2026-01-02 minus 7 days lands in the last week of 2025.
			now:  time.Date(2026, time.January, 2, 9, 30, 0, 0, time.UTC),
			want: Week{Year: 2025, Week: 52},
		},
		{
			name: "53-week year",
			// 2026 has 53 ISO weeks; 2026-12-28 is the Monday of week 53.
			now:  time.Date(2027, time.January, 4, 0, 0, 0, 0, time.UTC),
			want: Week{Year: 2026, Week: 53},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PreviousWeek(tc.now))
		})
	}
}

func TestWeekString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2025-W09", Week{Year: 2025, Week: 9}.String())
	assert.Equal(t, "2026-W53", Week{Year: 2026, Week: 53}.String())
}

func TestPaperFailed(t *testing.T) {
	t.Parallel()

	assert.False(t, Paper{Title: "ok"}.Failed())
	assert.True(t, Paper{Err: "entry processing failed"}.Failed())
}
