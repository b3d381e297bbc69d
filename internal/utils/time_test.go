package util_test

import (
	"testing"
	"time"

	util "github.com/rafaelpontes/focushub/internal/utils"
)

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 3, 12, 15, 42, 7, 0, time.UTC)
	start, end := util.DayBounds(at)

	if !start.Equal(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("wrong day start: %v", start)
	}
	if !end.Equal(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("wrong day end: %v", end)
	}
}

func TestWeekBounds(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want time.Time
	}{
		{"Wednesday", time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"Monday", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"Sunday", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := util.WeekBounds(tc.at)
			if !start.Equal(tc.want) {
				t.Errorf("wrong week start: %v", start)
			}
			if !end.Equal(tc.want.AddDate(0, 0, 7)) {
				t.Errorf("wrong week end: %v", end)
			}
		})
	}
}

func TestWholeMinutes(t *testing.T) {
	start := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

	if got := util.WholeMinutes(start, start.Add(90*time.Minute)); got != 90 {
		t.Errorf("expected 90 minutes, got %d", got)
	}
	if got := util.WholeMinutes(start, start.Add(59*time.Second)); got != 0 {
		t.Errorf("sub-minute interval should truncate to 0, got %d", got)
	}
	if got := util.WholeMinutes(start, start.Add(-time.Hour)); got != 0 {
		t.Errorf("negative interval should clamp to 0, got %d", got)
	}
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	h := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	if !util.Overlaps(h(0), h(2), h(1), h(3)) {
		t.Error("partially overlapping intervals should overlap")
	}
	if util.Overlaps(h(0), h(1), h(1), h(2)) {
		t.Error("touching half-open intervals should not overlap")
	}
	if !util.Overlaps(h(0), h(10), h(2), h(3)) {
		t.Error("contained interval should overlap")
	}
}
