package quadrant

import (
	"testing"
	"time"
)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantStart string
		wantEnd   string
	}{
		{"christmas spans the year boundary", "christmas", "2025-12-22", "2026-01-07"},
		{"summer", "summer", "2025-06-15", "2025-09-15"},
		{"year", "year", "2025-01-01", "2025-12-31"},
		{"unknown key falls back to full year", "q3-sprint", "2025-01-01", "2025-12-31"},
		{"empty key falls back to full year", "", "2025-01-01", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ResolvePeriod(tt.key, 2025)
			if got := window.Start.Format(ISODate); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := window.End.Format(ISODate); got != tt.wantEnd {
				t.Errorf("end = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}

func TestDaysSequence(t *testing.T) {
	window := ResolvePeriod("christmas", 2025)
	days := window.Days()

	wantLen := int(window.End.Sub(window.Start).Hours()/24) + 1
	if len(days) != wantLen {
		t.Fatalf("got %d days, want %d", len(days), wantLen)
	}
	if !days[0].Equal(window.Start) {
		t.Errorf("first day = %v, want %v", days[0], window.Start)
	}
	if !days[len(days)-1].Equal(window.End) {
		t.Errorf("last day = %v, want %v", days[len(days)-1], window.End)
	}

	seen := make(map[string]bool, len(days))
	for i, day := range days {
		key := day.Format(ISODate)
		if seen[key] {
			t.Errorf("duplicate day %s", key)
		}
		seen[key] = true
		if i > 0 && !day.Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Errorf("day %d (%s) does not follow %s", i, key, days[i-1].Format(ISODate))
		}
	}
}

func TestDaysSingleDayWindow(t *testing.T) {
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	window := DateWindow{Start: day, End: day}
	days := window.Days()
	if len(days) != 1 || !days[0].Equal(day) {
		t.Fatalf("got %v, want exactly [%v]", days, day)
	}
}

func TestContains(t *testing.T) {
	window := ResolvePeriod("summer", 2025)

	if !window.Contains(window.Start) {
		t.Error("start day should be inside the window")
	}
	if !window.Contains(window.End) {
		t.Error("end day should be inside the window")
	}
	if window.Contains(window.Start.AddDate(0, 0, -1)) {
		t.Error("day before start should be outside")
	}
	if window.Contains(window.End.AddDate(0, 0, 1)) {
		t.Error("day after end should be outside")
	}
	// A timestamp inside the end day still counts.
	if !window.Contains(window.End.Add(14 * time.Hour)) {
		t.Error("timestamp within the end day should be inside")
	}
}

func TestIsWeekend(t *testing.T) {
	// 2025-06-14 is a Saturday.
	saturday := time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)
	sunday := saturday.AddDate(0, 0, 1)
	monday := saturday.AddDate(0, 0, 2)

	if !IsWeekend(saturday) || !IsWeekend(sunday) {
		t.Error("Saturday and Sunday should be weekends")
	}
	if IsWeekend(monday) {
		t.Error("Monday should not be a weekend")
	}
}

func TestDayOf(t *testing.T) {
	stamp := time.Date(2025, time.July, 8, 17, 45, 12, 999, time.FixedZone("X", 3600))
	day := DayOf(stamp)
	if day.Format(ISODate) != "2025-07-08" {
		t.Errorf("got %s, want 2025-07-08", day.Format(ISODate))
	}
	if h, m, s := day.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("time component not zeroed: %02d:%02d:%02d", h, m, s)
	}
}
