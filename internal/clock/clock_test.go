package clock

import (
	"testing"
	"time"
)

func TestSameDay_DifferentTimes(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 5, 0, 0, time.Local)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("expected same day for different times on one date")
	}
}

func TestSameDay_AcrossMidnight(t *testing.T) {
	a := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	b := time.Date(2025, 3, 11, 0, 1, 0, 0, time.Local)
	if SameDay(a, b) {
		t.Error("expected different days across midnight")
	}
}

func TestIsYesterday(t *testing.T) {
	now := time.Date(2025, 3, 11, 8, 0, 0, 0, time.Local)
	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"previous day", time.Date(2025, 3, 10, 22, 0, 0, 0, time.Local), true},
		{"same day", time.Date(2025, 3, 11, 1, 0, 0, 0, time.Local), false},
		{"two days ago", time.Date(2025, 3, 9, 22, 0, 0, 0, time.Local), false},
		{"tomorrow", time.Date(2025, 3, 12, 8, 0, 0, 0, time.Local), false},
	}
	for _, tt := range tests {
		if got := IsYesterday(tt.t, now); got != tt.want {
			t.Errorf("%s: IsYesterday() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsYesterday_MonthBoundary(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.Local)
	last := time.Date(2025, 3, 31, 21, 0, 0, 0, time.Local)
	if !IsYesterday(last, now) {
		t.Error("expected March 31 to be yesterday relative to April 1")
	}
}

func TestAddDays(t *testing.T) {
	base := time.Date(2025, 2, 27, 12, 0, 0, 0, time.Local)
	got := AddDays(base, 3)
	want := time.Date(2025, 3, 2, 12, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("AddDays() = %v, want %v", got, want)
	}
}

func TestStartOfDay(t *testing.T) {
	tm := time.Date(2025, 6, 15, 17, 42, 9, 123, time.Local)
	got := StartOfDay(tm)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}
