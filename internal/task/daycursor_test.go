package task

import (
	"testing"
	"time"
)

func TestDayCursorNavigation(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)
	cursor := NewDayCursor(func() time.Time { return fixed })

	if !cursor.IsToday() {
		t.Fatal("fresh cursor should be on today")
	}
	if got := cursor.Day(); got.Hour() != 0 || got.Day() != 30 {
		t.Fatalf("Day() = %v, want midnight of Aug 30", got)
	}

	prev := cursor.Prev()
	if prev.Day() != 29 {
		t.Fatalf("Prev() = %v, want Aug 29", prev)
	}
	if cursor.IsToday() {
		t.Fatal("cursor on yesterday should not be today")
	}

	cursor.Next()
	cursor.Next()
	if got := cursor.Day(); got.Day() != 31 {
		t.Fatalf("two Next() from Aug 29 = %v, want Aug 31", got)
	}

	back := cursor.Today()
	if !SameDay(back, fixed) {
		t.Fatalf("Today() = %v, want same day as %v", back, fixed)
	}
}

func TestDayCursorMonthBoundary(t *testing.T) {
	fixed := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	cursor := NewDayCursor(func() time.Time { return fixed })

	prev := cursor.Prev()
	if prev.Month() != time.August || prev.Day() != 31 {
		t.Fatalf("Prev() across month = %v, want Aug 31", prev)
	}
}
