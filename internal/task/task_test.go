package task

import (
	"testing"
	"time"
)

func TestListAddToggleDelete(t *testing.T) {
	l := NewList()
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	tk, ok := l.Add("Doctor appointment", today, "10:00 AM", true, CategoryHealth, PriorityHigh)
	if !ok {
		t.Fatal("Add should accept a non-empty title")
	}
	if tk.Completed {
		t.Fatal("new tasks start incomplete")
	}

	if _, ok := l.Add("", today, "", false, "", ""); ok {
		t.Fatal("Add should reject a blank title")
	}

	if !l.Toggle(tk.ID) {
		t.Fatal("Toggle should find the task")
	}
	if got := l.CompletionRate(); got != 100 {
		t.Fatalf("CompletionRate=%d, want 100", got)
	}

	if !l.Delete(tk.ID) {
		t.Fatal("Delete should find the task")
	}
	if l.Total() != 0 {
		t.Fatalf("Total=%d after delete, want 0", l.Total())
	}
}

func TestForDay(t *testing.T) {
	l := NewList()
	morning := time.Date(2026, 8, 30, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 8, 30, 21, 30, 0, 0, time.Local)
	tomorrow := morning.AddDate(0, 0, 1)

	l.Add("today A", morning, "", false, "", "")
	l.Add("today B", evening, "", false, "", "")
	l.Add("tomorrow", tomorrow, "", false, "", "")

	got := l.ForDay(time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local))
	if len(got) != 2 {
		t.Fatalf("ForDay returned %d tasks, want 2", len(got))
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	b := time.Date(2026, 8, 30, 0, 1, 0, 0, time.Local)
	c := time.Date(2026, 8, 31, 0, 1, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Fatal("same calendar day should match regardless of clock time")
	}
	if SameDay(a, c) {
		t.Fatal("different days must not match")
	}
}

func TestAddTaskSink(t *testing.T) {
	l := NewList()
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	id := l.AddTask("call mom", day, "3pm", true)
	if id == "" {
		t.Fatal("AddTask should return the new id")
	}
	tk := l.Tasks()[0]
	if tk.Category != "" || tk.Priority != "" {
		t.Fatalf("chat-created tasks carry no category/priority, got %q/%q", tk.Category, tk.Priority)
	}
	if !tk.Reminder {
		t.Fatal("Reminder flag should be preserved")
	}

	if l.AddTask("  ", day, "", false) != "" {
		t.Fatal("AddTask should return empty id for blank titles")
	}
}
