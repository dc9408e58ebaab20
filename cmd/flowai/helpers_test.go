package main

import (
	"testing"
	"time"

	"flowai/internal/habit"
	"flowai/internal/task"
)

func TestParseItemRef(t *testing.T) {
	tests := []struct {
		input string
		kind  byte
		idx   int
		ok    bool
	}{
		{"h1", 'h', 1, true},
		{"t12", 't', 12, true},
		{" H3 ", 'h', 3, true},
		{"x1", 0, 0, false},
		{"h", 0, 0, false},
		{"h0", 0, 0, false},
		{"habc", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		kind, idx, ok := parseItemRef(tt.input)
		if kind != tt.kind || idx != tt.idx || ok != tt.ok {
			t.Errorf("parseItemRef(%q) = (%c, %d, %v), want (%c, %d, %v)",
				tt.input, kind, idx, ok, tt.kind, tt.idx, tt.ok)
		}
	}
}

func newTestState() *appState {
	habits := habit.NewTracker()
	tasks := task.NewList()
	cursor := task.NewDayCursor(func() time.Time {
		return time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	})
	return &appState{habits: habits, tasks: tasks, cursor: cursor}
}

func TestToggleItem_Habit(t *testing.T) {
	st := newTestState()
	st.habits.Add("Workout", habit.CategoryHealth)

	st.toggleItem("h1")
	if !st.habits.Habits()[0].Completed {
		t.Fatal("habit should be completed after toggle")
	}
	st.toggleItem("h1")
	if st.habits.Habits()[0].Completed {
		t.Fatal("habit should be open after second toggle")
	}
}

func TestToggleItem_TaskUsesViewedDay(t *testing.T) {
	st := newTestState()
	today := st.cursor.Day()
	st.tasks.AddTask("call mom", today, "3pm", true)
	st.tasks.AddTask("tomorrow thing", today.AddDate(0, 0, 1), "", false)

	// t1 必须解析到查看日的任务 / t1 must resolve within the viewed day
	st.toggleItem("t1")
	for _, item := range st.tasks.Tasks() {
		if item.Title == "call mom" && !item.Completed {
			t.Fatal("viewed-day task should be toggled")
		}
		if item.Title == "tomorrow thing" && item.Completed {
			t.Fatal("off-day task must not be toggled")
		}
	}
}

func TestRemoveItem(t *testing.T) {
	st := newTestState()
	st.habits.Add("Workout", habit.CategoryHealth)
	st.habits.Add("Journal", habit.CategoryEvening)

	st.removeItem("h1")
	habits := st.habits.Habits()
	if len(habits) != 1 || habits[0].Title != "Journal" {
		t.Fatalf("expected only Journal to remain, got %+v", habits)
	}

	// 越界编号不动任何条目 / Out-of-range numbers touch nothing
	st.removeItem("h9")
	if st.habits.TotalHabits() != 1 {
		t.Fatal("out-of-range remove must not delete")
	}
}

func TestSeedData(t *testing.T) {
	st := newTestState()
	seedHabits(st.habits)
	if st.habits.TotalHabits() != 3 {
		t.Fatalf("seed habits = %d, want 3", st.habits.TotalHabits())
	}

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	seedTasks(st.tasks, now)
	today := st.tasks.ForDay(now)
	if len(today) != 3 {
		t.Fatalf("seed tasks for today = %d, want 3", len(today))
	}
	tomorrow := st.tasks.ForDay(now.AddDate(0, 0, 1))
	if len(tomorrow) != 1 || tomorrow[0].Title != "Team meeting" {
		t.Fatalf("seed tasks for tomorrow = %+v", tomorrow)
	}
}
