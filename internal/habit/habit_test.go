package habit

import "testing"

func TestTrackerAddToggleDelete(t *testing.T) {
	tr := NewTracker()

	h, ok := tr.Add("Meditation", CategoryMorning)
	if !ok {
		t.Fatal("Add should accept a non-empty title")
	}
	if h.ID == "" {
		t.Fatal("Add should assign an id")
	}
	if h.Completed {
		t.Fatal("new habits start incomplete")
	}

	if _, ok := tr.Add("   ", CategoryHealth); ok {
		t.Fatal("Add should reject a blank title")
	}

	if !tr.Toggle(h.ID) {
		t.Fatal("Toggle should find the habit")
	}
	if tr.CompletedCount() != 1 {
		t.Fatalf("CompletedCount=%d, want 1", tr.CompletedCount())
	}
	if tr.Toggle("missing") {
		t.Fatal("Toggle on a missing id should report false")
	}

	if !tr.Delete(h.ID) {
		t.Fatal("Delete should find the habit")
	}
	if tr.TotalHabits() != 0 {
		t.Fatalf("TotalHabits=%d after delete, want 0", tr.TotalHabits())
	}
}

func TestTrackerRename(t *testing.T) {
	tr := NewTracker()
	h, _ := tr.Add("Read", CategoryPersonal)

	if tr.Rename(h.ID, "  ") {
		t.Fatal("Rename should reject a blank title")
	}
	if !tr.Rename(h.ID, "Read 20 Pages") {
		t.Fatal("Rename should succeed with a new title")
	}
	if got := tr.Habits()[0].Title; got != "Read 20 Pages" {
		t.Fatalf("Title=%q after rename", got)
	}
}

func TestTrackerProgress(t *testing.T) {
	tr := NewTracker()
	if tr.ProgressPercent() != 0 {
		t.Fatalf("empty tracker ProgressPercent=%d, want 0", tr.ProgressPercent())
	}

	a, _ := tr.Add("A", CategoryPersonal)
	tr.Add("B", CategoryPersonal)
	tr.Add("C", CategoryPersonal)
	tr.Toggle(a.ID)

	if got := tr.ProgressPercent(); got != 33 {
		t.Fatalf("ProgressPercent=%d, want 33", got)
	}

	tr.ResetDay()
	if tr.CompletedCount() != 0 {
		t.Fatalf("CompletedCount=%d after ResetDay, want 0", tr.CompletedCount())
	}
}

func TestTrackerOrderPreserved(t *testing.T) {
	tr := NewTracker()
	for _, title := range []string{"first", "second", "third"} {
		tr.Add(title, CategoryPersonal)
	}
	habits := tr.Habits()
	if habits[0].Title != "first" || habits[2].Title != "third" {
		t.Fatalf("habits out of creation order: %v", habits)
	}
}

func TestAddHabitSink(t *testing.T) {
	tr := NewTracker()
	id := tr.AddHabit("Stretch")
	if id == "" {
		t.Fatal("AddHabit should return the new id")
	}
	if tr.AddHabit("  ") != "" {
		t.Fatal("AddHabit should return empty id for blank titles")
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("HEALTH"); got != CategoryHealth {
		t.Fatalf("NormalizeCategory(HEALTH)=%s", got)
	}
	if got := NormalizeCategory("whatever"); got != CategoryPersonal {
		t.Fatalf("NormalizeCategory(whatever)=%s, want personal", got)
	}
}

func TestSuggestionsCopy(t *testing.T) {
	s := Suggestions()
	if len(s) == 0 {
		t.Fatal("Suggestions should not be empty")
	}
	s[0].Title = "mutated"
	if Suggestions()[0].Title == "mutated" {
		t.Fatal("Suggestions must return a copy")
	}
}
