package tui

import (
	"strings"
	"testing"
	"time"

	"flowai/internal/conversation"
	"flowai/internal/habit"
	"flowai/internal/i18n"
	"flowai/internal/task"
)

func TestRenderMarkdown_Basic(t *testing.T) {
	input := "# Hello\n\nThis is **bold** text."
	result := RenderMarkdown(input, 80)
	if result == "" {
		t.Fatal("RenderMarkdown returned empty")
	}
	// Glamour 应该渲染了标题 / Glamour should have rendered the heading
	if !strings.Contains(result, "Hello") {
		t.Fatalf("result should contain 'Hello': %q", result)
	}
}

func TestRenderMarkdown_Empty(t *testing.T) {
	if RenderMarkdown("", 80) != "" {
		t.Fatal("empty input should return empty")
	}
	if RenderMarkdown("  ", 80) != "" {
		t.Fatal("whitespace input should return empty")
	}
}

func TestRenderActionCard_Task(t *testing.T) {
	theme := DarkTheme()
	locale := i18n.New("en")
	action := &conversation.PendingAction{
		Kind:     conversation.ActionTask,
		Title:    "call mom",
		Date:     time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		Time:     "3pm",
		Reminder: true,
		Status:   conversation.StatusPending,
	}

	card := RenderActionCard(action, theme, locale)
	for _, want := range []string{"call mom", "3pm", "Aug 30"} {
		if !strings.Contains(card, want) {
			t.Errorf("card should contain %q: %q", want, card)
		}
	}
	if !strings.Contains(card, locale.T("action.prompt")) {
		t.Errorf("pending card should contain the confirm prompt")
	}
}

func TestRenderActionCard_Habit(t *testing.T) {
	theme := DarkTheme()
	locale := i18n.New("en")
	action := &conversation.PendingAction{
		Kind:   conversation.ActionHabit,
		Title:  "meditation",
		Status: conversation.StatusConfirmed,
	}

	card := RenderActionCard(action, theme, locale)
	if !strings.Contains(card, "meditation") {
		t.Fatalf("card should contain title: %q", card)
	}
	if strings.Contains(card, locale.T("action.prompt")) {
		t.Fatalf("confirmed card should not prompt again: %q", card)
	}
}

func TestRenderActionCard_Nil(t *testing.T) {
	if RenderActionCard(nil, DarkTheme(), i18n.New("en")) != "" {
		t.Fatal("nil action should render empty")
	}
}

func TestRenderHabitLine(t *testing.T) {
	theme := DarkTheme()
	open := RenderHabitLine(1, habit.Habit{Title: "Drink Water"}, theme)
	if !strings.Contains(open, "○") || !strings.Contains(open, "Drink Water") {
		t.Fatalf("open habit line: %q", open)
	}
	done := RenderHabitLine(2, habit.Habit{Title: "Journal", Completed: true}, theme)
	if !strings.Contains(done, "●") {
		t.Fatalf("done habit line should use a filled marker: %q", done)
	}
}

func TestRenderTaskLine(t *testing.T) {
	theme := DarkTheme()
	line := RenderTaskLine(1, task.Task{Title: "call mom", Time: "3pm", Reminder: true}, theme)
	for _, want := range []string{"call mom", "3pm", "🔔"} {
		if !strings.Contains(line, want) {
			t.Errorf("task line should contain %q: %q", want, line)
		}
	}
}

func TestThemeByName(t *testing.T) {
	if ByName("light").Text != LightTheme().Text {
		t.Fatal("light name should select light theme")
	}
	if ByName("anything").Text != DarkTheme().Text {
		t.Fatal("unknown name should fall back to dark")
	}
}
