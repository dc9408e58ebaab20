package tui

import (
	"fmt"
	"strings"

	"flowai/internal/conversation"
	"flowai/internal/habit"
	"flowai/internal/i18n"
	"flowai/internal/task"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 使用 Glamour 渲染 markdown 文本
// RenderMarkdown renders markdown text using Glamour
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// RenderActionCard 渲染待确认提案卡片
// RenderActionCard renders a pending proposal card
func RenderActionCard(action *conversation.PendingAction, theme Theme, locale *i18n.I18n) string {
	if action == nil {
		return ""
	}

	var lines []string
	switch action.Kind {
	case conversation.ActionTask:
		lines = append(lines, locale.T("action.task")+": "+action.Title)
		if action.Time != "" {
			lines = append(lines, locale.T("action.time")+": "+action.Time)
		}
		if !action.Date.IsZero() {
			lines = append(lines, locale.T("action.date")+": "+action.Date.Format("Mon, Jan 2"))
		}
		if action.Reminder {
			lines = append(lines, "🔔 "+locale.T("action.reminder"))
		}
	case conversation.ActionHabit:
		lines = append(lines, locale.T("action.habit")+": "+action.Title)
	}

	if action.Status == conversation.StatusPending {
		lines = append(lines, locale.T("action.prompt"))
		return theme.PendingStyle.Render(strings.Join(lines, "\n"))
	}
	return theme.DoneStyle.Render(strings.Join(lines, "\n"))
}

// RenderHabitLine 渲染习惯列表中一行
// RenderHabitLine renders one habit list row
func RenderHabitLine(index int, h habit.Habit, theme Theme) string {
	mark := "○"
	line := fmt.Sprintf("%s %2d. %s", mark, index, h.Title)
	if h.Completed {
		mark = "●"
		line = fmt.Sprintf("%s %2d. %s", mark, index, h.Title)
		return theme.DoneStyle.Render(line)
	}
	return line
}

// RenderTaskLine 渲染任务列表中一行
// RenderTaskLine renders one task list row
func RenderTaskLine(index int, t task.Task, theme Theme) string {
	mark := "○"
	if t.Completed {
		mark = "●"
	}
	line := fmt.Sprintf("%s %2d. %s", mark, index, t.Title)
	if t.Time != "" {
		line += " @ " + t.Time
	}
	if t.Reminder {
		line += " 🔔"
	}
	if t.Completed {
		return theme.DoneStyle.Render(line)
	}
	return line
}
