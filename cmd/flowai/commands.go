package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"flowai/internal/habit"
	"flowai/internal/i18n"
	"flowai/internal/storage"
)

type replCommand struct {
	usage   string
	helpKey string
}

var replCommands = []replCommand{
	{"/help", "cmd.help"},
	{"/habits", "cmd.habits"},
	{"/tasks", "cmd.tasks"},
	{"/add-habit <title>", "cmd.add_habit"},
	{"/add-task <title>", "cmd.add_task"},
	{"/done <h|t><n>", "cmd.done"},
	{"/remove <h|t><n>", "cmd.remove"},
	{"/today", "cmd.today"},
	{"/prev", "cmd.prev"},
	{"/next", "cmd.next"},
	{"/suggest", "cmd.suggest"},
	{"/insight", "cmd.insight"},
	{"/new", "cmd.new"},
	{"/sessions", "cmd.sessions"},
	{"/resume <id>", "cmd.resume"},
	{"/lang <en|zh-CN>", "cmd.lang"},
	{"/quit", "cmd.quit"},
}

// handleCommand 处理斜杠命令；返回 (是否已处理, 是否退出)
// handleCommand dispatches a slash command; returns (handled, shouldExit)
func handleCommand(input string, st *appState) (bool, bool) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return false, false
	}
	cmd := parts[0]
	rest := strings.TrimSpace(strings.TrimPrefix(input, cmd))

	switch cmd {
	case "/exit", "/quit":
		return true, true
	case "/help":
		printREPLCommands(os.Stdout)
		return true, false
	case "/habits":
		st.printHabits()
		return true, false
	case "/tasks":
		st.printTasks()
		return true, false
	case "/add-habit":
		if rest == "" {
			fmt.Println("usage: /add-habit <title>")
			return true, false
		}
		if _, ok := st.habits.Add(rest, habit.CategoryPersonal); ok {
			fmt.Printf("Added habit: %s\n", rest)
		}
		return true, false
	case "/add-task":
		if rest == "" {
			fmt.Println("usage: /add-task <title>")
			return true, false
		}
		st.tasks.AddTask(rest, st.cursor.Day(), "", false)
		fmt.Printf("Added task: %s\n", rest)
		return true, false
	case "/done":
		st.toggleItem(rest)
		return true, false
	case "/remove":
		st.removeItem(rest)
		return true, false
	case "/today":
		day := st.cursor.Today()
		fmt.Println(i18n.T("repl.viewing", day.Format("Mon, Jan 2")))
		st.printTasks()
		return true, false
	case "/prev":
		day := st.cursor.Prev()
		fmt.Println(i18n.T("repl.viewing", day.Format("Mon, Jan 2")))
		st.printTasks()
		return true, false
	case "/next":
		day := st.cursor.Next()
		fmt.Println(i18n.T("repl.viewing", day.Format("Mon, Jan 2")))
		st.printTasks()
		return true, false
	case "/suggest":
		for _, s := range habit.Suggestions() {
			fmt.Printf("  %s (%s)\n", s.Title, s.Category)
		}
		return true, false
	case "/insight":
		fmt.Println(st.coach.Insight())
		return true, false
	case "/new":
		st.saveCurrent()
		meta := storage.ConversationMeta{ID: storage.NewConversationID()}
		if err := st.store.CreateConversation(meta); err != nil {
			fmt.Println(i18n.T("error.storage", err.Error()))
			return true, false
		}
		st.setMeta(meta)
		st.engine.Log().Restore(nil)
		st.resetPrinted()
		fmt.Println(i18n.T("repl.new_session"))
		return true, false
	case "/sessions":
		metas, err := st.store.ListConversations()
		if err != nil {
			fmt.Println(i18n.T("error.storage", err.Error()))
			return true, false
		}
		fmt.Println(i18n.T("repl.sessions"))
		for _, meta := range metas {
			fmt.Printf("  %s  updated=%s  title=%s\n", meta.ID, meta.UpdatedAt, meta.Title)
		}
		return true, false
	case "/resume":
		if rest == "" {
			fmt.Println("usage: /resume <id>")
			return true, false
		}
		meta, err := st.store.LoadConversation(rest)
		if err != nil {
			fmt.Println(i18n.T("error.storage", err.Error()))
			return true, false
		}
		messages, err := st.store.LoadMessages(meta.ID)
		if err != nil {
			fmt.Println(i18n.T("error.storage", err.Error()))
			return true, false
		}
		st.saveCurrent()
		st.setMeta(meta)
		st.engine.Log().Restore(messages)
		st.resetPrinted()
		st.printNewMessages()
		fmt.Println(i18n.T("repl.resumed", meta.ID))
		return true, false
	case "/lang":
		if rest == "" {
			fmt.Println("usage: /lang <en|zh-CN>")
			return true, false
		}
		i18n.Init(rest)
		fmt.Println(i18n.T("repl.lang_changed", i18n.Global().Locale()))
		return true, false
	default:
		return false, false
	}
}

func (st *appState) printHabits() {
	habits := st.habits.Habits()
	if len(habits) == 0 {
		fmt.Println(i18n.T("repl.no_habits"))
		return
	}
	for i, h := range habits {
		mark := "○"
		if h.Completed {
			mark = "●"
		}
		fmt.Printf("  %s h%d. %s (%s)\n", mark, i+1, h.Title, h.Category)
	}
	fmt.Println(i18n.T("status.habits", st.habits.CompletedCount(), st.habits.TotalHabits()))
}

func (st *appState) printTasks() {
	day := st.cursor.Day()
	tasks := st.tasks.ForDay(day)
	if len(tasks) == 0 {
		fmt.Println(i18n.T("repl.no_tasks"))
		return
	}
	for i, t := range tasks {
		mark := "○"
		if t.Completed {
			mark = "●"
		}
		line := fmt.Sprintf("  %s t%d. %s", mark, i+1, t.Title)
		if t.Time != "" {
			line += " @ " + t.Time
		}
		if t.Reminder {
			line += " 🔔"
		}
		fmt.Println(line)
	}
}

// toggleItem 按 h2/t1 这样的引用切换条目
// toggleItem toggles an item by a reference like h2 or t1
func (st *appState) toggleItem(ref string) {
	kind, idx, ok := parseItemRef(ref)
	if !ok {
		fmt.Println("usage: /done <h|t><n>  e.g. /done h1")
		return
	}
	switch kind {
	case 'h':
		habits := st.habits.Habits()
		if idx < 1 || idx > len(habits) {
			fmt.Println(i18n.T("repl.bad_index", idx))
			return
		}
		h := habits[idx-1]
		st.habits.Toggle(h.ID)
		fmt.Println(i18n.T("repl.habit_done", h.Title))
	case 't':
		tasks := st.tasks.ForDay(st.cursor.Day())
		if idx < 1 || idx > len(tasks) {
			fmt.Println(i18n.T("repl.bad_index", idx))
			return
		}
		t := tasks[idx-1]
		st.tasks.Toggle(t.ID)
		fmt.Println(i18n.T("repl.task_done", t.Title))
	}
}

func (st *appState) removeItem(ref string) {
	kind, idx, ok := parseItemRef(ref)
	if !ok {
		fmt.Println("usage: /remove <h|t><n>  e.g. /remove t2")
		return
	}
	switch kind {
	case 'h':
		habits := st.habits.Habits()
		if idx < 1 || idx > len(habits) {
			fmt.Println(i18n.T("repl.bad_index", idx))
			return
		}
		h := habits[idx-1]
		st.habits.Delete(h.ID)
		fmt.Println(i18n.T("repl.removed", h.Title))
	case 't':
		tasks := st.tasks.ForDay(st.cursor.Day())
		if idx < 1 || idx > len(tasks) {
			fmt.Println(i18n.T("repl.bad_index", idx))
			return
		}
		t := tasks[idx-1]
		st.tasks.Delete(t.ID)
		fmt.Println(i18n.T("repl.removed", t.Title))
	}
}

// parseItemRef 解析 h3 / t1 形式的条目引用
// parseItemRef parses item references of the form h3 or t1
func parseItemRef(ref string) (byte, int, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if len(ref) < 2 {
		return 0, 0, false
	}
	kind := ref[0]
	if kind != 'h' && kind != 't' {
		return 0, 0, false
	}
	idx, err := strconv.Atoi(ref[1:])
	if err != nil || idx < 1 {
		return 0, 0, false
	}
	return kind, idx, true
}
