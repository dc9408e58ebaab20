package i18n

// EnMessages English message catalog
var EnMessages = map[string]string{
	// UI (TUI/REPL) - Panel titles
	"panel.chat":   "Chat",
	"panel.habits": "Habits",
	"panel.tasks":  "Tasks",

	// UI (TUI sidebar)
	"sidebar.progress":    "Progress",
	"sidebar.insight":     "Insight",
	"sidebar.today":       "Today",
	"sidebar.suggestions": "Suggestions",

	// UI - Status bar
	"status.ready":    "Ready",
	"status.typing":   "Coach is typing...",
	"status.pending":  "Pending: %s",
	"status.habits":   "%d/%d habits done",
	"status.tasks":    "%d tasks today",
	"status.you":      "You",
	"status.coach":    "Coach",

	// UI - Input
	"input.placeholder": "Tell me what you'd like to do...",
	"input.submit_hint": "Enter to send",

	// UI - Keybindings (TUI)
	"keys.tab":     "tab switch panel",
	"keys.confirm": "ctrl+y confirm",
	"keys.cancel":  "ctrl+n dismiss",
	"keys.quit":    "ctrl+c quit",

	// Pending action card
	"action.task":     "Task",
	"action.habit":    "Habit",
	"action.time":     "Time",
	"action.date":     "Date",
	"action.reminder": "Reminder on",
	"action.prompt":   "Confirm? (y/n)",

	// Commands
	"cmd.help":      "Show available commands",
	"cmd.habits":    "List habits for today",
	"cmd.tasks":     "List tasks for the viewed day",
	"cmd.add_habit": "Add a habit directly",
	"cmd.add_task":  "Add a task directly",
	"cmd.done":      "Toggle a habit or task by number",
	"cmd.remove":    "Remove a habit or task by number",
	"cmd.today":     "Jump back to today",
	"cmd.prev":      "View the previous day",
	"cmd.next":      "View the next day",
	"cmd.suggest":   "Show habit suggestions",
	"cmd.insight":   "Show your daily insight",
	"cmd.new":       "Start a new conversation",
	"cmd.sessions":  "List saved conversations",
	"cmd.resume":    "Resume a saved conversation",
	"cmd.lang":      "Switch language (en / zh-CN)",
	"cmd.quit":      "Exit application",

	// REPL output
	"repl.welcome":      "Flow AI - your habit and task coach. Type /help for commands.",
	"repl.no_habits":    "No habits yet. Try: make meditation a habit",
	"repl.no_tasks":     "No tasks for this day. Try: remind me to call mom at 3pm",
	"repl.no_pending":   "Nothing to confirm right now.",
	"repl.bad_index":    "No item at number %d.",
	"repl.habit_done":   "Toggled habit: %s",
	"repl.task_done":    "Toggled task: %s",
	"repl.removed":      "Removed: %s",
	"repl.viewing":      "Viewing %s",
	"repl.sessions":     "Saved conversations:",
	"repl.resumed":      "Resumed conversation %s",
	"repl.new_session":  "Started a new conversation.",
	"repl.lang_changed": "Language switched to %s",
	"repl.goodbye":      "See you tomorrow. Keep the streak going!",

	// Errors
	"error.storage": "Storage error: %s",
	"error.config":  "Config error: %s",
}
