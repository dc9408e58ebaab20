package i18n

// ZhCNMessages 简体中文消息目录
// ZhCNMessages Simplified Chinese message catalog
var ZhCNMessages = map[string]string{
	// TUI - 面板标题
	"panel.chat":   "对话",
	"panel.habits": "习惯",
	"panel.tasks":  "任务",

	// TUI - 侧边栏
	"sidebar.progress":    "进度",
	"sidebar.insight":     "洞察",
	"sidebar.today":       "今天",
	"sidebar.suggestions": "建议",

	// TUI - 状态栏
	"status.ready":   "就绪",
	"status.typing":  "教练正在输入...",
	"status.pending": "待确认: %s",
	"status.habits":  "已完成 %d/%d 个习惯",
	"status.tasks":   "今天 %d 个任务",
	"status.you":     "你",
	"status.coach":   "教练",

	// TUI - 输入
	"input.placeholder": "告诉我你想做什么...",
	"input.submit_hint": "回车发送",

	// TUI - 快捷键提示
	"keys.tab":     "tab 切换面板",
	"keys.confirm": "ctrl+y 确认",
	"keys.cancel":  "ctrl+n 取消",
	"keys.quit":    "ctrl+c 退出",

	// 待确认操作卡片
	"action.task":     "任务",
	"action.habit":    "习惯",
	"action.time":     "时间",
	"action.date":     "日期",
	"action.reminder": "提醒已开启",
	"action.prompt":   "确认吗? (y/n)",

	// 命令
	"cmd.help":      "显示可用命令",
	"cmd.habits":    "列出今天的习惯",
	"cmd.tasks":     "列出当前日期的任务",
	"cmd.add_habit": "直接添加习惯",
	"cmd.add_task":  "直接添加任务",
	"cmd.done":      "按编号切换习惯或任务完成状态",
	"cmd.remove":    "按编号删除习惯或任务",
	"cmd.today":     "回到今天",
	"cmd.prev":      "查看前一天",
	"cmd.next":      "查看后一天",
	"cmd.suggest":   "显示习惯建议",
	"cmd.insight":   "显示每日洞察",
	"cmd.new":       "开始新对话",
	"cmd.sessions":  "列出已保存的对话",
	"cmd.resume":    "恢复已保存的对话",
	"cmd.lang":      "切换语言 (en / zh-CN)",
	"cmd.quit":      "退出应用",

	// REPL 输出
	"repl.welcome":      "Flow AI - 你的习惯与任务教练。输入 /help 查看命令。",
	"repl.no_habits":    "还没有习惯。试试: make meditation a habit",
	"repl.no_tasks":     "这一天没有任务。试试: remind me to call mom at 3pm",
	"repl.no_pending":   "当前没有待确认的操作。",
	"repl.bad_index":    "编号 %d 没有对应条目。",
	"repl.habit_done":   "已切换习惯: %s",
	"repl.task_done":    "已切换任务: %s",
	"repl.removed":      "已删除: %s",
	"repl.viewing":      "正在查看 %s",
	"repl.sessions":     "已保存的对话:",
	"repl.resumed":      "已恢复对话 %s",
	"repl.new_session":  "已开始新对话。",
	"repl.lang_changed": "语言已切换为 %s",
	"repl.goodbye":      "明天见。保持连胜!",

	// 错误
	"error.storage": "存储错误: %s",
	"error.config":  "配置错误: %s",
}
