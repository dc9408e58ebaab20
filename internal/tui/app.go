package tui

import (
	"fmt"
	"strings"

	"flowai/internal/coach"
	"flowai/internal/conversation"
	"flowai/internal/habit"
	"flowai/internal/i18n"
	"flowai/internal/task"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PanelID 面板标识
// PanelID identifies a panel
type PanelID int

const (
	PanelChat PanelID = iota
	PanelHabits
	PanelTasks
)

// --- Tea Messages ---

// RefreshMsg 会话日志变动后触发重绘
// RefreshMsg triggers a redraw after the conversation log changed
type RefreshMsg struct{}

// Deps TUI 依赖的领域对象
// Deps are the domain objects the TUI renders and drives
type Deps struct {
	Engine *conversation.Engine
	Habits *habit.Tracker
	Tasks  *task.List
	Coach  *coach.Responder
	Cursor *task.DayCursor
	// OnSave 每次状态变动后的持久化回调，可为 nil
	// OnSave persists state after each mutation; may be nil.
	OnSave func()
}

// App Bubble Tea 主 Model
// App is the main Bubble Tea model
type App struct {
	// 布局 / Layout
	width  int
	height int

	// 面板 / Panels
	activePanel PanelID
	chatView    viewport.Model
	habitsView  viewport.Model
	tasksView   viewport.Model

	// 输入 / Input
	input textarea.Model

	// 领域状态 / Domain state
	deps   Deps
	typing bool

	// 配置 / Config
	theme  Theme
	keys   KeyMap
	locale *i18n.I18n
}

// NewApp 创建 TUI 应用
// NewApp creates a new TUI application
func NewApp(deps Deps, theme Theme) App {
	ta := textarea.New()
	ta.Placeholder = i18n.T("input.placeholder")
	ta.CharLimit = 2048
	ta.SetHeight(3)
	ta.Focus()

	return App{
		activePanel: PanelChat,
		input:       ta,
		deps:        deps,
		theme:       theme,
		keys:        DefaultKeyMap(),
		locale:      i18n.Global(),
	}
}

func (a App) Init() tea.Cmd {
	return textarea.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.save()
			return a, tea.Quit
		case "tab":
			a.activePanel = (a.activePanel + 1) % 3
			return a, nil
		case "enter":
			text := a.input.Value()
			a.input.Reset()
			if strings.TrimSpace(text) != "" {
				a.typing = true
				a.deps.Engine.Submit(text)
				a.refreshChat()
			}
			return a, nil
		case "ctrl+y":
			if m, ok := a.deps.Engine.LatestPending(); ok {
				a.deps.Engine.Confirm(m.ID)
				a.refreshAll()
				a.save()
			}
			return a, nil
		case "ctrl+n":
			if m, ok := a.deps.Engine.LatestPending(); ok {
				a.deps.Engine.Cancel(m.ID)
				a.refreshAll()
				a.save()
			}
			return a, nil
		case "shift+left":
			a.deps.Cursor.Prev()
			a.refreshTasks()
			return a, nil
		case "shift+right":
			a.deps.Cursor.Next()
			a.refreshTasks()
			return a, nil
		case "ctrl+t":
			a.deps.Cursor.Today()
			a.refreshTasks()
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		a.refreshAll()
		return a, nil

	case RefreshMsg:
		a.refreshAll()
		a.save()
		return a, nil
	}

	// 更新输入区 / Update input area
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)

	// 滚动消息转发给当前面板 / Forward scroll to the active panel
	switch a.activePanel {
	case PanelChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case PanelHabits:
		a.habitsView, cmd = a.habitsView.Update(msg)
	case PanelTasks:
		a.tasksView, cmd = a.tasksView.Update(msg)
	}
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}

	// 计算布局尺寸 / Calculate layout dimensions
	sidebarWidth := a.width * 25 / 100
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}
	if sidebarWidth > 40 {
		sidebarWidth = 40
	}
	if a.width < 80 {
		sidebarWidth = 0
	}

	mainWidth := a.width - sidebarWidth
	if sidebarWidth > 0 {
		mainWidth-- // border
	}

	inputHeight := 5
	statusHeight := 1
	tabHeight := 1
	panelHeight := a.height - inputHeight - statusHeight - tabHeight

	if panelHeight < 3 {
		panelHeight = 3
	}

	// 构建各部分 / Build components
	tabs := a.renderTabs(mainWidth)
	panel := a.renderActivePanel(mainWidth, panelHeight)
	inputBox := a.renderInput(mainWidth)
	statusBar := a.renderStatusBar(a.width)

	// 左侧主区域 / Left main area
	main := lipgloss.JoinVertical(lipgloss.Left, tabs, panel, inputBox)

	// 右侧侧边栏 / Right sidebar
	if sidebarWidth > 0 {
		sidebar := a.renderSidebar(sidebarWidth, a.height-statusHeight)
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, sidebar)
	}

	// 底部状态栏 / Bottom status bar
	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

// --- 内部方法 / Internal methods ---

func (a *App) relayout() {
	mainWidth := a.width
	panelHeight := a.height - 8

	if panelHeight < 3 {
		panelHeight = 3
	}

	a.chatView = viewport.New(mainWidth, panelHeight)
	a.habitsView = viewport.New(mainWidth, panelHeight)
	a.tasksView = viewport.New(mainWidth, panelHeight)
	a.input.SetWidth(mainWidth - 4)
}

func (a *App) save() {
	if a.deps.OnSave != nil {
		a.deps.OnSave()
	}
}

func (a *App) refreshAll() {
	a.refreshChat()
	a.refreshHabits()
	a.refreshTasks()
}

func (a *App) refreshChat() {
	messages := a.deps.Engine.Messages()

	var b strings.Builder
	for _, m := range messages {
		if m.Sender == conversation.SenderUser {
			b.WriteString(a.theme.UserStyle.Render(a.locale.T("status.you")) + "  " + m.Text + "\n\n")
			continue
		}
		text := RenderMarkdown(m.Text, a.chatView.Width-2)
		if text == "" {
			text = a.theme.CoachStyle.Render(m.Text)
		}
		b.WriteString(a.theme.TitleStyle.Render(a.locale.T("status.coach")) + "\n" + text + "\n")
		if m.Action != nil {
			b.WriteString(RenderActionCard(m.Action, a.theme, a.locale) + "\n")
		}
		b.WriteString("\n")
	}

	// 最后一条是用户消息时，教练还在输入
	// The coach is still typing while the last message is the user's.
	a.typing = len(messages) > 0 && messages[len(messages)-1].Sender == conversation.SenderUser

	a.chatView.SetContent(b.String())
	a.chatView.GotoBottom()
}

func (a *App) refreshHabits() {
	habits := a.deps.Habits.Habits()

	var b strings.Builder
	if len(habits) == 0 {
		b.WriteString(a.theme.MutedStyle.Render("  " + a.locale.T("repl.no_habits")))
	}
	for i, h := range habits {
		b.WriteString(RenderHabitLine(i+1, h, a.theme) + "\n")
	}
	a.habitsView.SetContent(b.String())
}

func (a *App) refreshTasks() {
	day := a.deps.Cursor.Day()
	tasks := a.deps.Tasks.ForDay(day)

	var b strings.Builder
	b.WriteString(a.theme.TitleStyle.Render(" "+day.Format("Mon, Jan 2")) + "\n\n")
	if len(tasks) == 0 {
		b.WriteString(a.theme.MutedStyle.Render("  " + a.locale.T("repl.no_tasks")))
	}
	for i, t := range tasks {
		b.WriteString(RenderTaskLine(i+1, t, a.theme) + "\n")
	}
	a.tasksView.SetContent(b.String())
}

// --- 渲染方法 / Render methods ---

func (a App) renderTabs(width int) string {
	tabs := []struct {
		id   PanelID
		name string
	}{
		{PanelChat, a.locale.T("panel.chat")},
		{PanelHabits, a.locale.T("panel.habits")},
		{PanelTasks, a.locale.T("panel.tasks")},
	}

	var parts []string
	for _, tab := range tabs {
		style := a.theme.InactiveTabStyle
		if tab.id == a.activePanel {
			style = a.theme.ActiveTabStyle
		}
		parts = append(parts, style.Render(tab.name))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) renderActivePanel(width, height int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Height(height)

	var content string
	switch a.activePanel {
	case PanelChat:
		content = a.chatView.View()
	case PanelHabits:
		content = a.habitsView.View()
	case PanelTasks:
		content = a.tasksView.View()
	}

	return style.Render(content)
}

func (a App) renderInput(width int) string {
	style := a.theme.InputStyle.Width(width)
	return style.Render(a.input.View())
}

func (a App) renderSidebar(width, height int) string {
	var parts []string

	// 标题 / Title
	parts = append(parts, a.theme.TitleStyle.Render(" Flow AI"))
	parts = append(parts, "")

	// 进度 / Progress
	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("sidebar.progress")))
	pct := a.deps.Habits.ProgressPercent()
	bar := renderProgressBar(float64(pct), width-4)
	parts = append(parts, "  "+bar)
	parts = append(parts, fmt.Sprintf("  %s", a.locale.T("status.habits", a.deps.Habits.CompletedCount(), a.deps.Habits.TotalHabits())))
	parts = append(parts, "")

	// 今天 / Today
	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("sidebar.today")))
	day := a.deps.Cursor.Day()
	parts = append(parts, "  "+day.Format("Mon, Jan 2"))
	parts = append(parts, fmt.Sprintf("  %s", a.locale.T("status.tasks", len(a.deps.Tasks.ForDay(day)))))
	parts = append(parts, "")

	// 洞察 / Insight
	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("sidebar.insight")))
	parts = append(parts, wrapIndent(a.deps.Coach.Insight(), width-4, "  ")...)
	parts = append(parts, "")

	// 待确认 / Pending proposal
	if m, ok := a.deps.Engine.LatestPending(); ok {
		parts = append(parts, a.theme.PendingStyle.Render(a.locale.T("status.pending", m.Action.Title)))
		parts = append(parts, "  "+a.keys.Confirm.Help().Key+" / "+a.keys.Dismiss.Help().Key)
	}

	content := strings.Join(parts, "\n")

	style := a.theme.SidebarStyle.
		Width(width).
		Height(height)

	return style.Render(content)
}

func (a App) renderStatusBar(width int) string {
	status := a.locale.T("status.ready")
	if a.typing {
		status = a.locale.T("status.typing")
	}

	left := " Flow AI · " + status
	right := a.keys.SwitchPanel.Help().Key + " · " + a.keys.Quit.Help().Key + "  "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return a.theme.StatusBarStyle.Width(width).Render(bar)
}

func renderProgressBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled
	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

func wrapIndent(text string, width int, indent string) []string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	var lines []string
	line := indent
	for _, w := range words {
		if len(line)+len(w)+1 > width && line != indent {
			lines = append(lines, line)
			line = indent
		}
		if line == indent {
			line += w
		} else {
			line += " " + w
		}
	}
	if strings.TrimSpace(line) != "" {
		lines = append(lines, line)
	}
	return lines
}

// Run 启动 Bubble Tea TUI
// Run starts the Bubble Tea TUI application
func Run(deps Deps, theme Theme, altScreen bool) error {
	app := NewApp(deps, theme)
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(app, opts...)
	// 引擎的延迟回复落在其他 goroutine，经 Send 回到 UI 循环
	// Delayed engine replies land on other goroutines; Send routes them
	// back into the UI loop.
	deps.Engine.SetOnChange(func() {
		p.Send(RefreshMsg{})
	})
	_, err := p.Run()
	return err
}
