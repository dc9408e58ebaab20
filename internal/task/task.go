package task

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Category 任务类别 / Category classifies a task
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryFamily   Category = "family"
	CategoryHealth   Category = "health"
)

// Priority 任务优先级 / Priority ranks a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task 一条定在某个日历日的任务
// Task is a to-do pinned to a calendar day. Time is display text such as
// "3pm"; it is never parsed into a clock value.
type Task struct {
	ID        string
	Title     string
	Date      time.Time
	Time      string
	Completed bool
	Reminder  bool
	Category  Category
	Priority  Priority
	CreatedAt time.Time
}

// List 有序的内存任务集合
// List is an ordered in-memory task collection
type List struct {
	mu    sync.Mutex
	tasks []Task
}

func NewList() *List {
	return &List{}
}

// Add 追加一条任务；空白标题被拒绝
// Add appends a task; blank titles are rejected.
func (l *List) Add(title string, date time.Time, timeOfDay string, reminder bool, category Category, priority Priority) (Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}
	t := Task{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      date,
		Time:      timeOfDay,
		Completed: false,
		Reminder:  reminder,
		Category:  category,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, t)
	l.mu.Unlock()
	return t, true
}

// AddTask 会话执行器的 Task sink：addTask(title, date, time?, reminder?) -> id
// 聊天创建的任务不携带类别与优先级。
// AddTask is the task sink for the conversation executor; chat-created
// tasks carry no category or priority.
func (l *List) AddTask(title string, date time.Time, timeOfDay string, reminder bool) string {
	t, ok := l.Add(title, date, timeOfDay, reminder, "", "")
	if !ok {
		return ""
	}
	return t.ID
}

func (l *List) Toggle(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			return true
		}
	}
	return false
}

func (l *List) Delete(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Tasks 按创建顺序返回副本 / Tasks returns a copy in creation order
func (l *List) Tasks() []Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Task(nil), l.tasks...)
}

// ForDay 返回落在同一日历日的任务
// ForDay returns tasks pinned to the same calendar day
func (l *List) ForDay(day time.Time) []Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Task
	for _, t := range l.tasks {
		if SameDay(t.Date, day) {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// CompletionRate 全部任务的完成百分比（四舍五入）
// CompletionRate is the completion percentage across all tasks, rounded.
func (l *List) CompletionRate() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.tasks) == 0 {
		return 0
	}
	n := 0
	for _, t := range l.tasks {
		if t.Completed {
			n++
		}
	}
	return int(float64(n)/float64(len(l.tasks))*100 + 0.5)
}

// Replace 用持久化内容整体替换（加载时用）
// Replace swaps in persisted content wholesale (used on load)
func (l *List) Replace(tasks []Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append([]Task(nil), tasks...)
}

// SameDay 判断两个时间是否落在同一日历日
// SameDay reports whether two times fall on the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
