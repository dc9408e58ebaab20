package habit

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Category 习惯类别
// Category groups habits by the part of life they belong to
type Category string

const (
	CategoryMorning  Category = "morning"
	CategoryEvening  Category = "evening"
	CategoryHealth   Category = "health"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
)

// NormalizeCategory 未知类别归一化为 personal
// NormalizeCategory maps unknown values to personal
func NormalizeCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryMorning, CategoryEvening, CategoryHealth, CategoryWork, CategoryPersonal:
		return Category(strings.ToLower(strings.TrimSpace(s)))
	default:
		return CategoryPersonal
	}
}

// Habit 一条习惯，Completed 表示今日是否已完成
// Habit is a single tracked habit; Completed means done today.
type Habit struct {
	ID        string
	Title     string
	Completed bool
	CreatedAt time.Time
	Category  Category
}

// Tracker 有序的内存习惯集合
// Tracker is an ordered in-memory habit collection
type Tracker struct {
	mu     sync.Mutex
	habits []Habit
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Add 追加一条习惯；空白标题被拒绝
// Add appends a habit; blank titles are rejected.
func (t *Tracker) Add(title string, category Category) (Habit, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Habit{}, false
	}
	h := Habit{
		ID:        uuid.NewString(),
		Title:     title,
		Completed: false,
		CreatedAt: time.Now(),
		Category:  category,
	}
	t.mu.Lock()
	t.habits = append(t.habits, h)
	t.mu.Unlock()
	return h, true
}

// AddHabit 会话执行器的 Habit sink：addHabit(title) -> id
// AddHabit is the habit sink for the conversation executor: addHabit(title) -> id
func (t *Tracker) AddHabit(title string) string {
	h, ok := t.Add(title, CategoryPersonal)
	if !ok {
		return ""
	}
	return h.ID
}

// Toggle 翻转今日完成状态 / Toggle flips today's completion state
func (t *Tracker) Toggle(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.habits {
		if t.habits[i].ID == id {
			t.habits[i].Completed = !t.habits[i].Completed
			return true
		}
	}
	return false
}

// Rename 修改标题；空白标题保持原样
// Rename updates the title; a blank title leaves it unchanged.
func (t *Tracker) Rename(id, title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.habits {
		if t.habits[i].ID == id {
			t.habits[i].Title = title
			return true
		}
	}
	return false
}

func (t *Tracker) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.habits {
		if t.habits[i].ID == id {
			t.habits = append(t.habits[:i], t.habits[i+1:]...)
			return true
		}
	}
	return false
}

// Habits 按创建顺序返回副本 / Habits returns a copy in creation order
func (t *Tracker) Habits() []Habit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Habit(nil), t.habits...)
}

func (t *Tracker) CompletedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, h := range t.habits {
		if h.Completed {
			n++
		}
	}
	return n
}

func (t *Tracker) TotalHabits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.habits)
}

// ProgressPercent 今日完成百分比（四舍五入）
// ProgressPercent is today's completion percentage, rounded.
func (t *Tracker) ProgressPercent() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.habits) == 0 {
		return 0
	}
	n := 0
	for _, h := range t.habits {
		if h.Completed {
			n++
		}
	}
	return int(float64(n)/float64(len(t.habits))*100 + 0.5)
}

// ResetDay 清除所有完成标记（新的一天）
// ResetDay clears all completion marks (a fresh day)
func (t *Tracker) ResetDay() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.habits {
		t.habits[i].Completed = false
	}
}

// Replace 用持久化内容整体替换（加载时用）
// Replace swaps in persisted content wholesale (used on load)
func (t *Tracker) Replace(habits []Habit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.habits = append([]Habit(nil), habits...)
}
