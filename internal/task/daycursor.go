package task

import (
	"sync"
	"time"
)

// DayCursor 当前查看的日期，可前后翻页
// DayCursor is the currently viewed day, navigable one day at a time.
// It is shared between the chat engine (which pins proposal dates) and
// the task views.
type DayCursor struct {
	mu  sync.Mutex
	now func() time.Time
	day time.Time
}

// NewDayCursor 创建定位在今天的游标 / NewDayCursor starts at today
func NewDayCursor(now func() time.Time) *DayCursor {
	if now == nil {
		now = time.Now
	}
	return &DayCursor{now: now, day: truncateDay(now())}
}

// Day 返回当前查看的日期 / Day returns the viewed day
func (c *DayCursor) Day() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.day
}

// Prev 后退一天 / Prev moves one day back
func (c *DayCursor) Prev() time.Time {
	return c.shift(-1)
}

// Next 前进一天 / Next moves one day forward
func (c *DayCursor) Next() time.Time {
	return c.shift(1)
}

// Today 跳回今天 / Today jumps back to the current day
func (c *DayCursor) Today() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = truncateDay(c.now())
	return c.day
}

// IsToday 判断当前查看的是否今天 / IsToday reports whether the cursor is on today
func (c *DayCursor) IsToday() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SameDay(c.day, c.now())
}

func (c *DayCursor) shift(days int) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = c.day.AddDate(0, 0, days)
	return c.day
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
