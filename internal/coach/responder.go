package coach

import (
	"fmt"
	"strings"
)

// Stats 提供实时习惯完成度，供进度类回复插值
// Stats exposes live habit completion counters for the progress reply
type Stats interface {
	CompletedCount() int
	TotalHabits() int
}

// Responder 基于关键词的预置回复生成器
// Responder selects canned replies by keyword scanning
type Responder struct {
	stats Stats
}

func NewResponder(stats Stats) *Responder {
	return &Responder{stats: stats}
}

// category 一组关键词对应一条回复；类别按序扫描，先命中者胜
// category pairs a keyword set with a reply; categories are scanned in order and the first hit wins.
type category struct {
	keywords []string
	reply    func(r *Responder) string
}

var categories = []category{
	{keywords: []string{"help", "stuck"}, reply: (*Responder).helpReply},
	{keywords: []string{"motivat", "inspire"}, reply: (*Responder).motivationReply},
	{keywords: []string{"progress", "doing"}, reply: (*Responder).progressReply},
	{keywords: []string{"plan", "day"}, reply: (*Responder).planReply},
	{keywords: []string{"streak", "consistent"}, reply: (*Responder).streakReply},
}

// Respond 纯函数：同样的输入（与同样的计数）总是给出同样的回复
// Respond is pure: identical input (given identical counters) yields the identical reply.
func (r *Responder) Respond(input string) string {
	lower := strings.ToLower(input)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.reply(r)
			}
		}
	}
	return "I'm here to support you. I can help you add tasks, create habits, or plan your day. Try saying things like 'Add a task' or 'Make workout a habit'. What would you like to do?"
}

func (r *Responder) helpReply() string {
	return "Focus on one habit at a time. Start with the easiest one to build momentum. Small wins compound into lasting change."
}

func (r *Responder) motivationReply() string {
	return "Discipline is choosing what you want most over what you want now. You're building something meaningful here."
}

func (r *Responder) progressReply() string {
	completed, total := r.counters()
	tail := "Every step counts. Stay consistent."
	if progressPercent(completed, total) >= 50 {
		tail = "Strong work. Keep going."
	}
	return fmt.Sprintf("You've completed %d out of %d habits today. %s", completed, total, tail)
}

func (r *Responder) planReply() string {
	return "Let's plan your day. Tell me what tasks you need to complete, and I'll help you organize them. For example: 'Add task Monday at 3 PM: take kids to school'"
}

func (r *Responder) streakReply() string {
	return "Consistency beats intensity. Show up every day, even when it's hard. That's where real growth happens."
}

// Insight 按今日完成状态给出一句洞察
// Insight returns a one-line reading of today's completion state.
func (r *Responder) Insight() string {
	completed, total := r.counters()
	switch {
	case total == 0:
		return "Start building your routine. Add your first habit to begin your journey."
	case completed == total:
		return "Perfect execution today. You're building unstoppable momentum."
	case completed == 0:
		return "Every journey starts with a single step. Begin with your easiest habit."
	case progressPercent(completed, total) >= 50:
		return "Strong progress. Complete the remaining habits to finish strong."
	default:
		return "You've started well. Keep the momentum going with your next habit."
	}
}

func (r *Responder) counters() (completed, total int) {
	if r.stats == nil {
		return 0, 0
	}
	return r.stats.CompletedCount(), r.stats.TotalHabits()
}

func progressPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
