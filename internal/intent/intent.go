package intent

import (
	"regexp"
	"strings"
)

// Kind 用户输入的意图类别
// Kind is the classified purpose of a user's free-text input
type Kind int

const (
	KindNone Kind = iota
	KindTask
	KindHabit
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindHabit:
		return "habit"
	default:
		return "none"
	}
}

// Classification 分类结果：意图类别 + 抽取字段
// Classification is the matcher result: intent kind plus extracted fields.
// Date 不在此处决定，由调用方按当前查看日期补齐。
// The date is not decided here; the caller fills it in from the currently viewed date.
type Classification struct {
	Kind     Kind
	Title    string
	Time     string // 12-hour clock text such as "3pm" or "10:30 am"; empty when absent
	Reminder bool
}

var (
	timePattern       = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s?(?:am|pm)?|\d{1,2}\s?(?:am|pm))`)
	taskTitlePattern  = regexp.MustCompile(`(?i)(?:add task|add a task|remind me)(?:\s+\w+)?(?:\s+at\s+[\d:apm\s]+)?:?\s*(.+?)(?:\s+(?:on|at|for)\s+|$)`)
	habitTitlePattern = regexp.MustCompile(`(?i)(?:make|add|create)\s+(.+?)\s+(?:a\s+)?habit`)
)

// rule 一条 (判定, 提取) 规则；规则列表按序评估
// rule is one (predicate, extractor) pair; the rule list is evaluated in order.
type rule struct {
	match   func(lower string) bool
	extract func(raw string) Classification
}

// 任务触发词严格先于习惯触发词检查，两者都命中时按任务处理。
// Task triggers are checked strictly before habit triggers; when both hit, task wins.
var rules = []rule{
	{match: hasTaskTrigger, extract: extractTask},
	{match: hasHabitTrigger, extract: extractHabit},
}

// Classify 将一段自由文本分类为意图，首个命中的规则获胜
// Classify maps free text onto an intent; the first matching rule wins.
// 空白输入不应到达这里，调用方负责 trim 并忽略空提交。
// Blank input must never reach the matcher; callers trim and drop empty submissions.
func Classify(input string) Classification {
	lower := strings.ToLower(input)
	for _, r := range rules {
		if r.match(lower) {
			return r.extract(input)
		}
	}
	return Classification{Kind: KindNone}
}

func hasTaskTrigger(lower string) bool {
	return strings.Contains(lower, "add task") ||
		strings.Contains(lower, "add a task") ||
		strings.Contains(lower, "remind me")
}

func hasHabitTrigger(lower string) bool {
	if strings.Contains(lower, "habit") {
		return true
	}
	return strings.Contains(lower, "make") && strings.Contains(lower, "routine")
}

func extractTask(raw string) Classification {
	c := Classification{Kind: KindTask, Title: raw}
	if m := taskTitlePattern.FindStringSubmatch(raw); m != nil {
		// 提取失败时退回整句作为标题 / Extraction failure degrades to the whole input as title
		if title := strings.TrimSpace(m[1]); title != "" {
			c.Title = title
		}
	}
	c.Time = timePattern.FindString(raw)
	c.Reminder = strings.Contains(strings.ToLower(raw), "remind")
	return c
}

func extractHabit(raw string) Classification {
	c := Classification{Kind: KindHabit, Title: raw}
	if m := habitTitlePattern.FindStringSubmatch(raw); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			c.Title = title
		}
	}
	return c
}
