package storage

import (
	"strings"

	"flowai/internal/conversation"
	"flowai/internal/habit"
	"flowai/internal/task"
)

// Store 持久化接口 / Store is the persistence interface
type Store interface {
	// 会话操作 / Conversation operations
	CreateConversation(meta ConversationMeta) error
	SaveConversation(meta ConversationMeta) error
	LoadConversation(id string) (ConversationMeta, error)
	ListConversations() ([]ConversationMeta, error)

	// 消息操作 / Message operations
	SaveMessages(conversationID string, messages []conversation.Message) error
	LoadMessages(conversationID string) ([]conversation.Message, error)

	// 习惯/任务操作 / Habit and task operations
	ReplaceHabits(habits []habit.Habit) error
	ListHabits() ([]habit.Habit, error)
	ReplaceTasks(tasks []task.Task) error
	ListTasks() ([]task.Task, error)

	// 生命周期 / Lifecycle
	Close() error
}

// ConversationMeta 会话元数据 / ConversationMeta holds conversation metadata
type ConversationMeta struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// InferTitle 取第一条用户消息作为标题，超长截断
// InferTitle derives a title from the first user message, truncated.
func InferTitle(messages []conversation.Message, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 48
	}
	for _, m := range messages {
		if m.Sender != conversation.SenderUser {
			continue
		}
		title := strings.TrimSpace(m.Text)
		if title == "" {
			continue
		}
		runes := []rune(title)
		if len(runes) > maxLen {
			title = string(runes[:maxLen-1]) + "…"
		}
		return title
	}
	return ""
}
