package conversation

import (
	"sync"
	"time"
)

// Sender 消息发送方 / Sender identifies who wrote a message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ActionKind 待确认动作的类别 / ActionKind is the kind of a proposed action
type ActionKind string

const (
	ActionTask  ActionKind = "task"
	ActionHabit ActionKind = "habit"
)

// ActionStatus 动作生命周期；confirmed 一经设置不再回退
// ActionStatus is the action lifecycle; confirmed never reverts to pending.
type ActionStatus string

const (
	StatusPending   ActionStatus = "pending"
	StatusConfirmed ActionStatus = "confirmed"
)

// PendingAction 嵌在助手消息里、等待用户确认的提案
// PendingAction is a proposal embedded in an assistant message, awaiting
// explicit user confirmation before it becomes a real task or habit.
type PendingAction struct {
	Kind     ActionKind   `json:"kind"`
	Title    string       `json:"title"`
	Date     time.Time    `json:"date,omitempty"`
	Time     string       `json:"time,omitempty"`
	Reminder bool         `json:"reminder,omitempty"`
	Status   ActionStatus `json:"status"`
}

// Message 会话中的一条消息；Action 至多一个
// Message is one conversation entry; at most one Action per message.
type Message struct {
	ID        int64
	Text      string
	Sender    Sender
	Timestamp time.Time
	Action    *PendingAction
}

// Log 追加式会话日志。消息按创建顺序排列并按 id 建索引，
// 单条消息的状态翻转是定点修改而非整表重建。
// Log is the append-only conversation record. Messages keep creation
// order and are indexed by id, so flipping one entry's status is a
// targeted mutation rather than a whole-list rebuild.
type Log struct {
	mu     sync.Mutex
	nextID int64
	order  []int64
	byID   map[int64]*Message
}

func NewLog() *Log {
	return &Log{nextID: 1, byID: make(map[int64]*Message)}
}

// Append 追加一条消息并分配单调递增的 id
// Append adds a message and assigns the next monotonically increasing id.
func (l *Log) Append(sender Sender, text string, action *PendingAction) Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := &Message{
		ID:        l.nextID,
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
		Action:    action,
	}
	l.nextID++
	l.order = append(l.order, m.ID)
	l.byID[m.ID] = m
	return cloneMessage(m)
}

// Get 按 id 取消息副本 / Get returns a copy of the message with the given id
func (l *Log) Get(id int64) (Message, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.byID[id]
	if !ok {
		return Message{}, false
	}
	return cloneMessage(m), true
}

// Remove 整条删除（取消路径：消息连同提案一起消失，不留 cancelled 状态）
// Remove deletes the entry outright (the cancel path: the message and its
// proposal vanish; there is no cancelled marker).
func (l *Log) Remove(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.byID[id]; !ok {
		return false
	}
	delete(l.byID, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// ConfirmAction 原子地将 pending 提案翻转为 confirmed 并返回其副本。
// 消息不存在、没有提案、或提案已非 pending 时返回 false —— 这是
// 重复确认不会二次入库的守卫。
// ConfirmAction atomically flips a pending proposal to confirmed and
// returns a copy of it. It reports false when the message is absent, has
// no action, or the action is no longer pending — the guard that keeps a
// double confirm from committing twice.
func (l *Log) ConfirmAction(id int64) (PendingAction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.byID[id]
	if !ok || m.Action == nil || m.Action.Status != StatusPending {
		return PendingAction{}, false
	}
	m.Action.Status = StatusConfirmed
	return *m.Action, true
}

// Messages 按创建顺序返回全部消息副本
// Messages returns copies of all entries in creation order
func (l *Log) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, cloneMessage(l.byID[id]))
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// LatestPending 返回最新的未决提案消息（行式前端用 yes/no 应答它）
// LatestPending returns the newest message with an unresolved proposal
// (line-oriented front ends answer it with yes/no).
func (l *Log) LatestPending() (Message, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.order) - 1; i >= 0; i-- {
		m := l.byID[l.order[i]]
		if m.Action != nil && m.Action.Status == StatusPending {
			return cloneMessage(m), true
		}
	}
	return Message{}, false
}

// Restore 用持久化消息重建日志，nextID 越过已有最大值
// Restore rebuilds the log from persisted messages; nextID moves past the
// largest restored id.
func (l *Log) Restore(messages []Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.order = l.order[:0]
	l.byID = make(map[int64]*Message, len(messages))
	l.nextID = 1
	for i := range messages {
		m := cloneMessagePtr(&messages[i])
		l.order = append(l.order, m.ID)
		l.byID[m.ID] = m
		if m.ID >= l.nextID {
			l.nextID = m.ID + 1
		}
	}
}

func cloneMessage(m *Message) Message {
	out := *m
	if m.Action != nil {
		action := *m.Action
		out.Action = &action
	}
	return out
}

func cloneMessagePtr(m *Message) *Message {
	out := cloneMessage(m)
	return &out
}
