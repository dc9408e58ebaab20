package conversation

import (
	"strings"
	"sync"
	"time"

	"flowai/internal/intent"
)

// 助手话术，与产品一致 / Assistant copy, matching the product voice
const (
	taskProposalText   = "I'll add this task for you:"
	habitProposalText  = "I'll create this habit for you:"
	taskConfirmedText  = "✅ Task added successfully! You can find it in your Tasks."
	habitConfirmedText = "✅ Habit created successfully! You can track it in your Habits tab."
	cancelledText      = "No problem. Let me know if you'd like to try something else."
)

const (
	defaultReplyDelay    = time.Second
	defaultFollowupDelay = 500 * time.Millisecond
)

// TaskSink 接收确认后的任务 / TaskSink receives a confirmed task
type TaskSink interface {
	AddTask(title string, date time.Time, timeOfDay string, reminder bool) string
}

// HabitSink 接收确认后的习惯 / HabitSink receives a confirmed habit
type HabitSink interface {
	AddHabit(title string) string
}

// Responder 为无法识别的输入生成回复 / Responder replies to unrecognized input
type Responder interface {
	Respond(input string) string
}

// Options 引擎装配 / Options wires the engine to its collaborators
type Options struct {
	Tasks     TaskSink
	Habits    HabitSink
	Responder Responder
	// CurrentDate 宿主当前查看的日期；缺省为 time.Now
	// CurrentDate is the host's currently viewed date; defaults to time.Now.
	CurrentDate func() time.Time
	Scheduler   Scheduler
	// ReplyDelay 助手首条回复的延迟，FollowupDelay 确认/取消后跟帖的延迟。
	// 零表示立即投递，负值取产品默认（1s / 500ms）。
	// ReplyDelay delays the assistant's first reply; FollowupDelay delays
	// the follow-up after confirm/cancel. Zero delivers immediately;
	// negative selects the product defaults (1s / 500ms).
	ReplyDelay    time.Duration
	FollowupDelay time.Duration
	// OnChange 日志变动后的通知（前端刷新用），可为 nil
	// OnChange fires after any log change (front-end refresh); may be nil.
	OnChange func()
}

// Engine 把匹配器、会话日志与提交/取消执行器接在一起
// Engine ties the matcher, the conversation log and the commit/cancel
// executor together.
type Engine struct {
	log           *Log
	tasks         TaskSink
	habits        HabitSink
	responder     Responder
	currentDate   func() time.Time
	sched         Scheduler
	replyDelay    time.Duration
	followupDelay time.Duration

	changeMu sync.Mutex
	onChange func()
}

func NewEngine(opts Options) *Engine {
	e := &Engine{
		log:           NewLog(),
		tasks:         opts.Tasks,
		habits:        opts.Habits,
		responder:     opts.Responder,
		currentDate:   opts.CurrentDate,
		sched:         opts.Scheduler,
		replyDelay:    opts.ReplyDelay,
		followupDelay: opts.FollowupDelay,
		onChange:      opts.OnChange,
	}
	if e.currentDate == nil {
		e.currentDate = time.Now
	}
	if e.sched == nil {
		e.sched = NewTimerScheduler()
	}
	// 零延迟合法（脚本化使用）；仅负值回退到默认
	// Zero delay is legal (scripted use); only negatives fall back to defaults.
	if e.replyDelay < 0 {
		e.replyDelay = defaultReplyDelay
	}
	if e.followupDelay < 0 {
		e.followupDelay = defaultFollowupDelay
	}
	return e
}

// Log 暴露底层日志（恢复会话时用） / Log exposes the underlying log (for session restore)
func (e *Engine) Log() *Log {
	return e.log
}

// Messages 按创建顺序返回会话消息
// Messages returns the conversation in creation order
func (e *Engine) Messages() []Message {
	return e.log.Messages()
}

// LatestPending 最新未决提案 / LatestPending is the newest unresolved proposal
func (e *Engine) LatestPending() (Message, bool) {
	return e.log.LatestPending()
}

// Submit 处理一次用户输入：记录、分类、并在回复延迟后追加助手消息。
// 空白输入被忽略，不产生任何消息。
// Submit handles one user input: record it, classify it, and append the
// assistant's reply after the reply delay. Blank input is dropped and
// produces no message at all.
func (e *Engine) Submit(text string) {
	input := strings.TrimSpace(text)
	if input == "" {
		return
	}
	e.log.Append(SenderUser, input, nil)
	e.notify()

	c := intent.Classify(input)
	// 日期在提交时刻取定，不等回复延迟
	// The date is pinned at submit time, not after the reply delay.
	date := e.currentDate()
	e.sched.AfterFunc(e.replyDelay, func() {
		e.reply(input, c, date)
	})
}

func (e *Engine) reply(input string, c intent.Classification, date time.Time) {
	switch c.Kind {
	case intent.KindTask:
		e.log.Append(SenderAssistant, taskProposalText, &PendingAction{
			Kind:     ActionTask,
			Title:    c.Title,
			Date:     date,
			Time:     c.Time,
			Reminder: c.Reminder,
			Status:   StatusPending,
		})
	case intent.KindHabit:
		e.log.Append(SenderAssistant, habitProposalText, &PendingAction{
			Kind:   ActionHabit,
			Title:  c.Title,
			Status: StatusPending,
		})
	default:
		reply := ""
		if e.responder != nil {
			reply = e.responder.Respond(input)
		}
		e.log.Append(SenderAssistant, reply, nil)
	}
	e.notify()
}

// Confirm 将未决提案提交为真实任务/习惯。消息不存在、无提案或
// 已确认时静默不动作；重复确认绝不会二次入库。
// Confirm commits a pending proposal into a real task or habit. A missing
// message, a message without an action, or an already confirmed action is
// a silent no-op; a repeated confirm never commits twice.
func (e *Engine) Confirm(id int64) {
	action, ok := e.log.ConfirmAction(id)
	if !ok {
		return
	}

	followup := ""
	switch action.Kind {
	case ActionTask:
		if e.tasks != nil {
			e.tasks.AddTask(action.Title, action.Date, action.Time, action.Reminder)
		}
		followup = taskConfirmedText
	case ActionHabit:
		if e.habits != nil {
			e.habits.AddHabit(action.Title)
		}
		followup = habitConfirmedText
	}
	e.notify()

	e.sched.AfterFunc(e.followupDelay, func() {
		e.log.Append(SenderAssistant, followup, nil)
		e.notify()
	})
}

// Cancel 整条删除提案消息并在延迟后跟一句安抚。id 不存在时静默不动作。
// Cancel removes the proposal message outright and follows up after the
// delay. A missing id is a silent no-op.
func (e *Engine) Cancel(id int64) {
	if !e.log.Remove(id) {
		return
	}
	e.notify()

	e.sched.AfterFunc(e.followupDelay, func() {
		e.log.Append(SenderAssistant, cancelledText, nil)
		e.notify()
	})
}

// SetOnChange 替换变动回调；前端在引擎之后创建时用
// SetOnChange replaces the change callback, for front-ends created after
// the engine.
func (e *Engine) SetOnChange(fn func()) {
	e.changeMu.Lock()
	e.onChange = fn
	e.changeMu.Unlock()
}

func (e *Engine) notify() {
	e.changeMu.Lock()
	fn := e.onChange
	e.changeMu.Unlock()
	if fn != nil {
		fn()
	}
}
