package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"flowai/internal/coach"
	"flowai/internal/config"
	"flowai/internal/conversation"
	"flowai/internal/habit"
	"flowai/internal/storage"
	"flowai/internal/task"

	"go.uber.org/zap"
)

// queuedScheduler 模拟真实定时器的顺序：回调只在 fire 时执行
// queuedScheduler mirrors real timer ordering: callbacks run only when
// fired, after the triggering call has returned.
type queuedScheduler struct {
	pending []func()
}

func (s *queuedScheduler) AfterFunc(_ time.Duration, fn func()) {
	s.pending = append(s.pending, fn)
}

func (s *queuedScheduler) fire() {
	for len(s.pending) > 0 {
		fn := s.pending[0]
		s.pending = s.pending[1:]
		fn()
	}
}

func newREPLState() (*appState, *queuedScheduler, *bytes.Buffer) {
	habits := habit.NewTracker()
	tasks := task.NewList()
	cursor := task.NewDayCursor(func() time.Time {
		return time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	})
	responder := coach.NewResponder(habits)
	sched := &queuedScheduler{}

	var out bytes.Buffer
	st := &appState{
		cfg:    config.Default(),
		habits: habits,
		tasks:  tasks,
		coach:  responder,
		cursor: cursor,
		logger: zap.NewNop(),
		out:    &out,
	}
	st.engine = conversation.NewEngine(conversation.Options{
		Tasks:       tasks,
		Habits:      habits,
		Responder:   responder,
		CurrentDate: cursor.Day,
		Scheduler:   sched,
	})
	return st, sched, &out
}

func TestPrintNewMessages_NoReechoAfterCancel(t *testing.T) {
	st, sched, out := newREPLState()

	st.engine.Log().Append(conversation.SenderAssistant, "welcome aboard", nil)
	st.printNewMessages()

	st.engine.Submit("remind me to call mom at 3pm")
	sched.fire()
	st.printNewMessages()

	m, ok := st.engine.LatestPending()
	if !ok {
		t.Fatal("expected a pending proposal")
	}
	out.Reset()

	// 取消删除提案消息，日志收缩；已打印的历史不得重新回显
	// Cancel deletes the proposal message and the log shrinks; history
	// already printed must not echo again.
	st.engine.Cancel(m.ID)
	st.printNewMessages()
	sched.fire()
	st.printNewMessages()

	got := out.String()
	if strings.Contains(got, "welcome aboard") {
		t.Fatalf("cancel re-echoed earlier history:\n%s", got)
	}
	if !strings.Contains(got, "No problem") {
		t.Fatalf("cancel follow-up missing:\n%s", got)
	}
	if n := strings.Count(got, "coach>"); n != 1 {
		t.Fatalf("printed %d assistant lines after cancel, want 1:\n%s", n, got)
	}
}

func TestSlashCompleterCoversCommands(t *testing.T) {
	completer := newSlashCompleter()
	candidates, _ := completer.Do([]rune("/"), 1)
	// 命令表全量 + /exit 别名 / full command table plus the /exit alias
	if len(candidates) != len(replCommands)+1 {
		t.Fatalf("completions for %q = %d, want %d", "/", len(candidates), len(replCommands)+1)
	}
}

func TestSaveCurrentConcurrentWithMetaSwitch(t *testing.T) {
	st, _, _ := newREPLState()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "flowai.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	st.store = store

	meta := storage.ConversationMeta{ID: storage.NewConversationID()}
	if err := store.CreateConversation(meta); err != nil {
		t.Fatalf("create conversation: %v", err)
	}
	st.setMeta(meta)
	st.engine.Log().Append(conversation.SenderUser, "plan my day", nil)

	// 定时器 goroutine 保存的同时 REPL 线程切换会话元数据
	// saveCurrent runs on timer goroutines while the REPL loop switches
	// conversation metadata; -race must stay silent.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			st.saveCurrent()
		}
	}()
	for i := 0; i < 20; i++ {
		next := storage.ConversationMeta{ID: storage.NewConversationID()}
		if err := store.CreateConversation(next); err != nil {
			t.Errorf("create conversation: %v", err)
			break
		}
		st.setMeta(next)
	}
	<-done
	st.saveCurrent()

	messages, err := store.LoadMessages(st.meta.ID)
	if err != nil {
		t.Fatalf("load messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Text != "plan my day" {
		t.Fatalf("messages under final conversation = %+v", messages)
	}
}
