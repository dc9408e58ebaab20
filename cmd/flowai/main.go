package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"flowai/internal/coach"
	"flowai/internal/config"
	"flowai/internal/conversation"
	"flowai/internal/habit"
	"flowai/internal/i18n"
	"flowai/internal/logging"
	"flowai/internal/storage"
	"flowai/internal/task"
	"flowai/internal/tui"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

// appState 把 REPL 命令需要的所有协作对象收在一起
// appState gathers everything the REPL commands operate on
type appState struct {
	cfg    config.Config
	store  storage.Store
	engine *conversation.Engine
	habits *habit.Tracker
	tasks  *task.List
	coach  *coach.Responder
	cursor *task.DayCursor
	logger *zap.Logger
	out    io.Writer

	// mu 保护 printed、meta 和保存；延迟回复来自定时器 goroutine
	// mu guards printed, meta and saving; delayed replies arrive on
	// timer goroutines.
	mu      sync.Mutex
	meta    storage.ConversationMeta
	printed int
}

func main() {
	var (
		configPath string
		tuiMode    bool
		debug      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config JSON/JSONC")
	flag.BoolVar(&tuiMode, "tui", false, "Start the full-screen interface")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	i18n.Init(cfg.Coach.Locale)

	logger, err := logging.New(filepath.Join(cfg.Storage.BaseDir, "logs"), debug, cfg.Storage.LogMaxMB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logging failed, continuing without: %v\n", err)
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()

	store, err := storage.NewSQLiteStore(filepath.Join(cfg.Storage.BaseDir, "flowai.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init storage failed: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	habits := habit.NewTracker()
	tasks := task.NewList()
	loadedHabits, err := store.ListHabits()
	if err != nil {
		logger.Warn("load habits", zap.Error(err))
	}
	loadedTasks, err := store.ListTasks()
	if err != nil {
		logger.Warn("load tasks", zap.Error(err))
	}
	if len(loadedHabits) == 0 && len(loadedTasks) == 0 && cfg.Runtime.SeedDemoData {
		seedHabits(habits)
		seedTasks(tasks, time.Now())
	} else {
		habits.Replace(loadedHabits)
		tasks.Replace(loadedTasks)
	}

	cursor := task.NewDayCursor(time.Now)
	responder := coach.NewResponder(habits)

	st := &appState{
		cfg:    cfg,
		store:  store,
		habits: habits,
		tasks:  tasks,
		coach:  responder,
		cursor: cursor,
		logger: logger,
		out:    os.Stdout,
	}

	st.engine = conversation.NewEngine(conversation.Options{
		Tasks:         tasks,
		Habits:        habits,
		Responder:     responder,
		CurrentDate:   cursor.Day,
		ReplyDelay:    time.Duration(cfg.Coach.ReplyDelayMS) * time.Millisecond,
		FollowupDelay: time.Duration(cfg.Coach.FollowupDelayMS) * time.Millisecond,
	})

	meta := storage.ConversationMeta{ID: storage.NewConversationID()}
	if err := store.CreateConversation(meta); err != nil {
		fmt.Fprintf(os.Stderr, "create conversation failed: %v\n", err)
		os.Exit(1)
	}
	st.setMeta(meta)

	// 开场白 / Opening greeting
	st.engine.Log().Append(conversation.SenderAssistant, greetingText, nil)

	logger.Info("flowai started",
		zap.String("conversation", meta.ID),
		zap.Bool("tui", tuiMode),
		zap.String("locale", i18n.Global().Locale()))

	if tuiMode {
		err := tui.Run(tui.Deps{
			Engine: st.engine,
			Habits: habits,
			Tasks:  tasks,
			Coach:  responder,
			Cursor: cursor,
			OnSave: st.saveCurrent,
		}, tui.ByName(cfg.UI.Theme), cfg.UI.AltScreen)
		st.saveCurrent()
		if err != nil {
			fmt.Fprintf(os.Stderr, "tui failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runREPL(st)
}

func runREPL(st *appState) {
	inputReader, inputErr := newLineInput(filepath.Join(st.cfg.Storage.BaseDir, "repl.history"))
	if inputErr != nil {
		fmt.Fprintf(os.Stderr, "line editor unavailable, fallback to basic input: %v\n", inputErr)
	}
	defer inputReader.Close()

	fmt.Println(i18n.T("repl.welcome"))
	fmt.Println("try:")
	for _, reply := range quickReplies {
		fmt.Printf("  %s\n", reply)
	}
	printREPLCommands(os.Stdout)
	fmt.Println()
	st.printNewMessages()

	// 延迟回复经 OnChange 打印并落盘
	// Delayed replies are printed and persisted via OnChange.
	st.engine.SetOnChange(func() {
		st.printNewMessages()
		st.saveCurrent()
	})

	for {
		line, err := inputReader.ReadLine("you> ")
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(os.Stdout)
				continue
			case errors.Is(err, io.EOF):
				st.saveCurrent()
				fmt.Println(i18n.T("repl.goodbye"))
				return
			default:
				fmt.Fprintf(os.Stderr, "read input failed: %v\n", err)
				return
			}
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if handled, shouldExit := handleCommand(input, st); handled {
				if shouldExit {
					st.saveCurrent()
					fmt.Println(i18n.T("repl.goodbye"))
					return
				}
				st.saveCurrent()
				continue
			}
		}

		// y/n 针对最新未决提案 / y/n resolve the newest pending proposal
		switch strings.ToLower(input) {
		case "y", "yes":
			if m, ok := st.engine.LatestPending(); ok {
				st.engine.Confirm(m.ID)
			} else {
				fmt.Println(i18n.T("repl.no_pending"))
			}
			continue
		case "n", "no":
			if m, ok := st.engine.LatestPending(); ok {
				st.engine.Cancel(m.ID)
			} else {
				fmt.Println(i18n.T("repl.no_pending"))
			}
			continue
		}

		st.engine.Submit(input)
		st.saveCurrent()
	}
}

func (st *appState) resetPrinted() {
	st.mu.Lock()
	st.printed = 0
	st.mu.Unlock()
}

// printNewMessages 打印上次之后新增的助手消息
// printNewMessages prints assistant messages added since the last call
func (st *appState) printNewMessages() {
	st.mu.Lock()
	defer st.mu.Unlock()

	messages := st.engine.Messages()
	// 取消会从日志中间删除消息；收缩时夹紧而不是归零，
	// 否则会把整段历史重新回显
	// Cancel removes messages from the middle of the log; clamp on
	// shrink instead of resetting, or the whole history re-echoes.
	if st.printed > len(messages) {
		st.printed = len(messages)
	}
	for _, m := range messages[st.printed:] {
		if m.Sender == conversation.SenderAssistant {
			fmt.Fprintf(st.out, "coach> %s\n", m.Text)
			if m.Action != nil && m.Action.Status == conversation.StatusPending {
				printActionCard(st.out, m.Action)
			}
		}
	}
	st.printed = len(messages)
}

func printActionCard(w io.Writer, action *conversation.PendingAction) {
	switch action.Kind {
	case conversation.ActionTask:
		fmt.Fprintf(w, "       %s: %s\n", i18n.T("action.task"), action.Title)
		if action.Time != "" {
			fmt.Fprintf(w, "       %s: %s\n", i18n.T("action.time"), action.Time)
		}
		if !action.Date.IsZero() {
			fmt.Fprintf(w, "       %s: %s\n", i18n.T("action.date"), action.Date.Format("Mon, Jan 2"))
		}
		if action.Reminder {
			fmt.Fprintf(w, "       🔔 %s\n", i18n.T("action.reminder"))
		}
	case conversation.ActionHabit:
		fmt.Fprintf(w, "       %s: %s\n", i18n.T("action.habit"), action.Title)
	}
	fmt.Fprintf(w, "       %s\n", i18n.T("action.prompt"))
}

// setMeta 切换当前会话元数据
// setMeta switches the current conversation metadata
func (st *appState) setMeta(meta storage.ConversationMeta) {
	st.mu.Lock()
	st.meta = meta
	st.mu.Unlock()
}

// saveCurrent 把会话、习惯与任务整体落盘
// saveCurrent persists the conversation, habits and tasks
func (st *appState) saveCurrent() {
	st.mu.Lock()
	defer st.mu.Unlock()

	messages := st.engine.Messages()
	if err := st.store.SaveMessages(st.meta.ID, messages); err != nil {
		st.logger.Warn("save messages", zap.Error(err))
	}
	if title := storage.InferTitle(messages, st.cfg.Runtime.TitleMaxLen); title != "" && title != st.meta.Title {
		st.meta.Title = title
		if err := st.store.SaveConversation(st.meta); err != nil {
			st.logger.Warn("save conversation", zap.Error(err))
		}
	}
	if err := st.store.ReplaceHabits(st.habits.Habits()); err != nil {
		st.logger.Warn("save habits", zap.Error(err))
	}
	if err := st.store.ReplaceTasks(st.tasks.Tasks()); err != nil {
		st.logger.Warn("save tasks", zap.Error(err))
	}
}
