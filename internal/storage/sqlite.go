package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flowai/internal/conversation"
	"flowai/internal/habit"
	"flowai/internal/task"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

// SQLiteStore 基于 SQLite (WAL 模式) 的持久化实现
// SQLiteStore implements Store using SQLite with WAL mode
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore 创建并初始化 SQLite 数据库
// NewSQLiteStore creates and initializes a SQLite database
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// 启用 WAL 模式和优化 PRAGMA / Enable WAL and performance PRAGMAs
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	store := &SQLiteStore{db: db, path: dbPath}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS messages (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		seq             INTEGER NOT NULL,
		msg_id          INTEGER NOT NULL,
		sender          TEXT NOT NULL,
		content         TEXT NOT NULL DEFAULT '',
		action          TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		UNIQUE(conversation_id, seq)
	);

	CREATE TABLE IF NOT EXISTS habits (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		date       TEXT NOT NULL DEFAULT '',
		time       TEXT NOT NULL DEFAULT '',
		completed  INTEGER NOT NULL DEFAULT 0,
		reminder   INTEGER NOT NULL DEFAULT 0,
		category   TEXT NOT NULL DEFAULT '',
		priority   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, seq);
	CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close 关闭数据库连接 / Close the database connection
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// --- Conversation Operations ---

func (s *SQLiteStore) CreateConversation(meta ConversationMeta) error {
	now := nowUTC()
	if strings.TrimSpace(meta.CreatedAt) == "" {
		meta.CreatedAt = now
	}
	if strings.TrimSpace(meta.UpdatedAt) == "" {
		meta.UpdatedAt = now
	}
	_, err := s.db.Exec(`
		INSERT INTO conversations (id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		meta.ID, meta.Title, meta.CreatedAt, meta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert conversation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveConversation(meta ConversationMeta) error {
	meta.UpdatedAt = nowUTC()
	_, err := s.db.Exec(`
		UPDATE conversations SET title=?, updated_at=? WHERE id=?`,
		meta.Title, meta.UpdatedAt, meta.ID,
	)
	if err != nil {
		return fmt.Errorf("update conversation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadConversation(id string) (ConversationMeta, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ConversationMeta{}, fmt.Errorf("conversation id is empty")
	}
	row := s.db.QueryRow(`
		SELECT id, title, created_at, updated_at
		FROM conversations WHERE id=?`, id)

	var meta ConversationMeta
	err := row.Scan(&meta.ID, &meta.Title, &meta.CreatedAt, &meta.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ConversationMeta{}, fmt.Errorf("conversation not found: %s", id)
		}
		return ConversationMeta{}, fmt.Errorf("load conversation: %w", err)
	}
	return meta, nil
}

func (s *SQLiteStore) ListConversations() ([]ConversationMeta, error) {
	rows, err := s.db.Query(`
		SELECT id, title, created_at, updated_at
		FROM conversations ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var metas []ConversationMeta
	for rows.Next() {
		var meta ConversationMeta
		if err := rows.Scan(&meta.ID, &meta.Title, &meta.CreatedAt, &meta.UpdatedAt); err != nil {
			continue
		}
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// --- Message Operations ---

func (s *SQLiteStore) SaveMessages(conversationID string, messages []conversation.Message) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 清除旧消息 / Clear old messages
	if _, err := tx.Exec("DELETE FROM messages WHERE conversation_id=?", conversationID); err != nil {
		return fmt.Errorf("delete old messages: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO messages (conversation_id, seq, msg_id, sender, content, action, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := nowUTC()
	for i, msg := range messages {
		actionJSON := ""
		if msg.Action != nil {
			data, marshalErr := json.Marshal(msg.Action)
			if marshalErr == nil {
				actionJSON = string(data)
			}
		}
		createdAt := now
		if !msg.Timestamp.IsZero() {
			createdAt = msg.Timestamp.UTC().Format(time.RFC3339)
		}
		if _, err := stmt.Exec(conversationID, i, msg.ID, string(msg.Sender),
			msg.Text, actionJSON, createdAt); err != nil {
			return fmt.Errorf("insert message %d: %w", i, err)
		}
	}

	// 更新会话时间戳 / Update conversation timestamp
	if _, err := tx.Exec("UPDATE conversations SET updated_at=? WHERE id=?", now, conversationID); err != nil {
		return fmt.Errorf("update conversation timestamp: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadMessages(conversationID string) ([]conversation.Message, error) {
	rows, err := s.db.Query(`
		SELECT msg_id, sender, content, action, created_at
		FROM messages WHERE conversation_id=? ORDER BY seq`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []conversation.Message
	for rows.Next() {
		var msg conversation.Message
		var sender, actionJSON, createdAt string
		if err := rows.Scan(&msg.ID, &sender, &msg.Text, &actionJSON, &createdAt); err != nil {
			continue
		}
		msg.Sender = conversation.Sender(sender)
		if ts, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			msg.Timestamp = ts
		}
		if actionJSON != "" {
			var action conversation.PendingAction
			if err := json.Unmarshal([]byte(actionJSON), &action); err == nil {
				msg.Action = &action
			}
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// --- Habit Operations ---

func (s *SQLiteStore) ReplaceHabits(habits []habit.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("delete old habits: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO habits (id, title, category, completed, created_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, h := range habits {
		title := strings.TrimSpace(h.Title)
		if title == "" {
			continue
		}
		id := strings.TrimSpace(h.ID)
		if id == "" {
			id = fmt.Sprintf("habit_%d", i+1)
		}
		createdAt := nowUTC()
		if !h.CreatedAt.IsZero() {
			createdAt = h.CreatedAt.UTC().Format(time.RFC3339)
		}
		if _, err := stmt.Exec(id, title, string(h.Category), boolToInt(h.Completed), createdAt); err != nil {
			return fmt.Errorf("insert habit %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListHabits() ([]habit.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, title, category, completed, created_at FROM habits ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query habits: %w", err)
	}
	defer rows.Close()

	var habits []habit.Habit
	for rows.Next() {
		var h habit.Habit
		var category, createdAt string
		var completed int
		if err := rows.Scan(&h.ID, &h.Title, &category, &completed, &createdAt); err != nil {
			continue
		}
		h.Category = habit.NormalizeCategory(category)
		h.Completed = completed != 0
		if ts, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			h.CreatedAt = ts
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// --- Task Operations ---

func (s *SQLiteStore) ReplaceTasks(tasks []task.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("delete old tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, title, date, time, completed, reminder, category, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		title := strings.TrimSpace(t.Title)
		if title == "" {
			continue
		}
		id := strings.TrimSpace(t.ID)
		if id == "" {
			id = fmt.Sprintf("task_%d", i+1)
		}
		date := ""
		if !t.Date.IsZero() {
			date = t.Date.Format(dateLayout)
		}
		createdAt := nowUTC()
		if !t.CreatedAt.IsZero() {
			createdAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
		if _, err := stmt.Exec(id, title, date, t.Time, boolToInt(t.Completed),
			boolToInt(t.Reminder), string(t.Category), string(t.Priority), createdAt); err != nil {
			return fmt.Errorf("insert task %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListTasks() ([]task.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, date, time, completed, reminder, category, priority, created_at
		FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var date, category, priority, createdAt string
		var completed, reminder int
		if err := rows.Scan(&t.ID, &t.Title, &date, &t.Time, &completed, &reminder,
			&category, &priority, &createdAt); err != nil {
			continue
		}
		t.Completed = completed != 0
		t.Reminder = reminder != 0
		t.Category = task.Category(category)
		t.Priority = task.Priority(priority)
		if date != "" {
			if d, parseErr := time.ParseInLocation(dateLayout, date, time.Local); parseErr == nil {
				t.Date = d
			}
		}
		if ts, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			t.CreatedAt = ts
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// --- Helpers ---

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
