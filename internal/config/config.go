package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type StorageConfig struct {
	BaseDir  string `json:"base_dir"`
	LogMaxMB int    `json:"log_max_mb"`
}

type CoachConfig struct {
	// ReplyDelayMS 助手首条回复的延迟；FollowupDelayMS 确认/取消后跟帖的延迟。
	// ReplyDelayMS delays the assistant's first reply; FollowupDelayMS the
	// follow-up after confirm/cancel.
	ReplyDelayMS    int    `json:"reply_delay_ms"`
	FollowupDelayMS int    `json:"followup_delay_ms"`
	Locale          string `json:"locale"`
}

type UIConfig struct {
	Theme     string `json:"theme"`
	AltScreen bool   `json:"alt_screen"`
}

type RuntimeConfig struct {
	// SeedDemoData 首次启动时写入示例习惯/任务
	// SeedDemoData seeds sample habits/tasks on first start
	SeedDemoData bool `json:"seed_demo_data"`
	TitleMaxLen  int  `json:"title_max_len"`
}

type Config struct {
	Storage StorageConfig `json:"storage"`
	Coach   CoachConfig   `json:"coach"`
	UI      UIConfig      `json:"ui"`
	Runtime RuntimeConfig `json:"runtime"`
}

type fileCoachConfig struct {
	ReplyDelayMS    *int    `json:"reply_delay_ms"`
	FollowupDelayMS *int    `json:"followup_delay_ms"`
	Locale          *string `json:"locale"`
}

type fileUIConfig struct {
	Theme     *string `json:"theme"`
	AltScreen *bool   `json:"alt_screen"`
}

type fileRuntimeConfig struct {
	SeedDemoData *bool `json:"seed_demo_data"`
	TitleMaxLen  *int  `json:"title_max_len"`
}

type fileConfig struct {
	Storage *StorageConfig     `json:"storage"`
	Coach   *fileCoachConfig   `json:"coach"`
	UI      *fileUIConfig      `json:"ui"`
	Runtime *fileRuntimeConfig `json:"runtime"`
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			BaseDir:  "~/.flowai",
			LogMaxMB: 20,
		},
		Coach: CoachConfig{
			ReplyDelayMS:    1000,
			FollowupDelayMS: 500,
		},
		UI: UIConfig{
			Theme:     "dark",
			AltScreen: true,
		},
		Runtime: RuntimeConfig{
			SeedDemoData: true,
			TitleMaxLen:  48,
		},
	}
}

// Load 读取配置：默认值 ← 全局文件 ← 项目文件/显式路径 ← 环境变量
// Load resolves config: defaults ← global file ← project file/explicit path ← env
func Load(path string) (Config, error) {
	cfg := Default()

	for _, globalPath := range globalConfigPaths() {
		if err := mergeFromFile(&cfg, globalPath); err != nil {
			return Config{}, err
		}
	}

	resolvedPath := strings.TrimSpace(path)
	if envPath := strings.TrimSpace(os.Getenv("FLOWAI_CONFIG_PATH")); envPath != "" {
		resolvedPath = envPath
	}
	if resolvedPath == "" {
		resolvedPath = findProjectConfigPath()
	}
	if err := mergeFromFile(&cfg, resolvedPath); err != nil {
		return Config{}, err
	}

	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	return applyEnv(cfg)
}

func globalConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(home, ".flowai", "config.json")}
}

func findProjectConfigPath() string {
	candidates := []string{
		"flowai.config.json",
		".flowai/config.json",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func mergeFromFile(cfg *Config, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", resolved, err)
	}

	cleaned := stripJSONComments(data)
	var fileCfg fileConfig
	if err := json.Unmarshal(cleaned, &fileCfg); err != nil {
		return fmt.Errorf("parse config %q: %w", resolved, err)
	}
	applyFileConfig(cfg, fileCfg)
	return nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.Storage != nil {
		if strings.TrimSpace(fc.Storage.BaseDir) != "" {
			cfg.Storage.BaseDir = fc.Storage.BaseDir
		}
		if fc.Storage.LogMaxMB > 0 {
			cfg.Storage.LogMaxMB = fc.Storage.LogMaxMB
		}
	}
	if fc.Coach != nil {
		if fc.Coach.ReplyDelayMS != nil {
			cfg.Coach.ReplyDelayMS = *fc.Coach.ReplyDelayMS
		}
		if fc.Coach.FollowupDelayMS != nil {
			cfg.Coach.FollowupDelayMS = *fc.Coach.FollowupDelayMS
		}
		if fc.Coach.Locale != nil {
			cfg.Coach.Locale = *fc.Coach.Locale
		}
	}
	if fc.UI != nil {
		if fc.UI.Theme != nil {
			cfg.UI.Theme = *fc.UI.Theme
		}
		if fc.UI.AltScreen != nil {
			cfg.UI.AltScreen = *fc.UI.AltScreen
		}
	}
	if fc.Runtime != nil {
		if fc.Runtime.SeedDemoData != nil {
			cfg.Runtime.SeedDemoData = *fc.Runtime.SeedDemoData
		}
		if fc.Runtime.TitleMaxLen != nil {
			cfg.Runtime.TitleMaxLen = *fc.Runtime.TitleMaxLen
		}
	}
}

func normalize(cfg *Config) error {
	if cfg.Coach.ReplyDelayMS < 0 {
		cfg.Coach.ReplyDelayMS = Default().Coach.ReplyDelayMS
	}
	if cfg.Coach.FollowupDelayMS < 0 {
		cfg.Coach.FollowupDelayMS = Default().Coach.FollowupDelayMS
	}
	cfg.Coach.Locale = strings.TrimSpace(cfg.Coach.Locale)

	switch strings.ToLower(strings.TrimSpace(cfg.UI.Theme)) {
	case "light":
		cfg.UI.Theme = "light"
	default:
		cfg.UI.Theme = "dark"
	}

	if cfg.Runtime.TitleMaxLen <= 0 {
		cfg.Runtime.TitleMaxLen = Default().Runtime.TitleMaxLen
	}

	baseDir, err := expandPath(cfg.Storage.BaseDir)
	if err != nil {
		return err
	}
	cfg.Storage.BaseDir = baseDir
	if cfg.Storage.LogMaxMB <= 0 {
		cfg.Storage.LogMaxMB = Default().Storage.LogMaxMB
	}
	return nil
}

func applyEnv(cfg Config) (Config, error) {
	if v := strings.TrimSpace(os.Getenv("FLOWAI_BASE_DIR")); v != "" {
		cfg.Storage.BaseDir = v
	}
	if v := strings.TrimSpace(os.Getenv("FLOWAI_LANG")); v != "" {
		cfg.Coach.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv("FLOWAI_REPLY_DELAY_MS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid FLOWAI_REPLY_DELAY_MS: %q", v)
		}
		cfg.Coach.ReplyDelayMS = n
	}
	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return filepath.Abs(path)
}

func stripJSONComments(data []byte) []byte {
	const (
		stateNormal = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	escaped := false
	out := bytes.Buffer{}

	for i := 0; i < len(data); i++ {
		c := data[i]
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch state {
		case stateNormal:
			if c == '"' {
				state = stateString
				out.WriteByte(c)
				continue
			}
			if c == '/' && next == '/' {
				state = stateLineComment
				i++
				continue
			}
			if c == '/' && next == '*' {
				state = stateBlockComment
				i++
				continue
			}
			out.WriteByte(c)
		case stateString:
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				out.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateNormal
				i++
			}
		}
	}

	return out.Bytes()
}
