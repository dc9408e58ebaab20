package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 创建写入文件的结构化日志器，TUI 模式下 stdout 被界面占用。
// 旧日志超过 maxMB 时先轮转为 .old。
// New builds a structured logger writing to a file; stdout belongs to
// the interactive UI so logs never go there. An existing log over maxMB
// is rotated to .old first.
func New(dir string, debug bool, maxMB int) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	logPath := filepath.Join(dir, "flowai.log")
	rotateIfOver(logPath, maxMB)

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Nop 返回丢弃所有输出的日志器 / Nop returns a logger that discards everything
func Nop() *zap.Logger {
	return zap.NewNop()
}

func rotateIfOver(path string, maxMB int) {
	if maxMB <= 0 {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Size() < int64(maxMB)*1024*1024 {
		return
	}
	_ = os.Rename(path, path+".old")
}
