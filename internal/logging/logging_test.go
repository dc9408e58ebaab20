package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(dir, false, 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "flowai.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file missing entry: %s", data)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	logger, err := New(dir, true, 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = logger.Sync()
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("log directory not created: %v", err)
	}
}

func TestRotateIfOver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flowai.log")
	if err := os.WriteFile(path, make([]byte, 2*1024*1024), 0o644); err != nil {
		t.Fatalf("write seed log: %v", err)
	}

	rotateIfOver(path, 1)
	if _, err := os.Stat(path + ".old"); err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("original should be moved away, stat err = %v", err)
	}

	// 小文件不轮转 / Small files stay in place
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write small log: %v", err)
	}
	rotateIfOver(path, 1)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("small file should not rotate: %v", err)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	if logger == nil {
		t.Fatal("Nop() should not be nil")
	}
	logger.Info("discarded")
}
