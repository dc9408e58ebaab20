package i18n

import "testing"

func TestNew_English(t *testing.T) {
	i := New("en")
	if i.Locale() != "en" {
		t.Fatalf("Locale()=%q, want en", i.Locale())
	}
	got := i.T("panel.chat")
	if got != "Chat" {
		t.Fatalf("T(panel.chat)=%q, want Chat", got)
	}
}

func TestNew_Chinese(t *testing.T) {
	i := New("zh-CN")
	if i.Locale() != "zh-CN" {
		t.Fatalf("Locale()=%q, want zh-CN", i.Locale())
	}
	got := i.T("panel.chat")
	if got != "对话" {
		t.Fatalf("T(panel.chat)=%q, want 对话", got)
	}
}

func TestNew_ChineseFromLang(t *testing.T) {
	i := New("zh_CN.UTF-8")
	if i.Locale() != "zh-CN" {
		t.Fatalf("Locale()=%q, want zh-CN", i.Locale())
	}
	got := i.T("panel.habits")
	if got != "习惯" {
		t.Fatalf("T(panel.habits)=%q, want 习惯", got)
	}
}

func TestT_WithArgs(t *testing.T) {
	i := New("en")
	got := i.T("status.habits", 2, 5)
	if got != "2/5 habits done" {
		t.Fatalf("T with args=%q, want 2/5 habits done", got)
	}
}

func TestT_MissingKey(t *testing.T) {
	i := New("en")
	got := i.T("nonexistent.key")
	if got != "nonexistent.key" {
		t.Fatalf("T missing key=%q, want key itself", got)
	}
}

func TestChineseFallsBackToEnglish(t *testing.T) {
	// 中文目录缺失的键应回退到英文 / Keys missing from the Chinese
	// catalog fall back to the English text
	i := New("zh-CN")
	for key := range EnMessages {
		if i.T(key) == key {
			t.Fatalf("key %q has no translation in either catalog", key)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en_US.UTF-8", "en"},
		{"zh_CN.UTF-8", "zh-CN"},
		{"zh_TW", "zh-CN"},
		{"en", "en"},
		{"", "en"},
		{"fr_FR", "fr-FR"},
	}
	for _, tt := range tests {
		got := normalizeLocale(tt.input)
		if got != tt.expected {
			t.Errorf("normalizeLocale(%q)=%q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGlobal(t *testing.T) {
	g := Global()
	if g == nil {
		t.Fatal("Global() should not be nil")
	}
	// 应该返回同一实例 / Should return same instance
	g2 := Global()
	if g != g2 {
		t.Fatal("Global() should return same instance")
	}
}

func TestInitSurvivesGlobal(t *testing.T) {
	// Init 配置的实例不能被 Global 的惰性初始化覆盖，
	// 即使环境变量指向其他语言
	// The instance configured by Init must not be replaced by
	// Global's lazy initialization, even when env points elsewhere.
	t.Setenv("FLOWAI_LANG", "en")
	defer Init("en")

	Init("zh-CN")
	if got := T("panel.chat"); got != "对话" {
		t.Fatalf("T(panel.chat) after Init(zh-CN)=%q, want 对话", got)
	}
	if g := Global(); g.Locale() != "zh-CN" {
		t.Fatalf("Global().Locale()=%q, want zh-CN", g.Locale())
	}

	// 运行期切换语言 / Runtime language switch
	Init("en")
	if got := T("panel.chat"); got != "Chat" {
		t.Fatalf("T(panel.chat) after Init(en)=%q, want Chat", got)
	}
}
