package commands

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/swipedeck/pkg/embedded"
)

const twoCardDeck = "title: Embedded\ncards:\n  - name: a\n  - name: b\n"

// useEmbedded 用内存文件系统替换嵌入资源，测试结束后恢复为未初始化
func useEmbedded(t *testing.T, files fstest.MapFS) {
	t.Helper()
	embedded.Init(files)
	t.Cleanup(func() { embedded.Init(nil) })
}

// captureLog 把 log 输出重定向到缓冲区
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})
	return &buf
}

func TestLoadDeck_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte("title: Mine\ncards:\n  - name: One\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadDeck(path)
	if err != nil {
		t.Fatalf("loadDeck() error = %v", err)
	}
	if cfg.Title != "Mine" || len(cfg.Cards) != 1 {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := loadDeck(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should return error")
	}
}

// TestLoadDeck_Fallback 没有可用的嵌入卡片堆时使用内置卡片堆
func TestLoadDeck_Fallback(t *testing.T) {
	tests := []struct {
		name      string
		files     fstest.MapFS
		wantTitle string
		wantCards int
	}{
		{"未初始化", nil, "Swipe Deck", 4},
		{"没有嵌入文件", fstest.MapFS{}, "Swipe Deck", 4},
		{"嵌入卡片堆", fstest.MapFS{"data/deck.yaml": {Data: []byte(twoCardDeck)}}, "Embedded", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.files != nil {
				useEmbedded(t, tt.files)
			}
			cfg, err := loadDeck("")
			if err != nil {
				t.Fatalf("loadDeck() error = %v", err)
			}
			if cfg.Title != tt.wantTitle || len(cfg.Cards) != tt.wantCards {
				t.Errorf("cfg = %q with %d cards, want %q with %d", cfg.Title, len(cfg.Cards), tt.wantTitle, tt.wantCards)
			}
		})
	}

	t.Run("嵌入卡片堆无效", func(t *testing.T) {
		useEmbedded(t, fstest.MapFS{"data/deck.yaml": {Data: []byte("cards: []\n")}})
		if _, err := loadDeck(""); err == nil {
			t.Error("invalid embedded deck should return error")
		}
	})
}

// TestPrepareDeck_Logging 没有 --verbose 时加载卡片堆不输出日志
func TestPrepareDeck_Logging(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"默认静默", false, false},
		{"详细日志", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			verbose, deckPath, deck = tt.verbose, "", nil
			t.Cleanup(func() { verbose = false })

			if err := prepareDeck(); err != nil {
				t.Fatalf("prepareDeck() error = %v", err)
			}
			if deck == nil || len(deck.Cards) != 4 {
				t.Fatalf("deck = %+v", deck)
			}
			if got := strings.Contains(buf.String(), "[CLI]"); got != tt.wantLog {
				t.Errorf("log output = %q, want [CLI] logged: %v", buf.String(), tt.wantLog)
			}
		})
	}
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("cards:\n  - name: a\n  - name: b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("cards: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		embedded fstest.MapFS
		args     []string
		wantErr  bool
		wantOut  string
	}{
		{"有效配置", nil, []string{good}, false, "2 cards"},
		{"空卡片堆", nil, []string{bad}, true, ""},
		{"参数过多", nil, []string{good, bad}, true, ""},
		{"嵌入资源未初始化", nil, []string{}, true, ""},
		{"检查嵌入卡片堆", fstest.MapFS{"data/deck.yaml": {Data: []byte(twoCardDeck)}}, []string{}, false, `data/deck.yaml: "Embedded", 2 cards`},
		{"没有嵌入卡片堆", fstest.MapFS{"data/readme.txt": {Data: []byte("x")}}, []string{}, true, ""},
		{"嵌入卡片堆无效", fstest.MapFS{"data/deck.yaml": {Data: []byte("cards: []\n")}}, []string{}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.embedded != nil {
				useEmbedded(t, tt.embedded)
			}
			cmd := newRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(append([]string{"validate"}, tt.args...))

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output = %q, want containing %q", out.String(), tt.wantOut)
			}
		})
	}
}
