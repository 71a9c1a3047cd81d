package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kyaoi/mdsheet/internal/config"
	"github.com/kyaoi/mdsheet/internal/sheet"
)

func TestLoadInitialStateSample(t *testing.T) {
	state, err := LoadInitialState("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Title != "mdsheet" || state.RawContent == "" || state.ActiveAbsPath != "" {
		t.Fatalf("unexpected sample state %+v", state)
	}
}

func TestLoadInitialStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("---\ntitle: Doc\n---\nhello\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	state, err := LoadInitialState(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Title != "Doc" || strings.TrimSpace(state.RawContent) != "hello" || state.ActiveAbsPath != path {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestNewIntegrator(t *testing.T) {
	cfg := config.Config{
		Spring: config.SpringConfig{Model: config.ModelLinear, Frequency: 6, Damping: 1},
		UI:     config.UIConfig{FPS: 60},
	}
	if _, ok := NewIntegrator(cfg).(sheet.LinearSpring); !ok {
		t.Fatal("expected linear spring")
	}
	cfg.Spring.Model = config.ModelDamped
	if _, ok := NewIntegrator(cfg).(*sheet.DampedSpring); !ok {
		t.Fatal("expected damped spring")
	}
}
