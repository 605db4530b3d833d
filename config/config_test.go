package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"go.uber.org/zap/zapcore"

	"chaos-chess/engine"
	"chaos-chess/rules"
)

// useConfigHome points the XDG config dirs at a temporary directory.
func useConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	return dir
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	sel := c.SelectorConfig()
	if sel.Strategy != engine.StrategySearch || sel.Depth != engine.DefaultDepth || sel.Chaos != engine.DefaultChaosConfig() {
		t.Fatalf("selector config %+v", sel)
	}
	if c.Human() != rules.White || c.Level() != zapcore.WarnLevel {
		t.Fatalf("human %v level %v", c.Human(), c.Level())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"strategy", func(c *Config) { c.Strategy = "stockfish" }},
		{"depth zero", func(c *Config) { c.SearchDepth = 0 }},
		{"depth huge", func(c *Config) { c.SearchDepth = 12 }},
		{"color", func(c *Config) { c.HumanColor = "green" }},
		{"win turn", func(c *Config) { c.Chaos.MaxWinTurn = 0 }},
		{"corruption", func(c *Config) { c.Chaos.CorruptionTurns = -3 }},
		{"threshold", func(c *Config) { c.Chaos.CaptureThreshold = 1.5 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		c := DefaultConfig()
		tt.mutate(&c)
		var invalid *InvalidConfig
		if err := c.Validate(); !errors.As(err, &invalid) {
			t.Errorf("%s: expected InvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	useConfigHome(t)
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *c != DefaultConfig() {
		t.Fatalf("got %+v want defaults", *c)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := useConfigHome(t)
	c := DefaultConfig()
	c.Strategy = "chaos"
	c.HumanColor = "black"
	c.Seed = 77
	c.Chaos.MaxWinTurn = 10

	path, err := c.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if want := filepath.Join(dir, "chaos-chess", "config.json"); path != want {
		t.Fatalf("saved to %s want %s", path, want)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != c {
		t.Fatalf("got %+v want %+v", *loaded, c)
	}
	if loaded.Human() != rules.Black || loaded.SelectorConfig().Strategy != engine.StrategyChaos {
		t.Fatalf("conversions: %v %v", loaded.Human(), loaded.SelectorConfig().Strategy)
	}
}

func TestLoadFilePartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"strategy": "random", "chaos": {"max_win_turn": 5}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Strategy != "random" || c.Chaos.MaxWinTurn != 5 {
		t.Fatalf("overlay not applied: %+v", c)
	}
	if c.SearchDepth != engine.DefaultDepth || c.Chaos.CorruptionTurns != 30 {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoadFileRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"strategy": `), 0o644); err != nil {
		t.Fatal(err)
	}
	var invalid *InvalidConfig
	if _, err := LoadFile(path); !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidConfig, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]rules.Color{"white": rules.White, "W": rules.White, " black ": rules.Black, "b": rules.Black} {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Errorf("ParseColor(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseColor("red"); err == nil {
		t.Fatalf("expected an error")
	}
}
