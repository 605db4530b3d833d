// Package config loads and saves the player's settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"go.uber.org/zap/zapcore"

	"chaos-chess/engine"
	"chaos-chess/rules"
)

var (
	cfgFile = "chaos-chess/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type ChaosConfig struct {
	MaxWinTurn       int     `json:"max_win_turn"`
	CorruptionTurns  int     `json:"corruption_turns"`
	CaptureThreshold float64 `json:"capture_threshold"`
}

type Config struct {
	Strategy    string      `json:"strategy"`
	SearchDepth int         `json:"search_depth"`
	Seed        uint64      `json:"seed"` // 0 seeds from the clock
	HumanColor  string      `json:"human_color"`
	Chaos       ChaosConfig `json:"chaos"`
	LogLevel    string      `json:"log_level"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	chaos := engine.DefaultChaosConfig()
	return Config{
		Strategy:    engine.StrategySearch.String(),
		SearchDepth: engine.DefaultDepth,
		HumanColor:  rules.White.String(),
		Chaos: ChaosConfig{
			MaxWinTurn:       chaos.MaxWinTurn,
			CorruptionTurns:  chaos.CorruptionTurns,
			CaptureThreshold: chaos.CaptureThreshold,
		},
		LogLevel: "warn",
	}
}

// Load overlays the config file found in the XDG config dirs, if any, on
// the defaults and validates the result.
func Load() (*Config, error) {
	config := DefaultConfig()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if _, err := engine.ParseStrategy(c.Strategy); err != nil {
		return &InvalidConfig{fmt.Sprintf("strategy %q is not one of random, search, chaos", c.Strategy)}
	}
	if c.SearchDepth < 1 || c.SearchDepth > 8 {
		return &InvalidConfig{fmt.Sprintf("search_depth %d must be between 1 and 8", c.SearchDepth)}
	}
	if _, err := ParseColor(c.HumanColor); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Chaos.MaxWinTurn < 1 {
		return &InvalidConfig{"chaos.max_win_turn must be positive"}
	}
	if c.Chaos.CorruptionTurns < 1 {
		return &InvalidConfig{"chaos.corruption_turns must be positive"}
	}
	if c.Chaos.CaptureThreshold < 0 || c.Chaos.CaptureThreshold > 1 {
		return &InvalidConfig{"chaos.capture_threshold must be within [0, 1]"}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("log_level %q is not a zap level", c.LogLevel)}
	}
	return nil
}

// Save writes c to the user's XDG config dir and returns the path used.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

// SelectorConfig converts c into engine settings. c must be valid.
func (c *Config) SelectorConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Strategy, _ = engine.ParseStrategy(c.Strategy)
	cfg.Depth = c.SearchDepth
	cfg.Chaos = engine.ChaosConfig{
		MaxWinTurn:       c.Chaos.MaxWinTurn,
		CorruptionTurns:  c.Chaos.CorruptionTurns,
		CaptureThreshold: c.Chaos.CaptureThreshold,
	}
	return cfg
}

// Human returns the configured human color. c must be valid.
func (c *Config) Human() rules.Color {
	color, _ := ParseColor(c.HumanColor)
	return color
}

// Level returns the configured log level. c must be valid.
func (c *Config) Level() zapcore.Level {
	lvl, _ := zapcore.ParseLevel(c.LogLevel)
	return lvl
}

// ParseColor accepts "white", "black", "w" or "b".
func ParseColor(name string) (rules.Color, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white", "w":
		return rules.White, nil
	case "black", "b":
		return rules.Black, nil
	default:
		return rules.White, fmt.Errorf("color %q is not white or black", name)
	}
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
