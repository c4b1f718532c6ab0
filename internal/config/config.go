// Package config loads the whisperd daemon configuration from TOML.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Daemon is the whisperd configuration.
type Daemon struct {
	ListenAddr string `toml:"listen_addr"`
	StateFile  string `toml:"state_file"`
	EventLog   string `toml:"event_log"` // empty = stdout
	TokenTag   string `toml:"token_tag"`
	Owner      string `toml:"owner"`
	LogLevel   string `toml:"log_level"`
}

// Default returns the configuration whisperd runs with when no file is
// given.
func Default() Daemon {
	return Daemon{
		ListenAddr: ":8551",
		StateFile:  "whisper-state.json",
		TokenTag:   "NEAR",
		Owner:      "whisperd.operator",
		LogLevel:   "info",
	}
}

// Load reads path and fills unset fields with defaults.
func Load(path string) (Daemon, error) {
	var cfg Daemon
	data, err := os.ReadFile(path)
	if err != nil {
		return Daemon{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Daemon{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	def := Default()
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = def.ListenAddr
	}
	if cfg.StateFile == "" {
		cfg.StateFile = def.StateFile
	}
	if cfg.TokenTag == "" {
		cfg.TokenTag = def.TokenTag
	}
	if cfg.Owner == "" {
		cfg.Owner = def.Owner
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	return cfg, nil
}
