package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/pokerpackets/internal/logging"
	"github.com/danmuck/pokerpackets/internal/protocol"
	"github.com/danmuck/pokerpackets/internal/protocol/wire"
)

// Config drives packetctl: logging, decode limits and extension messages
// registered on top of the built-in catalog.
type Config struct {
	LogLevel string
	MaxDepth int
	Messages []MessageConfig
}

// MessageConfig declares one extension message. Parent names an already
// registered message whose fields come first; empty means no parent.
type MessageConfig struct {
	ID     int           `toml:"id"`
	Name   string        `toml:"name"`
	Parent string        `toml:"parent"`
	Fields []FieldConfig `toml:"fields"`
}

// FieldConfig is one appended field. Type is a wire type code such as
// "I" or "Bl". Default is optional and coerced to the wire type.
type FieldConfig struct {
	Name    string `toml:"name"`
	Type    string `toml:"type"`
	Default any    `toml:"default"`
}

type fileConfig struct {
	LogLevel string          `toml:"log_level"`
	MaxDepth int             `toml:"max_depth"`
	Messages []MessageConfig `toml:"messages"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		MaxDepth: protocol.DefaultLimits().MaxDepth,
		Messages: []MessageConfig{},
	}
}

// Load reads path over Default. Keys absent from the file keep their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load packetctl config: %w", err)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("messages") {
		cfg.Messages = raw.Messages
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("packetctl config (%s): %w", path, err)
	}
	return cfg, nil
}

// Limits returns the codec limits the config asks for.
func (c Config) Limits() protocol.Limits {
	return protocol.Limits{MaxDepth: c.MaxDepth}
}

func Validate(cfg Config) error {
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if cfg.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", cfg.MaxDepth)
	}
	for i, m := range cfg.Messages {
		if err := ValidateMessage(m); err != nil {
			return fmt.Errorf("messages[%d] invalid: %w", i, err)
		}
	}
	return nil
}

// ValidateMessage checks a declaration on its own. Conflicts with other
// messages are reported at registration.
func ValidateMessage(m MessageConfig) error {
	if m.ID < 0 || m.ID > 255 {
		return fmt.Errorf("id %d outside 0-255", m.ID)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	for i, f := range m.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("fields[%d]: name is required", i)
		}
		if _, err := wire.ParseType(f.Type); err != nil {
			return fmt.Errorf("fields[%d] %s: %w", i, f.Name, err)
		}
	}
	return nil
}
