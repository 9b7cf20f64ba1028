package skillduel

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	API     APIConfig     `toml:"api"`
	Poll    PollConfig    `toml:"poll"`
	DB      DBConfig      `toml:"db"`
	Archive ArchiveConfig `toml:"archive"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout_seconds"`
}

type PollConfig struct {
	UnreadIntervalSeconds  int `toml:"unread_interval_seconds"`
	RequestIntervalSeconds int `toml:"request_interval_seconds"`
	SearchDebounceMillis   int `toml:"search_debounce_millis"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

type ArchiveConfig struct {
	Enabled bool   `toml:"enabled"`
	Key     string `toml:"key"`
	Secret  string `toml:"secret"`
	Region  string `toml:"region"`
	Bucket  string `toml:"bucket"`
	Root    string `toml:"root"`
}

func (c *Config) applyDefaults() {
	if c.API.Timeout <= 0 {
		c.API.Timeout = 30
	}
	if c.Poll.UnreadIntervalSeconds <= 0 {
		c.Poll.UnreadIntervalSeconds = 15
	}
	if c.Poll.RequestIntervalSeconds <= 0 {
		c.Poll.RequestIntervalSeconds = 30
	}
	if c.Poll.SearchDebounceMillis <= 0 {
		c.Poll.SearchDebounceMillis = 350
	}
}

func (c *Config) UnreadInterval() time.Duration {
	return time.Duration(c.Poll.UnreadIntervalSeconds) * time.Second
}

func (c *Config) RequestInterval() time.Duration {
	return time.Duration(c.Poll.RequestIntervalSeconds) * time.Second
}

func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.Poll.SearchDebounceMillis) * time.Millisecond
}
