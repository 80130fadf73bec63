package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level    string `yaml:"level"`
	ToFile   bool   `yaml:"to_file"`
	Filename string `yaml:"filename"`
}

type TIBEConfig struct {
	Parties        uint32 `yaml:"parties"`
	Threshold      uint32 `yaml:"threshold"`
	Identity       string `yaml:"identity"`
	Message        string `yaml:"message"`
	RequestTimeout int    `yaml:"request_timeout"` // milliseconds
}

type Config struct {
	Log  *LogConfig  `yaml:"log"`
	TIBE *TIBEConfig `yaml:"tibe"`
}

func NewConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Log == nil {
		return fmt.Errorf("config: missing log section")
	}
	if c.TIBE == nil {
		return fmt.Errorf("config: missing tibe section")
	}
	return c.TIBE.Validate()
}

func (c *TIBEConfig) Validate() error {
	if c.Parties < 1 || c.Threshold < 1 || c.Threshold > c.Parties {
		return fmt.Errorf("config: need 1 <= threshold <= parties, got threshold %d parties %d", c.Threshold, c.Parties)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: negative request timeout %d", c.RequestTimeout)
	}
	return nil
}

// Timeout returns the per-extraction deadline. Zero means none.
func (c *TIBEConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Millisecond
}

func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		ToFile: false,
	}
}

func DefaultTIBEConfig() *TIBEConfig {
	return &TIBEConfig{
		Parties:        5,
		Threshold:      3,
		Identity:       "alice@example.com",
		Message:        "hello-world",
		RequestTimeout: 2000,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Log:  DefaultLogConfig(),
		TIBE: DefaultTIBEConfig(),
	}
}
