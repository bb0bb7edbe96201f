package gofidl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML project file form of the processor options.
//
//	search_paths: [models, /usr/share/franca]
//	env_search_paths: true
//	log_level: debug
type Config struct {
	SearchPaths    []string `yaml:"search_paths"`
	EnvSearchPaths bool     `yaml:"env_search_paths"`
	LogLevel       string   `yaml:"log_level"`
}

// DefaultLogLevel is used when a config file does not set log_level.
const DefaultLogLevel = "info"

// LoadConfig reads a YAML config file. Unknown keys are rejected and
// relative search paths are taken relative to the file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i, dir := range cfg.SearchPaths {
		if !filepath.IsAbs(dir) {
			cfg.SearchPaths[i] = filepath.Join(base, dir)
		}
	}
	return cfg, nil
}

// ParseConfig decodes YAML config data and applies defaults. Relative
// search paths are left as written.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseLogLevel maps trace, debug, info, warn and error to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q", s)
}

// Options converts the config into processor options. When out is
// non-nil, a text logger writing to out at the configured level is
// installed.
func (c *Config) Options(out io.Writer) []Option {
	var opts []Option
	if out != nil {
		level, err := ParseLogLevel(c.LogLevel)
		if err != nil {
			level = slog.LevelInfo
		}
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
		opts = append(opts, WithLogger(slog.New(h)))
	}
	if len(c.SearchPaths) > 0 {
		opts = append(opts, WithSearchPaths(c.SearchPaths...))
	}
	if c.EnvSearchPaths {
		opts = append(opts, WithEnvSearchPaths())
	}
	return opts
}
