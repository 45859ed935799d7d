package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the user-level configuration, stored as YAML.
type Config struct {
	// BaseURL overrides the LeetCode site (e.g. "https://leetcode.cn").
	BaseURL string `yaml:"base_url,omitempty"`

	// LogLevel is one of debug, info, warn, error (default: warn).
	LogLevel string `yaml:"log_level,omitempty"`

	LeetCode LeetCodeAuth `yaml:"leetcode"`
}

// LeetCodeAuth holds LeetCode auth secrets. Treat as sensitive.
type LeetCodeAuth struct {
	// Session is the value of the LEETCODE_SESSION cookie.
	Session string `yaml:"session"`

	// CSRFTOKEN is the value of the csrftoken cookie.
	CSRFTOKEN string `yaml:"csrftoken"`
}

// Store loads and saves config. Implementations must protect secrets at rest
// and must not log or print secret values.
type Store interface {
	Load(ctx context.Context) (Config, error)
	Save(ctx context.Context, cfg Config) error
}

// FileStore keeps the config in a single 0600 file.
type FileStore struct {
	Path string
	fs   afero.Fs
}

func NewFileStore(path string) *FileStore {
	return NewFileStoreFS(afero.NewOsFs(), path)
}

func NewFileStoreFS(fs afero.Fs, path string) *FileStore {
	return &FileStore{Path: path, fs: fs}
}

// Load reads the config. A missing file returns an error wrapping os.ErrNotExist.
func (s *FileStore) Load(ctx context.Context) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	fi, err := s.fs.Stat(s.Path)
	if err != nil {
		return Config{}, fmt.Errorf("stat config %s: %w", s.Path, err)
	}
	if perm := fi.Mode().Perm(); perm&0o077 != 0 {
		return Config{}, fmt.Errorf("config %s has insecure permissions %#o (want 0600)", s.Path, perm)
	}

	b, err := afero.ReadFile(s.fs, s.Path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", s.Path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", s.Path, err)
	}
	return cfg, nil
}

func (s *FileStore) Save(ctx context.Context, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	// Write to a sibling and rename so a crash never leaves a truncated config.
	tmp := s.Path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, b, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", tmp, err)
	}
	if err := s.fs.Chmod(tmp, 0o600); err != nil {
		return fmt.Errorf("chmod config %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("rename config %s: %w", s.Path, err)
	}
	return nil
}
