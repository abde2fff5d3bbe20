// Package config loads the tjp configuration file and environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variables overriding the file.
const (
	EnvToken = "TJP_TOKEN"
	EnvURL   = "TJP_URL"
)

// Config is the content of config.toml. Folders are notebook ids, see the --list-notebooks option.
type Config struct {
	Token string `toml:"token"`
	URL   string `toml:"url"`

	FolderTodo string `toml:"folder_todo"`
	FolderDone string `toml:"folder_done"`
	FolderAdd  string `toml:"folder_add"`

	// Editor is the command used by the edit command. Falls back to $EDITOR, then vim.
	Editor string `toml:"editor"`

	// WireLog, if set, is a file where all requests and responses are appended.
	WireLog string `toml:"wire_log"`
}

// DefaultPath returns $HOME/.config/tjp/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tjp", "config.toml"), nil
}

// Load reads the configuration file at path, then applies the environment overrides. A missing
// file is not an error; the result then only holds what the environment provides.
func Load(path string) (*Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", path).Debug("No configuration file")
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		meta, err := toml.Decode(string(data), &c)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) != 0 {
			log.WithFields(log.Fields{
				"path": path,
				"keys": undecoded,
			}).Warn("Ignoring unknown configuration keys")
		}
	}
	c.applyEnv(os.Getenv)
	c.trim()
	return &c, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvToken); v != "" {
		c.Token = v
	}
	if v := getenv(EnvURL); v != "" {
		c.URL = v
	}
}

func (c *Config) trim() {
	for _, field := range []*string{&c.Token, &c.URL, &c.FolderTodo, &c.FolderDone, &c.FolderAdd, &c.Editor, &c.WireLog} {
		*field = strings.TrimSpace(*field)
	}
}

// LoadEnv loads variables from the given .env files (by default, .env in the working directory)
// into the environment, without overriding variables already set. Missing files are skipped.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		err := godotenv.Load(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
		log.WithField("path", name).Debug("Loaded environment file")
	}
	return nil
}
