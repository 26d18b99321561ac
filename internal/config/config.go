// Package config handles loading, initializing, and defining the application's configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfigNotFound is returned by LoadConfig when no config file is found.
var ErrConfigNotFound = errors.New("configuration file not found")

// ErrConfigExists is returned by InitConfig when it would overwrite a file.
var ErrConfigExists = errors.New("configuration file already exists")

const (
	defaultConfigDir  = "lsnote"
	defaultConfigFile = "config.toml"
	defaultNotesFile  = "notes"
)

// Config holds the application configuration settings.
// Tags correspond to the keys in the TOML configuration file.
type Config struct {
	NotesFile string       `toml:"notes_file"`
	Icons     IconsConfig  `toml:"icons"`
	Colors    ColorsConfig `toml:"colors"`
	Git       GitConfig    `toml:"git"`
	Log       LogConfig    `toml:"log"`
}

// IconsConfig selects the glyph shown before each name.
type IconsConfig struct {
	Style      string            `toml:"style"` // "emoji" or "nerd"
	Directory  string            `toml:"directory"`
	Symlink    string            `toml:"symlink"`
	File       string            `toml:"file"`
	Executable string            `toml:"executable"`
	Extensions map[string]string `toml:"extensions"` // lowercase extension without dot
	Filenames  map[string]string `toml:"filenames"`  // lowercase full name
}

// ColorsConfig names the colors used for entry names and status glyphs.
type ColorsConfig struct {
	Directory    string `toml:"directory"`
	Symlink      string `toml:"symlink"`
	Executable   string `toml:"executable"`
	File         string `toml:"file"`
	GitModified  string `toml:"git_modified"`
	GitStaged    string `toml:"git_staged"`
	GitUntracked string `toml:"git_untracked"`
}

// GitConfig holds the status glyphs and status options.
type GitConfig struct {
	Modified    string `toml:"modified"`
	Staged      string `toml:"staged"`
	Untracked   string `toml:"untracked"`
	Ignored     string `toml:"ignored"`
	ShowIgnored bool   `toml:"show_ignored"`
}

// LogConfig controls the optional rotating log file. Logging to a file is
// off while File is empty.
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		Icons:  defaultIcons(),
		Colors: defaultColors(),
		Git:    defaultGit(),
		Log:    defaultLog(),
	}
}

// Dir returns the directory holding the config and notes files.
func Dir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(userConfigDir, defaultConfigDir), nil
}

// Path returns customPath when set, or the default config file location.
func Path(customPath string) (string, error) {
	if customPath != "" {
		return customPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultConfigFile), nil
}

// LoadConfig loads configuration from the specified path or the default location.
// Values present in the file override the defaults; everything else keeps its
// default. If the file does not exist, it returns default settings and ErrConfigNotFound.
func LoadConfig(customPath string) (Config, error) {
	cfg := DefaultConfig()
	cfg.NotesFile = defaultNotesPath()

	configPath, err := Path(customPath)
	if err != nil {
		return cfg, ErrConfigNotFound
	}

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, fmt.Errorf("error checking config path %q: %w", configPath, err)
	}

	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config file %q: %w", configPath, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize restores defaults for values left empty or invalid in the file.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.NotesFile == "" {
		c.NotesFile = defaultNotesPath()
	}

	switch strings.ToLower(c.Icons.Style) {
	case IconStyleEmoji, IconStyleNerd:
		c.Icons.Style = strings.ToLower(c.Icons.Style)
	default:
		c.Icons.Style = def.Icons.Style
	}
	fallback(&c.Icons.Directory, def.Icons.Directory)
	fallback(&c.Icons.Symlink, def.Icons.Symlink)
	fallback(&c.Icons.File, def.Icons.File)
	fallback(&c.Icons.Executable, def.Icons.Executable)
	c.Icons.Extensions = lowerKeys(c.Icons.Extensions, true)
	c.Icons.Filenames = lowerKeys(c.Icons.Filenames, false)

	fallback(&c.Colors.Directory, def.Colors.Directory)
	fallback(&c.Colors.Symlink, def.Colors.Symlink)
	fallback(&c.Colors.Executable, def.Colors.Executable)
	fallback(&c.Colors.File, def.Colors.File)
	fallback(&c.Colors.GitModified, def.Colors.GitModified)
	fallback(&c.Colors.GitStaged, def.Colors.GitStaged)
	fallback(&c.Colors.GitUntracked, def.Colors.GitUntracked)

	fallback(&c.Git.Modified, def.Git.Modified)
	fallback(&c.Git.Staged, def.Git.Staged)
	fallback(&c.Git.Untracked, def.Git.Untracked)
	fallback(&c.Git.Ignored, def.Git.Ignored)

	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if c.Log.MaxBackups < 0 {
		c.Log.MaxBackups = def.Log.MaxBackups
	}
	if c.Log.MaxAgeDays < 0 {
		c.Log.MaxAgeDays = def.Log.MaxAgeDays
	}
}

func fallback(value *string, def string) {
	if strings.TrimSpace(*value) == "" {
		*value = def
	}
}

// lowerKeys lowercases map keys. Extension keys also lose a leading dot so
// both "go" and ".go" work.
func lowerKeys(m map[string]string, isExtension bool) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		k = strings.ToLower(k)
		if isExtension {
			k = strings.TrimPrefix(k, ".")
		}
		out[k] = v
	}
	return out
}

func defaultNotesPath() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, defaultNotesFile)
}

const configHeader = `# lsnote configuration file
#
# Colors: black, red, green, yellow, blue, magenta, cyan, white
# and their bright_ variants (bright_black, bright_red, ...).
# icons.style is "emoji" (the tables below) or "nerd" (Nerd Font glyphs).
# Keys under [icons.extensions] and [icons.filenames] are matched lowercase.

`

// InitConfig writes the default configuration to the specified path or the
// default location and returns the path written. An existing file is never
// overwritten; ErrConfigExists is returned instead.
func InitConfig(customPath string) (path string, err error) {
	path, err = Path(customPath)
	if err != nil {
		return "", err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		return path, fmt.Errorf("%w at %s; delete it first if you want to regenerate", ErrConfigExists, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return path, fmt.Errorf("could not create config directory %q: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return path, fmt.Errorf("could not create config file %q: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close config file %q: %w", path, closeErr)
		}
	}()

	if _, err := file.WriteString(configHeader); err != nil {
		return path, fmt.Errorf("could not write config file %q: %w", path, err)
	}
	if err := toml.NewEncoder(file).Encode(DefaultConfig()); err != nil {
		return path, fmt.Errorf("could not encode config to TOML file %q: %w", path, err)
	}

	return path, nil
}
