// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/spf13/pflag"
)

// ErrInvalidAlphabet is returned when a tag alphabet cannot produce unique tags.
var ErrInvalidAlphabet = errors.New("invalid tag alphabet")

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Editor EditorConfig  `toml:"editor"`
	Jump   JumpConfig    `toml:"jump"`
	Theme  ThemeConfig   `toml:"theme"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	SystemClipboard bool `toml:"system_clipboard"`
}

// JumpConfig controls tag generation.
type JumpConfig struct {
	Alphabet     string `toml:"alphabet"`      // Multi-character tags, at least two letters
	LineAlphabet string `toml:"line_alphabet"` // Single-character tags for line mode
	LineMode     bool   `toml:"line_mode"`     // Start in line mode
}

// ThemeConfig points at an optional TOML theme file.
type ThemeConfig struct {
	File string `toml:"file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			SystemClipboard: SystemClipboard,
		},
		Jump: JumpConfig{
			Alphabet:     DefaultAlphabet,
			LineAlphabet: DefaultLineAlphabet,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" if the
// user config directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// DefaultLogPath returns where the interactive session logs when no log
// file is configured. The terminal is busy drawing, so stderr is unusable.
func DefaultLogPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), DefaultLogFileName)
	}
	return filepath.Join(cacheDir, AppName, DefaultLogFileName)
}

// loadFromFile decodes a TOML file over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		logger.Debugf("Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	logger.Infof("Loaded configuration from: %s", filePath)
	return nil
}

// ValidateAlphabet checks that an alphabet holds at least min distinct letters.
func ValidateAlphabet(alphabet string, min int) error {
	seen := make(map[rune]bool)
	for _, r := range alphabet {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q contains non-letter %q", ErrInvalidAlphabet, alphabet, r)
		}
		if seen[r] {
			return fmt.Errorf("%w: %q repeats %q", ErrInvalidAlphabet, alphabet, r)
		}
		seen[r] = true
	}
	if len(seen) < min {
		return fmt.Errorf("%w: %q needs at least %d letters", ErrInvalidAlphabet, alphabet, min)
	}
	return nil
}

// validate resets invalid values to defaults and rejects unusable alphabets.
func (c *Config) validate() error {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		logger.Warnf("Config validation: Invalid tab_width %d, using default %d", c.Editor.TabWidth, defaults.Editor.TabWidth)
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	c.Jump.Alphabet = strings.ToLower(strings.TrimSpace(c.Jump.Alphabet))
	c.Jump.LineAlphabet = strings.ToLower(strings.TrimSpace(c.Jump.LineAlphabet))
	if c.Jump.Alphabet == "" {
		c.Jump.Alphabet = defaults.Jump.Alphabet
	}
	if c.Jump.LineAlphabet == "" {
		c.Jump.LineAlphabet = defaults.Jump.LineAlphabet
	}
	if err := ValidateAlphabet(c.Jump.Alphabet, 2); err != nil {
		return fmt.Errorf("jump.alphabet: %w", err)
	}
	if err := ValidateAlphabet(c.Jump.LineAlphabet, 1); err != nil {
		return fmt.Errorf("jump.line_alphabet: %w", err)
	}
	return nil
}

// Load merges defaults, the TOML file, and flag overrides, then validates
// the result. An empty configFilePath uses DefaultPath. flags may be nil.
func Load(configFilePath string, fs *pflag.FlagSet, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}
	if effectivePath != "" {
		if err := loadFromFile(effectivePath, cfg); err != nil {
			return nil, err
		}
	}

	if flags != nil && fs != nil {
		flags.ApplyOverrides(cfg, fs)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
