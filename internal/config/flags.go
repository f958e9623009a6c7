// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidejump/internal/logger"
	"github.com/spf13/pflag"
)

// Flags holds values bound to command-line flags.
type Flags struct {
	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	TabWidth        int
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string
	EnableFiles     string
	DisableFiles    string
	DebugLog        bool
	SystemClipboard bool
	Alphabet        string
	LineAlphabet    string
}

// Define registers the configuration flags on fs.
func (f *Flags) Define(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.IntVar(&f.TabWidth, "tabwidth", 0, "Number of spaces per tab - Overrides config file")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable - Overrides config file")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	fs.BoolVar(&f.DebugLog, "debug-log", false, "Enable verbose debug logging for the logger filtering system")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", false, "Copy jump selections to the system clipboard")
	fs.StringVar(&f.Alphabet, "alphabet", "", "Letters used for multi-character jump tags - Overrides config file")
	fs.StringVar(&f.LineAlphabet, "line-alphabet", "", "Letters used for line-mode jump tags - Overrides config file")
}

// ApplyOverrides copies flags the user actually set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config, fs *pflag.FlagSet) {
	fs.Visit(func(fl *pflag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "tabwidth":
			if f.TabWidth > 0 {
				cfg.Editor.TabWidth = f.TabWidth
			}
		case "system-clipboard":
			cfg.Editor.SystemClipboard = f.SystemClipboard
		case "alphabet":
			cfg.Jump.Alphabet = f.Alphabet
		case "line-alphabet":
			cfg.Jump.LineAlphabet = f.LineAlphabet
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)
		case "debug-log":
			logger.SetDebugFilter(f.DebugLog)
		}
	})
}

// splitCommaList splits a comma-separated list, dropping blanks.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
