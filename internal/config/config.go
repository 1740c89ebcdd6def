// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Default retention settings for the text log directory. When the number of
// log files exceeds the cap, the oldest excess plus the margin are deleted in
// one batch so the trim does not run on every submission.
const (
	DefaultMaxLogFiles   = 50
	DefaultLogTrimMargin = 30
)

// FileConfig represents the TOML configuration file. Unset values fall back
// to defaults.
type FileConfig struct {
	Files FilesConfig `toml:"files"`
	Logs  LogsConfig  `toml:"logs"`
}

// FilesConfig maps dataset locations.
type FilesConfig struct {
	ReportsDir *string `toml:"reports-dir"`
	MasterPath *string `toml:"master"`
	BackupPath *string `toml:"master-backup"`
	DraftsPath *string `toml:"drafts"`
}

// LogsConfig maps text log settings.
type LogsConfig struct {
	Dir       *string `toml:"dir"`
	MaxFiles  *int    `toml:"max-files"`
	TrimAfter *int    `toml:"trim-margin"`
}

// Config is the resolved, immutable process configuration. It is constructed
// once at startup and passed to every component that needs it.
type Config struct {
	// ReportsDir is the root under which monthly workbooks live.
	ReportsDir string
	// MasterPath is the cumulative master workbook. It must already exist.
	MasterPath string
	// BackupPath receives a best-effort copy of the master on every save.
	BackupPath string
	// DraftsPath is the drafts workbook.
	DraftsPath string
	// LogsDir holds one plain-text file per submission.
	LogsDir string

	// Year is the processing year, captured at startup.
	Year int

	MaxLogFiles   int
	LogTrimMargin int
}

// LoadConfig reads a TOML config from the given path. Missing file is not an
// error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Resolve merges the file config with defaults into an immutable Config.
func Resolve(fileCfg FileConfig, now time.Time) Config {
	cfg := Config{
		ReportsDir:    DefaultReportsDir(),
		MasterPath:    DefaultMasterPath(),
		BackupPath:    DefaultBackupPath(),
		DraftsPath:    DefaultDraftsPath(),
		LogsDir:       DefaultLogsDir(),
		Year:          now.Year(),
		MaxLogFiles:   DefaultMaxLogFiles,
		LogTrimMargin: DefaultLogTrimMargin,
	}
	applyString(&cfg.ReportsDir, fileCfg.Files.ReportsDir)
	applyString(&cfg.MasterPath, fileCfg.Files.MasterPath)
	applyString(&cfg.BackupPath, fileCfg.Files.BackupPath)
	applyString(&cfg.DraftsPath, fileCfg.Files.DraftsPath)
	applyString(&cfg.LogsDir, fileCfg.Logs.Dir)
	applyInt(&cfg.MaxLogFiles, fileCfg.Logs.MaxFiles)
	applyInt(&cfg.LogTrimMargin, fileCfg.Logs.TrimAfter)
	return cfg
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

func applyInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}
