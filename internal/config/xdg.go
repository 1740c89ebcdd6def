// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "incidententry", "config.toml")
}

// DefaultReportsDir returns the default root for monthly workbooks.
func DefaultReportsDir() string {
	return filepath.Join(XDGDataHome(), "incidententry", "reports")
}

// DefaultMasterPath returns the default master workbook path.
func DefaultMasterPath() string {
	return filepath.Join(XDGDataHome(), "incidententry", "Incident Reports - Master.xlsx")
}

// DefaultBackupPath returns the default master backup copy path.
func DefaultBackupPath() string {
	return filepath.Join(XDGDataHome(), "incidententry", "Incident Reports - Master (Backup).xlsx")
}

// DefaultDraftsPath returns the default drafts workbook path.
func DefaultDraftsPath() string {
	return filepath.Join(XDGDataHome(), "incidententry", "Draft Entries.xlsx")
}

// DefaultLogsDir returns the default text log directory.
func DefaultLogsDir() string {
	return filepath.Join(XDGDataHome(), "incidententry", "logs")
}
