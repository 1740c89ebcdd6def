// Package main provides the CLI entrypoint for incidententry.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"incidententry/internal/config"
	"incidententry/internal/draft"
	"incidententry/internal/submit"
	"incidententry/internal/tui"
)

var (
	flagReportsDir string
	flagMaster     string
	flagBackup     string
	flagDrafts     string
	flagLogsDir    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "incidententry",
		Short:         "Incident service call entry form",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFormCmd,
	}

	rootCmd.PersistentFlags().StringVar(&flagReportsDir, "reports-dir", "", "root directory for monthly report workbooks")
	rootCmd.PersistentFlags().StringVar(&flagMaster, "master", "", "path to the master workbook")
	rootCmd.PersistentFlags().StringVar(&flagBackup, "master-backup", "", "path for the master backup copy")
	rootCmd.PersistentFlags().StringVar(&flagDrafts, "drafts", "", "path to the drafts workbook")
	rootCmd.PersistentFlags().StringVar(&flagLogsDir, "logs-dir", "", "directory for plain-text submission logs")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDraftsCmd())

	return rootCmd
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Resolve(fileCfg, time.Now())
	applyFlag(cmd, "reports-dir", &cfg.ReportsDir, flagReportsDir)
	applyFlag(cmd, "master", &cfg.MasterPath, flagMaster)
	applyFlag(cmd, "master-backup", &cfg.BackupPath, flagBackup)
	applyFlag(cmd, "drafts", &cfg.DraftsPath, flagDrafts)
	applyFlag(cmd, "logs-dir", &cfg.LogsDir, flagLogsDir)
	return cfg, nil
}

func applyFlag(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func runFormCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the entry form requires an interactive terminal")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	drafts, err := draft.Load(cfg.DraftsPath)
	if err != nil {
		return err
	}
	pipeline := submit.New(cfg, drafts)
	model := tui.NewModel(cfg, drafts, pipeline)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newDraftsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drafts",
		Short: "List saved drafts",
		Args:  cobra.NoArgs,
		RunE:  runDraftsCmd,
	}
}

func runDraftsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	drafts, err := draft.Load(cfg.DraftsPath)
	if err != nil {
		return err
	}
	if drafts.Len() == 0 {
		logErrln("There are no saved drafts.")
		return nil
	}
	for i, d := range drafts.List() {
		line := fmt.Sprintf("(%d)  %-15s %-8s %-13s %-8s %-8s %s",
			i+1,
			truncate(d.Identifier, 14),
			truncate(d.Entry.Date, 7),
			truncate(d.Entry.Shift, 12),
			truncate(d.Entry.CallReceived, 7),
			truncate(d.Entry.Arrival, 7),
			truncate(d.Entry.CallType, 30),
		)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "…")
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# incidententry configuration
# Uncomment a value to enable it. CLI flags override config values.

[files]
# reports-dir = %q
# master = %q
# master-backup = %q
# drafts = %q

[logs]
# dir = %q
# max-files = %d       # delete old submission logs past this count
# trim-margin = %d     # extra files removed per trim so it runs in batches
`,
		config.DefaultReportsDir(),
		config.DefaultMasterPath(),
		config.DefaultBackupPath(),
		config.DefaultDraftsPath(),
		config.DefaultLogsDir(),
		config.DefaultMaxLogFiles,
		config.DefaultLogTrimMargin,
	)
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
