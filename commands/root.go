package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetlog/go-hos-timeline/internal/util"
)

var (
	// Logging related
	debug bool

	// Data and rendering context shared by the subcommands
	dataFile string
	timezone string
	dateStr  string

	rootCmd = &cobra.Command{
		Use:   "hos-timeline",
		Short: "Driver duty-status timeline tool",
		Long: `hos-timeline renders and edits a driver's Hours-of-Service duty-status
log for one calendar day.

The day log is a JSONL file with one duty-status record per line. The
timeline command draws the day as a terminal grid with per-status
totals; the insert command places a new entry among the existing
records and can submit it to the HOS service.

Examples:
  hos-timeline timeline --file day.jsonl                       # Render today's log
  hos-timeline timeline --file day.jsonl --date 2026-08-29     # Render a past day
  hos-timeline timeline --file day.jsonl --watch               # Live view, +/- to zoom
  hos-timeline insert --file day.jsonl --time "9:30 AM" --status DRIVING`,
	}
)

const defaultLogFile = "~/.hos-timeline/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "",
		"Day-log JSONL file path")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Tenant timezone (e.g., America/Chicago, UTC)")
	rootCmd.PersistentFlags().StringVar(&dateStr, "date", "",
		"Calendar day to operate on (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func Execute() error {
	return rootCmd.Execute()
}

// initRuntime initializes logging and the shared time provider. Every
// subcommand calls this first.
func initRuntime() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}
	return nil
}

// selectedDay resolves the --date flag, defaulting to the current day in
// the configured timezone.
func selectedDay() (time.Time, error) {
	if dateStr == "" {
		return util.GetTimeProvider().Now(), nil
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}
	return day, nil
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
