package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fleetlog/go-hos-timeline/internal/api"
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/core/resolver"
	"github.com/fleetlog/go-hos-timeline/internal/core/timeline"
	"github.com/fleetlog/go-hos-timeline/internal/data/aggregator"
	"github.com/fleetlog/go-hos-timeline/internal/data/parser"
	"github.com/fleetlog/go-hos-timeline/internal/data/scanner"
	"github.com/fleetlog/go-hos-timeline/internal/presentation/formatter"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

var (
	timelineWidth int
	timelineWatch bool
	timelineColor bool
	metadataURL   string
	tenantID      int64

	timelineCmd = &cobra.Command{
		Use:   "timeline",
		Short: "Render the day's duty-status timeline",
		RunE:  runTimeline,
	}
)

func init() {
	timelineCmd.Flags().IntVar(&timelineWidth, "width", 0,
		"Character columns of the 24-hour band (0 = fit the terminal)")
	timelineCmd.Flags().BoolVarP(&timelineWatch, "watch", "w", false,
		"Re-render on day-log changes; +/- zooms, q quits")
	timelineCmd.Flags().BoolVar(&timelineColor, "color", false,
		"Colorize the status lanes")
	timelineCmd.Flags().StringVar(&metadataURL, "base-url", "",
		"HOS service base URL for tenant display labels (optional)")
	timelineCmd.Flags().Int64Var(&tenantID, "tenant", 0,
		"Tenant id for display labels")

	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	if dataFile == "" {
		return fmt.Errorf("--file is required")
	}

	day, err := selectedDay()
	if err != nil {
		return err
	}

	r := resolver.NewResolver(nil)
	window := timeline.WindowForDate(r, day, timezone)
	builder := timeline.NewBuilder(window)
	p := parser.NewParser()

	renderer := formatter.NewTimelineRenderer(bandWidth())
	if timelineColor {
		renderer.EnableColor()
	}
	if metadataURL != "" && tenantID > 0 {
		renderer.SetLabels(fetchLabels(cmd.Context(), metadataURL, tenantID))
	}

	path, err := resolveDayLogPath(expandPath(dataFile))
	if err != nil {
		return err
	}
	if !timelineWatch {
		view, err := renderDay(p, builder, renderer, path)
		if err != nil {
			return err
		}
		fmt.Print(view)
		return nil
	}
	return watchTimeline(p, builder, renderer, path)
}

// bandWidth picks the band size: the explicit flag, or the terminal width
// minus the label and totals columns, or a fixed default off a terminal.
func bandWidth() int {
	if timelineWidth > 0 {
		return timelineWidth
	}
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 40 {
		return cols - 30
	}
	return 96
}

// resolveDayLogPath accepts either a day-log file or a directory of them.
// For a directory the most recently modified .jsonl file is the day log.
func resolveDayLogPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read day log: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	files, err := scanner.NewFileScanner(path).Scan()
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no day-log files under %s", path)
	}

	latest := files[0]
	var latestMod int64
	for _, file := range files {
		fi, err := os.Stat(file)
		if err != nil {
			continue
		}
		if mod := fi.ModTime().UnixMilli(); mod >= latestMod {
			latest = file
			latestMod = mod
		}
	}
	return latest, nil
}

// renderDay parses the day log, positions the intervals and renders the
// full day view.
func renderDay(p *parser.Parser, builder *timeline.Builder, renderer *formatter.TimelineRenderer, path string) (string, error) {
	logs, err := p.ParseFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read day log: %w", err)
	}
	intervals := builder.BuildEvents(logs)
	summary := aggregator.AggregateDurations(logs)
	return renderer.Render(intervals, summary), nil
}

// watchTimeline runs the live view: file changes re-render, + and - zoom,
// q / ESC / Ctrl+C quit.
func watchTimeline(p *parser.Parser, builder *timeline.Builder, renderer *formatter.TimelineRenderer, path string) error {
	watcher, err := scanner.NewFileWatcher([]string{path})
	if err != nil {
		return fmt.Errorf("failed to watch day log: %w", err)
	}
	defer watcher.Close()

	keyboard, err := util.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer keyboard.Close()

	redraw := func() {
		view, err := renderDay(p, builder, renderer, path)
		if err != nil {
			util.LogErrorf("Render failed: %v", err)
			return
		}
		fmt.Print(util.ClearScreen + util.MoveCursorHome)
		fmt.Print(view)
		fmt.Printf("\nzoom %.2fx  [+/- zoom, q quit]\n", renderer.Zoom())
	}
	redraw()

	for {
		select {
		case event := <-watcher.Events():
			util.LogDebugf("Day log changed: %s %s", event.Operation, event.Path)
			p.Invalidate(event.Path)
			redraw()

		case key := <-keyboard.Events():
			switch {
			case key.Key == 'q' || key.Key == 3 || key.Type == util.KeyEscape:
				return nil
			case key.Key == '+' || key.Key == '=':
				renderer.SetZoom(timeline.ZoomIn(renderer.Zoom()))
				redraw()
			case key.Key == '-':
				renderer.SetZoom(timeline.ZoomOut(renderer.Zoom()))
				redraw()
			}
		}
	}
}

// fetchLabels pulls tenant display names for the duty statuses. Failures
// already degrade to an empty map inside the client.
func fetchLabels(ctx context.Context, baseURL string, tenantID int64) map[model.EventCode]string {
	metadata := api.NewMetadataClient(api.NewClient(baseURL)).EventCodeMetadata(ctx, tenantID)
	labels := make(map[model.EventCode]string, len(metadata))
	for code, info := range metadata {
		labels[code] = info.Label
	}
	return labels
}
