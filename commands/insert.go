package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetlog/go-hos-timeline/internal/api"
	"github.com/fleetlog/go-hos-timeline/internal/core/constants"
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/core/resolver"
	"github.com/fleetlog/go-hos-timeline/internal/data/parser"
	"github.com/fleetlog/go-hos-timeline/internal/presentation/formatter"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

var (
	insertTime     string
	insertStatus   string
	insertLocation string
	insertComment  string
	insertOwner    string

	serviceURL   string
	svcTenant    int64
	svcDriver    int64
	svcInitiator int64

	insertCmd = &cobra.Command{
		Use:   "insert",
		Short: "Place a new duty-status entry in the day log",
		Long: `insert resolves a wall-clock time against the selected day, checks it
for conflicts with the existing entries and previews the implied
duration. Without --base-url this is a dry run; with it the entry is
submitted to the HOS service.`,
		RunE: runInsert,
	}
)

func init() {
	insertCmd.Flags().StringVarP(&insertTime, "time", "t", "",
		"Event wall-clock time (e.g., \"9:30 AM\", \"14:45\")")
	insertCmd.Flags().StringVarP(&insertStatus, "status", "s", "",
		"Duty status (OFF_DUTY, SLEEPER_BERTH, DRIVING, ON_DUTY, ...)")
	insertCmd.Flags().StringVar(&insertLocation, "location", "",
		"Event location")
	insertCmd.Flags().StringVar(&insertComment, "comment", "",
		"Annotation for the entry")
	insertCmd.Flags().StringVar(&insertOwner, "owner", "",
		"Log owner identifier")

	insertCmd.Flags().StringVar(&serviceURL, "base-url", "",
		"HOS service base URL; omit for a dry run")
	insertCmd.Flags().Int64Var(&svcTenant, "tenant", 0, "Tenant id")
	insertCmd.Flags().Int64Var(&svcDriver, "driver", 0, "Driver id")
	insertCmd.Flags().Int64Var(&svcInitiator, "initiator", 0, "Initiating user id")

	insertCmd.MarkFlagRequired("time")

	rootCmd.AddCommand(insertCmd)
}

// insertionPreview is the resolved placement of a proposed entry among
// the day's existing logs.
type insertionPreview struct {
	Instant      int64
	Validity     resolver.Validity
	DurationHint string
}

// previewInsertion resolves the clock string in the tenant timezone and
// computes the conflict verdict and the duration hint shown before
// submission. Timezone resolution degrades to the local zone here; the
// submission path re-resolves strictly.
func previewInsertion(r *resolver.Resolver, clock string, day time.Time, tz string, logs []model.HosLog) (insertionPreview, error) {
	instant, err := r.ResolveTimestamp(clock, day, tz)
	if err != nil {
		return insertionPreview{}, err
	}

	preview := insertionPreview{
		Instant:  instant,
		Validity: resolver.ValidateInsertion(instant, logs),
	}
	if len(resolver.ActiveSorted(logs)) > 0 {
		dayStart := r.DayStart(day, tz)
		preview.DurationHint = formatter.FormatDurationHint(resolver.DurationFromPrevious(instant, logs, dayStart))
	}
	return preview, nil
}

func runInsert(cmd *cobra.Command, args []string) error {
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

	logs, err := parser.NewParser().ParseFile(expandPath(dataFile))
	if err != nil {
		return fmt.Errorf("failed to read day log: %w", err)
	}

	r := resolver.NewResolver(nil)
	preview, err := previewInsertion(r, insertTime, day, timezone, logs)
	if err != nil {
		return err
	}

	if !preview.Validity.Valid {
		return fmt.Errorf("%s", preview.Validity.Message)
	}

	fmt.Printf("Time:     %s (%d)\n", insertTime, preview.Instant)
	if insertStatus != "" {
		fmt.Printf("Status:   %s\n", insertStatus)
	}
	if preview.DurationHint != "" {
		fmt.Printf("Duration: %s\n", preview.DurationHint)
	}

	if serviceURL == "" {
		fmt.Println("Dry run: no --base-url given, nothing submitted.")
		return nil
	}
	return submitInsertion(cmd, day, logs)
}

// submitInsertion sends the entry through the debounced submitter and
// shows the refreshed day, with the new entry in its pending state, once
// the service accepts it.
func submitInsertion(cmd *cobra.Command, day time.Time, logs []model.HosLog) error {
	client := api.NewManualLogClient(api.NewClient(serviceURL), resolver.NewResolver(nil))
	form := api.LogFormData{
		DutyStatus: insertStatus,
		EventTime:  insertTime,
		Location:   insertLocation,
		Comment:    insertComment,
		LogOwner:   insertOwner,
	}

	submitter := api.NewSubmitter(constants.SubmitDebounceWindow, func(payload interface{}) api.Response {
		return client.CreateManualLog(cmd.Context(), svcTenant, svcDriver, svcInitiator,
			payload.(api.LogFormData), day, logs, timezone)
	})
	defer submitter.Close()

	outcome := make(chan api.Response, 1)
	submitter.Submit(form, func(resp api.Response) { outcome <- resp })
	resp := <-outcome

	if !resp.Success {
		return fmt.Errorf("submission failed (%s): %s", resp.Error, resp.Message)
	}

	util.LogInfof("Manual log created: %s", resp.Message)
	fmt.Printf("Submitted: %s\n", resp.Message)

	// Show the entry the way the service will hold it until approval.
	pending := api.SimulatePendingLog(model.HosLog{
		EventCode: model.EventCode(insertStatus),
		Address:   insertLocation,
	}, insertOwner)
	fmt.Printf("Pending approval: %s at %s (requested by %s)\n",
		pending.EventCode, insertTime, pending.RequestedBy)

	time.Sleep(constants.PanelCloseDelay)
	return nil
}
