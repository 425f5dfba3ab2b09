package cmd

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/calendar"
	"github.com/manav03panchal/daygrid/internal/config"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/logging"
	"github.com/manav03panchal/daygrid/internal/tui"
)

// Open command flags.
var (
	openJournal    journalFlags
	openFlagEvents string
)

// openCmd represents the open command.
var openCmd = &cobra.Command{
	Use:     "open",
	Aliases: []string{"o", "grid"},
	Short:   "Open today's interactive grid",
	Long: `Open the interactive grid for today. The cursor starts on the current
five-minute slot and follows the clock until you move it.

Keys:
  ↑/↓ pgup/pgdown   move between slots
  ←/→               lower or raise the slot's productivity
  type              edit the slot's text (enter or esc to finish)
  ctrl+u            clear the slot's text
  ctrl+e            export filled slots to CSV
  ctrl+l            jump to the latest slot with text
  ctrl+n            jump to now and follow the clock
  ctrl+c            quit

The journal lives only as long as the session. Export before quitting.

Examples:
  daygrid open
  daygrid open --events calendar.yaml
  daygrid open --input journal_export_2026-10-19.csv`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func init() {
	openJournal.register(openCmd)
	openCmd.Flags().StringVar(&openFlagEvents, "events", "",
		"Show calendar events from a YAML or CSV file beside their slots")
	openCmd.MarkFlagFilename("events", "yaml", "yml", "csv")

	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	j, err := openJournal.build()
	if err != nil {
		return err
	}

	var placed []calendar.Placement
	if openFlagEvents != "" {
		events, err := calendar.LoadFile(openFlagEvents)
		if err != nil {
			return err
		}
		var skipped []calendar.Event
		placed, skipped = calendar.Place(events)
		for _, e := range skipped {
			ctx.Log.Warn("event skipped", "start", e.Start, "label", e.Label)
		}
		ctx.Log.Debug("events placed", logging.KeyCount, len(placed), logging.KeyPath, openFlagEvents)
	}

	var schedule cron.Schedule
	if expr := config.Global.Session.FollowSchedule; expr != "" {
		if schedule, err = cron.ParseStandard(expr); err != nil {
			return err
		}
	}

	return tui.Run(tui.GridConfig{
		Journal:         j,
		Export:          exportToFile,
		Events:          placed,
		RefreshInterval: config.Global.Session.NowRefreshInterval,
		Schedule:        schedule,
		ScrollMargin:    config.Global.Session.ScrollMargin,
	})
}

// exportToFile writes j to the default export path. Warnings are shown in
// the grid's status line rather than logged over the screen.
func exportToFile(j *journal.Journal) (tui.Exported, error) {
	now := time.Now()
	rec, err := ctx.WriteExport(j, ctx.ExportPath(now), now)
	if err != nil {
		return tui.Exported{}, err
	}
	return tui.Exported{Path: rec.Path, Warnings: rec.Warnings}, nil
}
