package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/calendar"
	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/logging"
	"github.com/manav03panchal/daygrid/internal/output"
)

// Import command flags.
var (
	importJournal       journalFlags
	importFlagFill      bool
	importFlagOverwrite bool
	importFlagExport    bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Place calendar events onto the grid",
	Long: `Read calendar events from a YAML or CSV file and show the slot each one
starts in. Only the start time of day is used; it is taken as written, without
timezone conversion.

YAML files hold a list of events:
  - start: "9:00"
    label: standup
  - start: 2026-10-19T14:30:00Z
    label: review

CSV files have a start,label header.

With --fill, event labels become the text of empty slots in the journal built
from --input and --entry. Add --export to write that journal out.

Examples:
  daygrid import calendar.yaml
  daygrid import calendar.csv --fill --entry '8am=email' --export
  daygrid import calendar.yaml --fill --overwrite --input today.csv --export`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importJournal.register(importCmd)
	importCmd.Flags().BoolVar(&importFlagFill, "fill", false,
		"Write event labels into empty slots")
	importCmd.Flags().BoolVar(&importFlagOverwrite, "overwrite", false,
		"With --fill, also replace text in filled slots")
	importCmd.Flags().BoolVar(&importFlagExport, "export", false,
		"With --fill, export the resulting journal")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	events, err := calendar.LoadFile(args[0])
	if err != nil {
		return err
	}
	placed, skipped := calendar.Place(events)
	ctx.Log.Debug("events placed", logging.KeyCount, len(placed), logging.KeyPath, args[0])

	if !importFlagFill {
		if importFlagExport || importFlagOverwrite {
			return errors.NewUserError("--export and --overwrite need --fill",
				"Add --fill to write event labels into the journal.")
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintPlacements(placed, skipped, 0)
		}
		printPlacements(placed, skipped)
		return nil
	}

	j, err := importJournal.build()
	if err != nil {
		return err
	}
	filled, err := calendar.Apply(j, placed, importFlagOverwrite)
	if err != nil {
		return err
	}

	if !importFlagExport {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintPlacements(placed, skipped, filled)
		}
		printPlacements(placed, skipped)
		cli := ctx.CLIFormatter()
		cli.Println("")
		cli.Success(fmt.Sprintf("Filled %d slots", filled))
		cli.Muted(output.SummaryLine(j.Summary()))
		return nil
	}

	now := time.Now()
	rec, err := ctx.WriteExport(j, ctx.ExportPath(now), now)
	if errors.Is(err, errors.ErrNothingToExport) {
		return printNothingToExport(j)
	}
	if err != nil {
		return err
	}

	reportExportWarnings(rec)
	if ctx.IsJSON() {
		rows, _ := j.Export()
		return ctx.JSONFormatter().PrintExport(rec.Path, rows, j.Summary())
	}
	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Filled %d slots", filled))
	cli.PrintExported(rec.Path, rec.Rows, j.Summary())
	return nil
}

func printPlacements(placed []calendar.Placement, skipped []calendar.Event) {
	cli := ctx.CLIFormatter()
	if len(placed) == 0 && len(skipped) == 0 {
		cli.Muted("No events found.")
		return
	}
	cli.Title(fmt.Sprintf("Events (%d placed)", len(placed)))
	cli.Println("")
	cli.PrintPlacements(placed, skipped)
}
