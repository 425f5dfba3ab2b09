package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/runtime"
)

// Export command flags.
var (
	exportJournal    journalFlags
	exportFlagOutput string
	exportFlagStdout bool
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"exp", "x"},
	Short:   "Export filled slots to CSV",
	Long: `Export every slot with text as a CSV row of Time, Text, Duration and
Productivity. Duration is the number of minutes until the next slot with text,
or 5 for the last one.

The file is named journal_export_YYYY-MM-DD.csv after today's UTC date and
written to the export_dir setting, DAYGRID_EXPORT_DIR or the current directory.

Examples:
  daygrid export --entry '9am=standup@1' --entry '9:15am=email@-1'
  daygrid export --input old.csv --entry '5pm=wrap up' -o today.csv
  daygrid export --entry 'noon=lunch' --stdout`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportJournal.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "",
		"Write to this path instead of the default export file")
	exportCmd.Flags().BoolVar(&exportFlagStdout, "stdout", false,
		"Print the CSV instead of writing a file")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	j, err := exportJournal.build()
	if err != nil {
		return err
	}

	if exportFlagStdout {
		rows, err := j.Export()
		if errors.Is(err, errors.ErrNothingToExport) {
			return printNothingToExport(j)
		}
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintExport("", rows, j.Summary())
		}
		return journal.WriteCSV(ctx.Formatter.Writer, rows)
	}

	now := time.Now()
	path := exportFlagOutput
	if path == "" {
		path = ctx.ExportPath(now)
	}

	rec, err := ctx.WriteExport(j, path, now)
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

	ctx.CLIFormatter().PrintExported(rec.Path, rec.Rows, j.Summary())
	return nil
}

// reportExportWarnings shows problems that did not stop an export. JSON
// output keeps stdout clean, so they go to the log there.
func reportExportWarnings(rec *runtime.ExportResult) {
	for _, w := range rec.Warnings {
		if ctx.IsJSON() {
			ctx.Log.Warn(w)
			continue
		}
		ctx.CLIFormatter().Warning(w)
	}
}

// printNothingToExport reports an empty journal. It is a notice, not a failure.
func printNothingToExport(j *journal.Journal) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintExport("", nil, j.Summary())
	}
	ctx.CLIFormatter().PrintNothingToExport()
	return nil
}
