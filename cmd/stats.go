package cmd

import (
	"github.com/spf13/cobra"
)

// Stats command flags.
var (
	statsJournal   journalFlags
	statsFlagSlots bool
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"stat", "summary"},
	Short:   "Show minutes per productivity level and the total score",
	Long: `Show how many minutes were spent at each productivity level and the
day's total score. Every slot with text counts as 5 minutes. Slots score
-10, -1, 0, 1 or 10 for levels -2 to 2.

Examples:
  daygrid stats --entry '9am=standup@1' --entry '9:15am=email@-1'
  daygrid stats --input journal_export_2026-10-19.csv --slots
  daygrid stats --input journal_export_2026-10-19.csv -f json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsJournal.register(statsCmd)
	statsCmd.Flags().BoolVarP(&statsFlagSlots, "slots", "s", false,
		"Also list the filled slots")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	j, err := statsJournal.build()
	if err != nil {
		return err
	}

	sum := j.Summary()
	slots := j.Slots()
	gaps := j.Gaps()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStats(sum, slots, gaps)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Productivity")
	cli.Println("")

	if sum.Filled == 0 {
		cli.Muted("No slots filled.")
		return nil
	}

	cli.PrintSummary(sum)

	if statsFlagSlots {
		cli.Println("")
		cli.PrintSlots(slots, gaps)
	}
	return nil
}
