package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/parser"
)

var slotJournal journalFlags

// slotCmd represents the slot command.
var slotCmd = &cobra.Command{
	Use:   "slot TIME",
	Short: "Show the slot containing a time of day",
	Long: `Show the five-minute slot containing TIME, with its text, productivity and
the gap to the next slot with text. Empty slots show the productivity carried
down from the nearest filled slot above.

Examples:
  daygrid slot 9am
  daygrid slot 14:32
  daygrid slot 2:30pm --input journal_export_2026-10-19.csv`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeSlotTimes,
	RunE:              runSlot,
}

func init() {
	slotJournal.register(slotCmd)
	rootCmd.AddCommand(slotCmd)
}

func runSlot(cmd *cobra.Command, args []string) error {
	index, err := parser.ParseSlot(strings.Join(args, " "))
	if err != nil {
		return err
	}

	j, err := slotJournal.build()
	if err != nil {
		return err
	}

	s, err := j.Slot(index)
	if err != nil {
		return err
	}
	gap, err := j.Gap(index)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSlot(s, gap)
	}

	ctx.CLIFormatter().PrintSlot(s, gap)
	return nil
}
