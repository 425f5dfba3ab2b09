package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist", "exports"},
	Short:   "List recorded exports",
	Long: `List the CSV files written by daygrid, newest first. Only the file path,
date, row count and score are recorded; journal text is never stored.

Examples:
  daygrid history
  daygrid history delete export:0192f3a4-...
  daygrid history clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

// historyDeleteCmd removes one export record.
var historyDeleteCmd = &cobra.Command{
	Use:               "delete KEY",
	Aliases:           []string{"rm"},
	Short:             "Forget one recorded export",
	Long:              `Remove one export record. The CSV file itself is left alone.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeExportKeys,
	RunE:              runHistoryDelete,
}

// historyClearCmd removes every export record.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recorded exports",
	Long:  `Remove every export record. The CSV files themselves are left alone.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	recs, err := ctx.ExportRepo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintHistory(recs)
	}

	ctx.CLIFormatter().PrintHistory(recs)
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if err := ctx.ExportRepo.Delete(args[0]); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.PrintJSON(map[string]interface{}{
			"status":  "deleted",
			"deleted": args[0],
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted %s", args[0]))
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	n, err := ctx.ExportRepo.Clear()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.PrintJSON(map[string]interface{}{
			"status":  "cleared",
			"deleted": n,
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Cleared %d export records", n))
	return nil
}
