package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/model"
)

// completeExportKeys completes recorded export keys with their paths.
func completeExportKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || ctx == nil || ctx.ExportRepo == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	recs, err := ctx.ExportRepo.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, r := range recs {
		if strings.HasPrefix(r.Key, toComplete) {
			completions = append(completions, r.Key+"\t"+r.Path)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeSettings completes setting names, then their values.
func completeSettings(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return filterPrefix([]string{
			model.SettingExportDir + "\texport file directory",
			model.SettingFormat + "\tdefault output format",
		}, toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		if args[0] == model.SettingExportDir {
			return nil, cobra.ShellCompDirectiveFilterDirs
		}
		if args[0] == model.SettingFormat {
			return completeFormats(cmd, nil, toComplete)
		}
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeSlotTimes suggests the hour slots.
func completeSlotTimes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var hours []string
	for index := 0; index < journal.MinutesPerDay; index += 60 {
		hours = append(hours, journal.TimeLabel(index)[:5]+"\t"+journal.TimeLabel(index))
	}
	return filterPrefix(hours, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix([]string{"cli", "json", "plain"}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix([]string{"auto", "always", "never"}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
