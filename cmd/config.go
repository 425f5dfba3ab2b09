package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/logging"
	"github.com/manav03panchal/daygrid/internal/model"
	"github.com/manav03panchal/daygrid/internal/validate"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Manage saved preferences",
	Long: `View and modify saved preferences.

Settings:
  export_dir   Directory export files are written to (default: current directory)
  format       Default output format: cli, json or plain

Examples:
  daygrid config show
  daygrid config set export_dir ~/journal
  daygrid config set format json
  daygrid config set format ""`,
}

// configShowCmd shows all settings.
var configShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"get", "list"},
	Short:   "Show saved preferences",
	Args:    cobra.NoArgs,
	RunE:    runConfigShow,
}

// configSetCmd sets one setting.
var configSetCmd = &cobra.Command{
	Use:               "set NAME VALUE",
	Short:             "Set a preference",
	Long:              `Set a preference. An empty VALUE restores the default.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeSettings,
	RunE:              runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(ctx.Config)
	}

	ctx.CLIFormatter().PrintSettings(ctx.Config)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	name, value := strings.ToLower(args[0]), args[1]

	if name == model.SettingFormat && !validFormat(value) {
		return errors.NewUserErrorWithField(name, value,
			fmt.Sprintf("invalid format %q", value),
			"Use cli, json, plain, or \"\" for the default.")
	}
	if name == model.SettingExportDir {
		if err := validate.Directory(value); err != nil {
			return err
		}
	}
	if !ctx.Config.Set(name, value) {
		return errors.NewFieldError(errors.ErrUnknownSetting, "name", name)
	}
	if err := ctx.ConfigRepo.Update(ctx.Config); err != nil {
		return err
	}
	ctx.Log.Debug("setting updated", logging.KeyOperation, "config_set", "name", name)

	if ctx.IsJSON() {
		return ctx.Formatter.PrintJSON(map[string]interface{}{
			"status": "updated",
			"name":   name,
			"value":  value,
		})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Set %s", name))
	return nil
}

func validFormat(value string) bool {
	switch value {
	case "", "cli", "json", "plain":
		return true
	}
	return false
}
