package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/daygrid/internal/errors"
	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/logging"
	"github.com/manav03panchal/daygrid/internal/parser"
)

// journalFlags are the flags that build an in-memory journal for a command.
type journalFlags struct {
	entries []string
	input   string
}

func (f *journalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.entries, "entry", "e", nil,
		"Slot entry TIME=TEXT[@LEVEL], e.g. '9am=standup@1' (repeatable)")
	cmd.Flags().StringVarP(&f.input, "input", "i", "",
		"Start from a previous export CSV")
	cmd.MarkFlagFilename("input", "csv")
}

// build loads the input export, if any, then applies entries on top of it.
// Later entries for the same slot replace earlier ones.
func (f *journalFlags) build() (*journal.Journal, error) {
	j := journal.New()

	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, errors.Wrapf(err, "open input %s", f.input)
		}
		defer file.Close()

		rows, err := journal.ReadCSV(file)
		if err != nil {
			return nil, err
		}
		if j, err = journal.Load(rows); err != nil {
			return nil, err
		}
	}

	if err := parser.ApplyEntries(j, f.entries); err != nil {
		return nil, err
	}

	ctx.Log.Debug("journal built", logging.KeyCount, len(j.Filled()), logging.KeyPath, f.input)
	return j, nil
}
