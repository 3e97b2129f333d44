// Package cli: collect.go implements the "bitwig-uuid-collector collect"
// command, which is also what the root command runs.
//
// The command prints the banner, waits for the operator to start, visits
// every catalog device once, then overwrites bitwig_device_uuids.json with
// the values captured in this run and echoes them back.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bitwig-uuid-collector/internal/clipboard"
	"github.com/shinji-kodama/bitwig-uuid-collector/internal/collector"
	"github.com/shinji-kodama/bitwig-uuid-collector/internal/model"
	"github.com/shinji-kodama/bitwig-uuid-collector/internal/store"
)

// newClipboardReader returns the clipboard used by collect.
// Tests replace it with a scripted reader.
var newClipboardReader = func() clipboard.Reader {
	return clipboard.NewSystem()
}

// NewCollectCommand creates the "collect" cobra command.
func NewCollectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Interactively capture device IDs from the clipboard",
		Long: `Walk through the device catalog and capture one ID per device.

At each prompt press Enter after copying the device ID in Bitwig,
or type "s" to skip the device. Values that are not exactly 36
characters long are reported and not saved.

The results overwrite bitwig_device_uuids.json in the current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(cmd)
		},
	}
}

// runCollect is the main logic function for the collect command.
func runCollect(cmd *cobra.Command) error {
	c := collector.New(cmd.InOrStdin(), cmd.OutOrStdout(), newClipboardReader())
	c.Logf = VerboseLog

	if err := c.Start(); err != nil {
		return inputError(err)
	}

	catalog := model.DefaultCatalog()
	VerboseLog("Processing %d catalog devices", len(catalog))

	result, outcomes, err := c.Run(catalog)
	if err != nil {
		return inputError(err)
	}

	counts := model.CountOutcomes(outcomes)
	VerboseLog("captured=%d skipped=%d invalid=%d clipboard-errors=%d",
		counts[model.OutcomeCaptured], counts[model.OutcomeSkipped],
		counts[model.OutcomeInvalid], counts[model.OutcomeClipboardError])

	data, err := store.Encode(result)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to save captures", err)
	}
	if err := store.Write(store.DefaultOutputFile, data); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to save captures", err)
	}
	VerboseLog("Wrote %s", store.DefaultOutputFile)

	c.Summary(result.Len(), store.DefaultOutputFile, data)
	return nil
}

// inputError maps console input failures to CLI errors.
func inputError(err error) error {
	if errors.Is(err, collector.ErrInputClosed) {
		return model.WrapCLIError(model.ExitUserCancelled, "collection aborted, nothing saved", err)
	}
	return err
}
