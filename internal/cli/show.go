// Package cli: show.go implements the "bitwig-uuid-collector show" command.
//
// The show command reads a capture file written by a previous run and
// prints it as a table, JSON or YAML. The table marks which values parse
// as canonical UUIDs; collection itself only checks the length, so this
// is where a malformed capture becomes visible.
package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/bitwig-uuid-collector/internal/model"
	"github.com/shinji-kodama/bitwig-uuid-collector/internal/store"
)

// showFlags holds the flag values for the show command.
type showFlags struct {
	// format selects the output format: text (default), json or yaml.
	// The global --json flag takes precedence.
	format string
}

// NewShowCommand creates the "show" cobra command.
func NewShowCommand() *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Display a capture file",
		Long: `Display the device IDs saved by a previous collection run.

The file defaults to bitwig_device_uuids.json in the current directory.
Comments and trailing commas in the file are tolerated.

Examples:
  bitwig-uuid-collector show
  bitwig-uuid-collector show --format yaml
  bitwig-uuid-collector show old-run.json --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := store.DefaultOutputFile
			if len(args) == 1 {
				path = args[0]
			}
			return runShow(cmd.OutOrStdout(), path, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text, json, yaml")

	return cmd
}

// runShow loads the capture file and prints it in the selected format.
func runShow(w io.Writer, path string, flags *showFlags) error {
	format := flags.format
	if IsJSONOutput() {
		format = "json"
	}
	switch format {
	case "text", "json", "yaml":
	default:
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("invalid format %q: valid values are text, json, yaml", format))
	}

	result, err := store.Load(path)
	if err != nil {
		return err
	}
	VerboseLog("Loaded %d entries from %s", result.Len(), path)

	catalog := model.DefaultCatalog()
	for _, name := range result.Names() {
		if !catalog.Contains(name) {
			VerboseLog("Warning: %q is not in the device catalog", name)
		}
	}

	switch format {
	case "json":
		data, err := store.Encode(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := store.RenderYAML(result)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	default:
		printShowText(w, result)
	}
	return nil
}

// printShowText outputs the captures as a text table with aligned columns.
//
//	DEVICE           VALUE                                  UUID
//	EQ+              123e4567-e89b-12d3-a456-426614174000   yes
func printShowText(w io.Writer, result *model.Result) {
	if result.Len() == 0 {
		fmt.Fprintln(w, "No captured devices found.")
		return
	}

	fmt.Fprintf(w, "%-16s %-38s %s\n", "DEVICE", "VALUE", "UUID")
	for _, e := range result.Entries() {
		fmt.Fprintf(w, "%-16s %-38s %s\n", e.Name, e.Value, FormatUUIDCheck(e.Value))
	}
}

// FormatUUIDCheck returns "yes" if value parses as a canonical
// 8-4-4-4-12 UUID and "no" otherwise.
func FormatUUIDCheck(value string) string {
	if len(value) == model.CaptureLength && uuid.Validate(value) == nil {
		return "yes"
	}
	return "no"
}
