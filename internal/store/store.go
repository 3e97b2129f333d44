// Package store reads and writes the capture file.
//
// The capture file is a JSON object mapping device names to the captured
// values, indented with two spaces. Every run overwrites it completely;
// there is no merge with a previous run's file.
//
// Reading is lenient: the file is passed through github.com/tidwall/jsonc
// first, so comments or trailing commas an operator added by hand do not
// make it unreadable.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/bitwig-uuid-collector/internal/model"
)

// DefaultOutputFile is the capture file name, relative to the working
// directory.
const DefaultOutputFile = "bitwig_device_uuids.json"

// Encode returns the indented JSON form of result.
func Encode(result *model.Result) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode captures: %w", err)
	}
	return data, nil
}

// Save writes result to path, replacing any existing file.
func Save(path string, result *model.Result) error {
	data, err := Encode(result)
	if err != nil {
		return err
	}
	return Write(path, data)
}

// Write stores data produced by Encode at path, replacing any existing
// file. Callers that also show the encoded captures use Encode and Write
// so the console and the file get the same bytes.
func Write(path string, data []byte) error {
	// os.WriteFile truncates an existing file, so the file holds exactly
	// this run's captures.
	buf := make([]byte, 0, len(data)+1)
	buf = append(append(buf, data...), '\n')
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads a capture file written by Save.
//
// Returns a CLIError with ExitOutputNotFound if the file does not exist and
// ExitInvalidOutput if it is not a JSON object of string values.
func Load(path string) (*model.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitOutputNotFound,
				fmt.Sprintf("capture file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result := model.NewResult()
	if err := json.Unmarshal(jsonc.ToJSON(data), result); err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidOutput,
			fmt.Sprintf("failed to parse capture file %s", path),
			err,
		)
	}
	return result, nil
}

// RenderYAML returns result as a YAML mapping in insertion order.
//
// A yaml.Node is built by hand because yaml.v3 sorts the keys of a Go map
// when marshalling one.
func RenderYAML(result *model.Result) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range result.Entries() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode captures as YAML: %w", err)
	}
	return out, nil
}
