// Package model defines the domain types for the bitwig-uuid-collector CLI.
//
// An Outcome describes what happened to a single catalog item during a run.
// The collector returns one Outcome per item instead of signalling failures
// through errors, so a bad clipboard value never aborts the loop.
package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CaptureLength is the exact length a captured value must have to be kept.
// It matches the textual form of a UUID (8-4-4-4-12 plus hyphens), but only
// the length is checked; the hyphen positions and hex digits are not.
const CaptureLength = 36

// ValidCapture reports whether a trimmed clipboard value is worth recording.
// Length is counted in characters, not bytes.
func ValidCapture(value string) bool {
	return value != "" && utf8.RuneCountInString(value) == CaptureLength
}

// IsSkip reports whether an operator's input line is the skip token.
// Surrounding whitespace and letter case are ignored.
func IsSkip(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "s")
}

// OutcomeKind represents the terminal state of a catalog item in one run.
// The state transitions are:
//
//	pending → skipped | captured | invalid | clipboard-error
//
// Every state is terminal and independent of the other items.
type OutcomeKind string

const (
	// OutcomeCaptured indicates the clipboard held a valid value that was
	// recorded in the result mapping.
	OutcomeCaptured OutcomeKind = "captured"

	// OutcomeSkipped indicates the operator typed the skip token.
	// The clipboard was not read.
	OutcomeSkipped OutcomeKind = "skipped"

	// OutcomeInvalid indicates the clipboard was read but the value failed
	// the length check.
	OutcomeInvalid OutcomeKind = "invalid"

	// OutcomeClipboardError indicates the clipboard could not be read.
	OutcomeClipboardError OutcomeKind = "clipboard-error"
)

// String returns the string representation of OutcomeKind.
func (k OutcomeKind) String() string {
	return string(k)
}

// IsValid checks whether the OutcomeKind value is one of the
// predefined valid states.
func (k OutcomeKind) IsValid() bool {
	switch k {
	case OutcomeCaptured, OutcomeSkipped, OutcomeInvalid, OutcomeClipboardError:
		return true
	default:
		return false
	}
}

// Outcome is the result of processing one catalog item.
type Outcome struct {
	// Item is the catalog name the outcome belongs to.
	Item string `json:"item"`

	// Kind is the terminal state reached for the item.
	Kind OutcomeKind `json:"kind"`

	// Value is the trimmed clipboard text. Set for captured and invalid
	// outcomes (it may be empty for invalid ones).
	Value string `json:"value,omitempty"`

	// Err is the clipboard failure. Only set for clipboard-error outcomes.
	Err error `json:"-"`
}

// Captured builds an outcome for a recorded value.
func Captured(item, value string) Outcome {
	return Outcome{Item: item, Kind: OutcomeCaptured, Value: value}
}

// Skipped builds an outcome for an item the operator skipped.
func Skipped(item string) Outcome {
	return Outcome{Item: item, Kind: OutcomeSkipped}
}

// Invalid builds an outcome for a value that failed ValidCapture.
func Invalid(item, raw string) Outcome {
	return Outcome{Item: item, Kind: OutcomeInvalid, Value: raw}
}

// ClipboardFailed builds an outcome for a failed clipboard read.
func ClipboardFailed(item string, err error) Outcome {
	return Outcome{Item: item, Kind: OutcomeClipboardError, Err: err}
}

// String returns a short human-readable form, e.g. "EQ+: captured".
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeCaptured, OutcomeInvalid:
		return fmt.Sprintf("%s: %s (%q)", o.Item, o.Kind, o.Value)
	case OutcomeClipboardError:
		return fmt.Sprintf("%s: %s (%v)", o.Item, o.Kind, o.Err)
	default:
		return fmt.Sprintf("%s: %s", o.Item, o.Kind)
	}
}

// CountOutcomes tallies outcomes by kind.
func CountOutcomes(outcomes []Outcome) map[OutcomeKind]int {
	counts := make(map[OutcomeKind]int, 4)
	for _, o := range outcomes {
		counts[o.Kind]++
	}
	return counts
}

// ExitCode defines the CLI exit codes. A normal collection run always
// exits with ExitSuccess; the other codes cover the surrounding commands
// and the cases where the run cannot finish at all.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred, such as
	// the output file not being writable.
	ExitGeneralError ExitCode = 1

	// ExitOutputNotFound indicates the capture file to show does not exist.
	ExitOutputNotFound ExitCode = 2

	// ExitInvalidOutput indicates the capture file exists but is not a
	// JSON object of string values.
	ExitInvalidOutput ExitCode = 3

	// ExitUserCancelled indicates standard input was closed before the
	// run finished.
	ExitUserCancelled ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
