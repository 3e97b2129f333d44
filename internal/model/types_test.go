package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultCatalog verifies the built-in catalog size, order and uniqueness.
func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	want := Catalog{
		"EQ+", "Polysynth", "Phase-4", "FM-4", "Sampler", "Delay+",
		"Compressor+", "Limiter", "Reverb", "Chorus", "Flanger", "Phaser",
		"Distortion", "Filter+", "Tool", "Poly Grid", "FX Grid", "Note Grid",
		"Polymer", "Drum Machine", "Audio Receiver", "Note Receiver",
		"HW Instrument", "Clip Launcher",
	}
	require.Len(t, c, 24)
	assert.Equal(t, want, c)
	assert.NoError(t, c.Validate())
}

// TestDefaultCatalog_ReturnsCopy ensures callers cannot mutate the built-in list.
func TestDefaultCatalog_ReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	c[0] = "changed"

	assert.Equal(t, "EQ+", DefaultCatalog()[0])
}

// TestCatalog_Validate checks empty and duplicate names are rejected.
func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{"empty catalog", Catalog{}, ""},
		{"unique names", Catalog{"EQ+", "Polysynth"}, ""},
		{"empty name", Catalog{"EQ+", ""}, "empty name"},
		{"duplicate name", Catalog{"EQ+", "Tool", "EQ+"}, `"EQ+" appears at positions 0 and 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCatalog_Contains(t *testing.T) {
	c := Catalog{"EQ+", "Polysynth"}
	assert.True(t, c.Contains("Polysynth"))
	assert.False(t, c.Contains("polysynth"))
}

// TestValidCapture covers the length heuristic, including values that are
// 36 characters long but are not UUIDs.
func TestValidCapture(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"123e4567-e89b-12d3-a456-426614174000", true},
		{strings.Repeat("x", 36), true},
		{"", false},
		{"123e4567-e89b-12d3-a456-42661417400", false},
		{"123e4567-e89b-12d3-a456-4266141740000", false},
		{"hello", false},
		{strings.Repeat("é", 36), true},
		{strings.Repeat("é", 18), false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCapture(tt.value))
		})
	}
}

// TestIsSkip verifies the skip token is matched case-insensitively and
// with surrounding whitespace ignored.
func TestIsSkip(t *testing.T) {
	assert.True(t, IsSkip("s"))
	assert.True(t, IsSkip("S"))
	assert.True(t, IsSkip("  s \t"))
	assert.False(t, IsSkip(""))
	assert.False(t, IsSkip("skip"))
	assert.False(t, IsSkip("go"))
}

func TestOutcomeKind_IsValid(t *testing.T) {
	assert.True(t, OutcomeCaptured.IsValid())
	assert.True(t, OutcomeSkipped.IsValid())
	assert.True(t, OutcomeInvalid.IsValid())
	assert.True(t, OutcomeClipboardError.IsValid())
	assert.False(t, OutcomeKind("pending").IsValid())
}

// TestOutcome_String checks the per-kind short descriptions.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, `EQ+: captured ("abc")`, Captured("EQ+", "abc").String())
	assert.Equal(t, "Tool: skipped", Skipped("Tool").String())
	assert.Equal(t, `Reverb: invalid ("")`, Invalid("Reverb", "").String())
	assert.Equal(t, "FM-4: clipboard-error (no xclip)",
		ClipboardFailed("FM-4", errors.New("no xclip")).String())
}

func TestCountOutcomes(t *testing.T) {
	counts := CountOutcomes([]Outcome{
		Captured("a", "x"),
		Skipped("b"),
		Skipped("c"),
		Invalid("d", ""),
	})

	assert.Equal(t, 1, counts[OutcomeCaptured])
	assert.Equal(t, 2, counts[OutcomeSkipped])
	assert.Equal(t, 1, counts[OutcomeInvalid])
	assert.Equal(t, 0, counts[OutcomeClipboardError])
}

// TestResult_SetKeepsFirstValue ensures entries are never updated once added.
func TestResult_SetKeepsFirstValue(t *testing.T) {
	var r Result

	assert.True(t, r.Set("EQ+", "first"))
	assert.False(t, r.Set("EQ+", "second"))

	v, ok := r.Get("EQ+")
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, r.Len())
}

// TestResult_MarshalJSON_InsertionOrder verifies keys are emitted in the
// order they were captured rather than sorted.
func TestResult_MarshalJSON_InsertionOrder(t *testing.T) {
	r := NewResult()
	r.Set("Polysynth", "b")
	r.Set("EQ+", "a")
	r.Set("Delay+", "c")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"Polysynth":"b","EQ+":"a","Delay+":"c"}`, string(data))
}

// TestResult_MarshalIndent checks the two-space indented form written to disk.
func TestResult_MarshalIndent(t *testing.T) {
	r := NewResult()
	r.Set("EQ+", "123e4567-e89b-12d3-a456-426614174000")

	data, err := json.MarshalIndent(r, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"EQ+\": \"123e4567-e89b-12d3-a456-426614174000\"\n}", string(data))

	empty, err := json.MarshalIndent(NewResult(), "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}

// TestResult_UnmarshalJSON verifies decoding keeps document order.
func TestResult_UnmarshalJSON(t *testing.T) {
	var r Result
	err := json.Unmarshal([]byte(`{"Tool": "t", "EQ+": "e"}`), &r)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tool", "EQ+"}, r.Names())
	assert.Equal(t, []Entry{{"Tool", "t"}, {"EQ+", "e"}}, r.Entries())
}

// TestResult_UnmarshalJSON_Errors covers the rejected document shapes.
func TestResult_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"array", `["a"]`, "expected a JSON object"},
		{"number value", `{"EQ+": 1}`, `value for "EQ+": expected a string`},
		{"null value", `{"EQ+": null}`, `value for "EQ+": expected a string`},
		{"nested object", `{"EQ+": {"id": "x"}}`, `value for "EQ+": expected a string`},
		{"duplicate key", `{"EQ+": "a", "EQ+": "b"}`, `duplicate key "EQ+"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Result
			err := json.Unmarshal([]byte(tt.input), &r)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestCLIError verifies the CLIError message formatting and unwrapping.
func TestCLIError(t *testing.T) {
	t.Run("without wrapped error", func(t *testing.T) {
		err := NewCLIError(ExitOutputNotFound, "capture file not found")
		assert.Equal(t, "capture file not found", err.Error())
		assert.Equal(t, ExitOutputNotFound, err.Code)
		assert.Nil(t, err.Unwrap())
	})

	t.Run("with wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitGeneralError, "cannot write output", inner)
		assert.Equal(t, "cannot write output: permission denied", err.Error())
		assert.True(t, errors.Is(err, inner))

		var cliErr *CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, ExitGeneralError, cliErr.Code)
	})
}
