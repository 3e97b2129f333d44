package collector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/bitwig-uuid-collector/internal/clipboard"
	"github.com/shinji-kodama/bitwig-uuid-collector/internal/model"
)

// ErrInputClosed is returned when standard input ends before the operator
// answered a prompt. The run cannot continue without the operator, so
// nothing is saved.
var ErrInputClosed = errors.New("input closed before the run finished")

// Collector owns the console and clipboard handles for one run.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	clip   clipboard.Reader
	styles styles

	// Logf receives trace messages. It defaults to a no-op; the CLI
	// wires it to its verbose logger.
	Logf func(format string, args ...interface{})
}

// New creates a Collector reading operator input from in, writing prompts
// to out and reading captured values from clip.
func New(in io.Reader, out io.Writer, clip clipboard.Reader) *Collector {
	return &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		clip:   clip,
		styles: newStyles(out),
		Logf:   func(string, ...interface{}) {},
	}
}

// Start prints the banner and blocks until the operator presses Enter.
func (c *Collector) Start() error {
	fmt.Fprintln(c.out, c.styles.title.Render("Bitwig Device UUID Extractor"))
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintln(c.out, "This tool requires manual interaction:")
	fmt.Fprintln(c.out, "1. Open Bitwig Studio")
	fmt.Fprintln(c.out, "2. Create a new project")
	fmt.Fprintln(c.out, "3. For each device, add it to a track")
	fmt.Fprintln(c.out, "4. Right-click the device → Copy Device ID")
	fmt.Fprintln(c.out, "5. The UUID will be automatically captured")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Press Enter when ready to start...")

	_, err := c.readLine()
	return err
}

// Run visits every catalog item once, in order, and returns the captured
// values together with one outcome per item.
//
// The only error Run returns is an input failure (ErrInputClosed or a read
// error); clipboard and validation problems are reported as outcomes.
func (c *Collector) Run(catalog model.Catalog) (*model.Result, []model.Outcome, error) {
	if err := catalog.Validate(); err != nil {
		return nil, nil, err
	}

	result := model.NewResult()
	outcomes := make([]model.Outcome, 0, len(catalog))

	for _, item := range catalog {
		outcome, err := c.Step(item)
		if err != nil {
			return nil, nil, err
		}
		if outcome.Kind == model.OutcomeCaptured {
			result.Set(outcome.Item, outcome.Value)
		}
		c.Logf("%s", outcome)
		outcomes = append(outcomes, outcome)
	}

	return result, outcomes, nil
}

// Step processes a single item: prompt, wait for input, then skip or
// capture. The returned error is non-nil only when input could not be read.
func (c *Collector) Step(item string) (model.Outcome, error) {
	fmt.Fprintf(c.out, "\n📌 %s\n", c.styles.device.Render("Device: "+item))
	fmt.Fprintln(c.out, "   "+c.styles.hint.Render(fmt.Sprintf("1. Add '%s' to a track in Bitwig", item)))
	fmt.Fprintln(c.out, "   "+c.styles.hint.Render("2. Right-click on it → 'Copy Device ID'"))
	fmt.Fprintln(c.out, "   "+c.styles.hint.Render("3. Press Enter when done (or 's' to skip)"))
	fmt.Fprint(c.out, "   > ")

	input, err := c.readLine()
	if err != nil {
		return model.Outcome{}, err
	}

	if model.IsSkip(input) {
		fmt.Fprintln(c.out, "   "+c.styles.skipped.Render("⏭️  Skipped "+item))
		return model.Skipped(item), nil
	}

	raw, err := c.clip.ReadText()
	if err != nil {
		fmt.Fprintln(c.out, "   "+c.styles.failure.Render(fmt.Sprintf("❌ Error reading clipboard: %v", err)))
		return model.ClipboardFailed(item, err), nil
	}

	value := strings.TrimSpace(raw)
	if !model.ValidCapture(value) {
		fmt.Fprintln(c.out, "   "+c.styles.failure.Render("❌ Invalid UUID format: "+value))
		return model.Invalid(item, value), nil
	}

	fmt.Fprintln(c.out, "   "+c.styles.success.Render("✅ Captured: "+value))
	return model.Captured(item, value), nil
}

// Summary reports how many values were saved to path and echoes the
// encoded mapping, exactly as written, for the operator to check.
func (c *Collector) Summary(saved int, path string, encoded []byte) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.success.Render(
		fmt.Sprintf("✅ Saved %d UUIDs to %s", saved, path)))
	fmt.Fprintln(c.out, string(encoded))
}

// readLine returns the next input line without its line terminator.
// A final line that lacks a newline still counts as input.
func (c *Collector) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
