package annotations

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// OutputFormatter formats events for human-readable display.
type OutputFormatter struct {
	useColor bool
	writer   io.Writer
}

// NewOutputFormatter creates a formatter with color support detection.
func NewOutputFormatter(w io.Writer) *OutputFormatter {
	if w == nil {
		w = os.Stdout
	}

	// Auto-detect color support
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isTerminal(f.Fd())
	}

	return &OutputFormatter{
		useColor: useColor,
		writer:   w,
	}
}

// Handle implements the Handler interface - prints events as they occur
func (f *OutputFormatter) Handle(event Event) {
	output := f.Format(event)
	if output != "" {
		fmt.Fprintln(f.writer, output)
	}
}

// Format converts an event to a human-readable string.
func (f *OutputFormatter) Format(event Event) string {
	latency := f.formatLatency(event)

	switch event.Name {
	case MineBegin:
		return fmt.Sprintf("%s %s Mining %s at min support %.4f",
			latency,
			f.colorize("===", color.FgYellow),
			f.colorizeCount("transactions", event.Data["transactions"].(int)),
			event.Data["minSupport"].(float64))

	case MineComplete:
		success := event.Data["success"].(bool)
		if !success {
			return fmt.Sprintf("%s %s Mining failed: %v",
				latency,
				f.colorize("✗", color.FgRed),
				event.Data["error"])
		}
		return fmt.Sprintf("%s %s Mining done with %s across %d levels.",
			latency,
			f.colorize("===", color.FgGreen),
			f.colorizeCount("itemsets", event.Data["itemsets"].(int)),
			event.Data["levels"].(int))

	case LevelBegin:
		return fmt.Sprintf("%s %s Level %d starting with %s",
			latency,
			f.colorize("===", color.FgYellow),
			event.Data["level"].(int),
			f.colorizeCount("candidates", event.Data["candidates"].(int)))

	case LevelComplete:
		return fmt.Sprintf("%s Level %d completed with %s",
			latency,
			event.Data["level"].(int),
			f.colorizeCount("itemsets", event.Data["frequent"].(int)))

	case CandidatesGenerated:
		return fmt.Sprintf("%s Generated %s for level %d",
			latency,
			f.colorizeCount("candidates", event.Data["candidates"].(int)),
			event.Data["level"].(int))

	case CandidatesPruned:
		return fmt.Sprintf("%s Pruned %s by downward closure",
			latency,
			f.colorizeCount("candidates", event.Data["pruned"].(int)))

	case ReduceClosed:
		return fmt.Sprintf("%s Closed reduction: %s of %s",
			latency,
			f.colorizeCount("itemsets", event.Data["closed"].(int)),
			f.colorizeCount("itemsets", event.Data["frequent"].(int)))

	case ReduceMaximal:
		return fmt.Sprintf("%s Maximal reduction: %s of %s",
			latency,
			f.colorizeCount("itemsets", event.Data["maximal"].(int)),
			f.colorizeCount("itemsets", event.Data["frequent"].(int)))
	}

	return ""
}

// formatLatency renders the event duration bracket, colored by cost.
func (f *OutputFormatter) formatLatency(event Event) string {
	// Use floating-point milliseconds to preserve precision
	ms := float64(event.Latency.Microseconds()) / 1000.0
	s := fmt.Sprintf("[%.1fms]", ms)

	if !f.useColor {
		return s
	}

	switch {
	case ms < 50:
		return color.GreenString(s)
	case ms < 200:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

// colorizeCount formats a count with a label, using color based on the label type.
func (f *OutputFormatter) colorizeCount(label string, count int) string {
	text := fmt.Sprintf("%d %s", count, label)

	if !f.useColor {
		return text
	}

	switch strings.ToLower(label) {
	case "itemsets":
		return color.CyanString(text)
	case "candidates":
		return color.MagentaString(text)
	case "transactions":
		return color.BlueString(text)
	default:
		return text
	}
}

// colorize applies color if enabled.
func (f *OutputFormatter) colorize(text string, attrs ...color.Attribute) string {
	if !f.useColor {
		return text
	}
	return color.New(attrs...).Sprint(text)
}

// ConsoleHandler creates a handler that prints formatted events to stdout.
func ConsoleHandler() Handler {
	formatter := NewOutputFormatter(os.Stdout)
	return formatter.Handle
}

// isTerminal checks if the file descriptor is a terminal.
// This is a simplified version - in production you'd use a proper terminal detection library.
func isTerminal(fd uintptr) bool {
	return fd == uintptr(1) || fd == uintptr(2) // stdout or stderr
}
