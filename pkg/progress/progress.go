// Package progress provides the progress sink capability injected into the
// history traversal. Callers choose a sink explicitly; there is no process
// global toggle.
package progress

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// Sink receives traversal progress events. Implementations must tolerate
// Increment/Finish without a prior Start.
type Sink interface {
	// Start begins a progress phase with the given message.
	Start(message string)
	// Increment records one unit of completed work.
	Increment()
	// Finish ends the current phase and removes any terminal artifacts.
	Finish()
}

// Nop is a Sink that discards all events.
type Nop struct{}

// Start implements Sink.
func (Nop) Start(string) {}

// Increment implements Sink.
func (Nop) Increment() {}

// Finish implements Sink.
func (Nop) Finish() {}

// renderInterval is how often the console sink redraws.
const renderInterval = 100 * time.Millisecond

// Console renders a progress tracker to the given writer (normally stderr,
// so it never interferes with statistics written to stdout).
type Console struct {
	writer  progress.Writer
	tracker *progress.Tracker
}

// NewConsole creates a console progress sink writing to out.
func NewConsole(out io.Writer) *Console {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetAutoStop(false)
	pw.SetUpdateFrequency(renderInterval)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Percentage = false

	return &Console{writer: pw}
}

// Start implements Sink.
func (c *Console) Start(message string) {
	c.tracker = &progress.Tracker{
		Message: message,
		Total:   0, // Indeterminate; the commit count is unknown upfront.
		Units:   progress.UnitsDefault,
	}

	c.writer.AppendTracker(c.tracker)

	go c.writer.Render()
}

// Increment implements Sink.
func (c *Console) Increment() {
	if c.tracker != nil {
		c.tracker.Increment(1)
	}
}

// Finish implements Sink.
func (c *Console) Finish() {
	if c.tracker == nil {
		return
	}

	c.tracker.MarkAsDone()
	c.writer.Stop()
	c.tracker = nil
}
