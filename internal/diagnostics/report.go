package diagnostics

import (
	"fmt"
	"io"
	"time"

	"github.com/gcode-clean/gcodeclean/internal/catalog"
	"github.com/gcode-clean/gcodeclean/internal/splitter"
)

// Statistics summarises one clean run, the way the teacher's
// optimizer.Statistics summarises one optimize run.
type Statistics struct {
	InputLines     int
	OutputLines    int
	BytesIn        int64
	BytesOut       int64
	ClampedTravels int
	ArcsFitted     int
	ProcessingTime time.Duration
}

func (s Statistics) lineReductionPercent() float64 {
	if s.InputLines == 0 {
		return 0
	}
	return float64(s.InputLines-s.OutputLines) / float64(s.InputLines) * 100
}

func (s Statistics) sizeReductionPercent() float64 {
	if s.BytesIn == 0 {
		return 0
	}
	return float64(s.BytesIn-s.BytesOut) / float64(s.BytesIn) * 100
}

// PrintWarning prints "WARNING: <message>" to w (§7's Configuration error
// policy: clamped values are reported, not silently applied).
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "WARNING: %s\n", fmt.Sprintf(format, args...))
}

// PrintSummary prints the run statistics to w.
func PrintSummary(w io.Writer, s Statistics) {
	fmt.Fprintln(w, "\n=== GCode Clean Complete ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Input lines:     %s\n", FormatNumber(s.InputLines))
	fmt.Fprintf(w, "Output lines:    %s\n", FormatNumber(s.OutputLines))
	fmt.Fprintf(w, "Line reduction:  %.1f%%\n", s.lineReductionPercent())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Input size:      %s bytes\n", FormatBytes(s.BytesIn))
	fmt.Fprintf(w, "Output size:     %s bytes\n", FormatBytes(s.BytesOut))
	fmt.Fprintf(w, "Size reduction:  %.1f%%\n", s.sizeReductionPercent())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Travels clamped: %s\n", FormatNumber(s.ClampedTravels))
	fmt.Fprintf(w, "Arcs fitted:     %s\n", FormatNumber(s.ArcsFitted))
	fmt.Fprintf(w, "Processing time: %s\n", FormatDuration(s.ProcessingTime))
}

// progressLineInterval and progressTimeInterval are the teacher's own
// reporting cadence (internal/progress.ProgressReporter), carried over
// unchanged: report every 10,000 lines or every 2 seconds, whichever comes
// first.
const (
	progressLineInterval = 10000
	progressTimeInterval = 2 * time.Second
)

// ProgressReporter prints a \r-overwritten "lines streamed" counter to w,
// throttled to progressTimeInterval/progressLineInterval, mirroring the
// teacher's ProgressTracker cadence generalised from "lines filtered" to
// "lines streamed through phase N".
type ProgressReporter struct {
	w         io.Writer
	label     string
	count     int
	lastPrint time.Time
	active    bool
}

// NewProgressReporter returns a reporter that labels its output with phase,
// e.g. "tokenising". Reporting is a no-op until Tick is called enough to
// cross the cadence thresholds.
func NewProgressReporter(w io.Writer, phase string) *ProgressReporter {
	return &ProgressReporter{w: w, label: phase, lastPrint: time.Now()}
}

// Tick records one more line processed and prints an updated counter if
// enough lines or time have passed since the last print.
func (p *ProgressReporter) Tick() {
	p.count++
	if p.count%progressLineInterval != 0 && time.Since(p.lastPrint) < progressTimeInterval {
		return
	}
	p.print()
}

func (p *ProgressReporter) print() {
	fmt.Fprintf(p.w, "\r%s: %s lines", p.label, FormatNumber(p.count))
	p.lastPrint = time.Now()
	p.active = true
}

// Done prints the final count and moves to a fresh line, if anything was
// ever printed.
func (p *ProgressReporter) Done() {
	if !p.active {
		return
	}
	fmt.Fprintf(p.w, "\r%s: %s lines\n", p.label, FormatNumber(p.count))
}

// PrintError prints a user-facing error to w and returns the exit code it
// implies (§6's exit-code contract).
func PrintError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	switch err.(type) {
	case *catalog.LoadError:
		return 3
	case *splitter.PreconditionError:
		return 4
	default:
		return 1
	}
}
