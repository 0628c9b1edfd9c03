package diagnostics

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressReporterSilentBelowCadence(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf, "tokenising")
	for i := 0; i < progressLineInterval-1; i++ {
		r.Tick()
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output before the line-count cadence fires, got %q", buf.String())
	}
}

func TestProgressReporterPrintsAtLineCadence(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf, "tokenising")
	for i := 0; i < progressLineInterval; i++ {
		r.Tick()
	}
	if !strings.Contains(buf.String(), "tokenising") || !strings.Contains(buf.String(), "10,000") {
		t.Fatalf("expected a cadence print mentioning the label and count, got %q", buf.String())
	}
}

func TestProgressReporterDoneNoopWhenNeverPrinted(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf, "tokenising")
	r.Tick()
	r.Done()
	if buf.Len() != 0 {
		t.Fatalf("expected Done to stay silent when the cadence never fired, got %q", buf.String())
	}
}

func TestProgressReporterDonePrintsFinalLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewProgressReporter(&buf, "tokenising")
	for i := 0; i < progressLineInterval; i++ {
		r.Tick()
	}
	buf.Reset()
	r.Done()
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected Done to end with a newline, got %q", out)
	}
}

func TestPrintWarningFormat(t *testing.T) {
	var buf bytes.Buffer
	PrintWarning(&buf, "tolerance %s out of range, clamped to %s", "0.6", "0.5")
	want := "WARNING: tolerance 0.6 out of range, clamped to 0.5\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrintSummaryReductionPercentages(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, Statistics{
		InputLines:  100,
		OutputLines: 40,
		BytesIn:     1000,
		BytesOut:    400,
	})
	out := buf.String()
	if !strings.Contains(out, "60.0%") {
		t.Fatalf("expected 60%% line and size reduction in summary, got %q", out)
	}
}
