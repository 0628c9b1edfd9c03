package gcode

import (
	"strings"
	"testing"
)

func TestScanHeaderDetectsMetadata(t *testing.T) {
	input := strings.NewReader(";MIN_Z: -5.2\n;MAX_Z: 0.0\nG17 G40 G90 G21\nG0 Z5\n")
	meta, err := ScanHeader(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.ZReference != ZRefMetadata {
		t.Errorf("ZReference = %v, want ZRefMetadata", meta.ZReference)
	}
	if meta.MinZ != -5.2 || meta.MaxZ != 0.0 {
		t.Errorf("MinZ/MaxZ = %v/%v, want -5.2/0", meta.MinZ, meta.MaxZ)
	}
	if meta.Is4Axis {
		t.Error("should not detect 4-axis content here")
	}
}

func TestScanHeaderDetectsFourAxis(t *testing.T) {
	input := strings.NewReader("G17 G40 G90 G21\nG1 X1 Y2 B45.0 F100\n")
	meta, err := ScanHeader(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !meta.Is4Axis {
		t.Error("expected Is4Axis to be detected from a B-axis word")
	}
}

func TestScanHeaderFallsBackWithNoMetadata(t *testing.T) {
	input := strings.NewReader("G17 G40 G90 G21\nG0 Z5\n")
	meta, err := ScanHeader(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.ZReference != ZRefSurface {
		t.Errorf("ZReference = %v, want ZRefSurface", meta.ZReference)
	}
}

func TestDescribeLineRendersCodesAndComment(t *testing.T) {
	got := DescribeLine("G1 X10 Y20 (cut)")
	if !strings.Contains(got, "G1") || !strings.Contains(got, "X10") {
		t.Errorf("DescribeLine = %q, want it to mention G1 and X10", got)
	}
}

func TestDescribeLineHandlesBlank(t *testing.T) {
	if got := DescribeLine("   "); got != "(blank line)" {
		t.Errorf("DescribeLine(blank) = %q", got)
	}
}
