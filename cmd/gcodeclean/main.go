// Command gcodeclean is the CLI entry point: `clean` runs the full
// tokenise/normalise/simplify/minimise pipeline over a G-code file; `split`
// partitions an already-cleaned file into one file per cut.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/catalog"
	"github.com/gcode-clean/gcodeclean/internal/cli"
	"github.com/gcode-clean/gcodeclean/internal/config"
	"github.com/gcode-clean/gcodeclean/internal/diagnostics"
	"github.com/gcode-clean/gcodeclean/internal/gcode"
	"github.com/gcode-clean/gcodeclean/internal/gline"
	"github.com/gcode-clean/gcodeclean/internal/phase1"
	"github.com/gcode-clean/gcodeclean/internal/phase2"
	"github.com/gcode-clean/gcodeclean/internal/phase3"
	"github.com/gcode-clean/gcodeclean/internal/preamble"
	"github.com/gcode-clean/gcodeclean/internal/splitter"
)

// progressReportThreshold is the input size (in lines) above which runClean
// turns on streaming progress output; small inputs finish well within the
// reporter's own 2-second cadence and would never print anything useful.
const progressReportThreshold = 10000

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || cli.ShouldShowHelp(args) {
		fmt.Print(cli.HelpText())
		return 0
	}
	if cli.ShouldShowVersion(args) {
		fmt.Print(cli.VersionText())
		return 0
	}

	switch args[0] {
	case "clean":
		return runClean(args[1:])
	case "split":
		return runSplit(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		fmt.Print(cli.HelpText())
		return 1
	}
}

func readLines(path string) ([]string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return lines, info.Size(), nil
}

// reportMalformedLines surfaces every structurally-invalid line (§7's
// Structural error kind: an N token not first on the line) to the user with
// a best-effort human-readable description, via the legacy gcode.DescribeLine
// fallback parser. The offending line is still emitted unchanged by the
// pipeline; this is purely informational.
func reportMalformedLines(rawLines []string, lines []gline.Line) {
	for i, l := range lines {
		if l.Valid {
			continue
		}
		raw := ""
		if i < len(rawLines) {
			raw = rawLines[i]
		}
		diagnostics.PrintWarning(os.Stderr, "line %d invalid (N not first token): %s", i+1, gcode.DescribeLine(raw))
	}
}

func outputPath(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".nc"
	}
	return stem + "-gcc" + ext
}

func runClean(args []string) int {
	start := time.Now()
	parsed, err := cli.ParseCleanArgs(args)
	if err != nil {
		return diagnostics.PrintError(os.Stderr, err)
	}

	if _, statErr := os.Stat(parsed.InputFile); statErr != nil {
		diagnostics.PrintError(os.Stderr, fmt.Errorf("input file missing: %w", statErr))
		return 1
	}

	rawLines, bytesIn, err := readLines(parsed.InputFile)
	if err != nil {
		diagnostics.PrintError(os.Stderr, err)
		return 1
	}

	if f, openErr := os.Open(parsed.InputFile); openErr == nil {
		if meta, scanErr := gcode.ScanHeader(f); scanErr == nil && meta.Is4Axis {
			diagnostics.PrintWarning(os.Stderr, "4-axis (B-axis) commands detected; this pipeline passes them through unmodified")
		}
		f.Close()
	}

	resolved, clamps := config.Resolve(parsed.Config)
	for _, c := range clamps {
		diagnostics.PrintWarning(os.Stderr, "%s %s out of range, clamped to %s", c.Name, c.Original.String(), c.Value.String())
	}

	cat := catalog.Empty()
	if resolved.Annotate {
		loaded, loadErr := catalog.Load(resolved.TokenDefs)
		if loadErr != nil {
			diagnostics.PrintWarning(os.Stderr, "token-definition catalogue unavailable (%v), annotation disabled", loadErr)
			resolved.Annotate = false
		} else {
			cat = loaded
		}
	}

	var reporter *diagnostics.ProgressReporter
	var tick func()
	if len(rawLines) >= progressReportThreshold {
		reporter = diagnostics.NewProgressReporter(os.Stdout, "tokenising")
		tick = reporter.Tick
	}
	raw := gline.CollectWithTick(gline.Tokenise(gline.Stream(rawLines)), tick)
	if reporter != nil {
		reporter.Done()
	}
	reportMalformedLines(rawLines, raw)

	p1, ctx := phase1.Run(raw)
	injected := preamble.Inject(p1, resolved.ZClamp)
	clampedTravels := countClampedTravels(p1, resolved.ZClamp)

	simplified := phase2.Run(injected, ctx, phase2.Config{
		Tolerance:                   resolved.Tolerance,
		ArcTolerance:                resolved.ArcTolerance,
		ZClamp:                      resolved.ZClamp,
		EliminateNeedlessTravelling: resolved.EliminateNeedlessTravelling,
	})
	arcsFitted := countArcs(simplified) - countArcs(injected)
	if arcsFitted < 0 {
		arcsFitted = 0
	}

	outLines := phase3.Run(simplified, phase3.Config{
		Annotate:    resolved.Annotate,
		LineNumbers: resolved.LineNumbers,
		Minimise:    resolved.Minimise,
	}, cat)

	out := outputPath(parsed.InputFile)
	if _, statErr := os.Stat(out); statErr == nil && !parsed.Force {
		diagnostics.PrintError(os.Stderr, fmt.Errorf("output file %s already exists (use --force to overwrite)", out))
		return 1
	}

	content := strings.Join(outLines, "\n") + "\n"
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		diagnostics.PrintError(os.Stderr, err)
		return 1
	}

	diagnostics.PrintSummary(os.Stdout, diagnostics.Statistics{
		InputLines:     len(rawLines),
		OutputLines:    len(outLines),
		BytesIn:        bytesIn,
		BytesOut:       int64(len(content)),
		ClampedTravels: clampedTravels,
		ArcsFitted:     arcsFitted,
		ProcessingTime: time.Since(start),
	})
	return 0
}

// countClampedTravels counts G0 lines whose Z sits below zClamp before the
// injector pass raises it — an approximation of how many travels the §4.3
// clamp will touch, good enough for the summary's informational purposes.
func countClampedTravels(lines []gline.Line, zClamp decimal.Decimal) int {
	n := 0
	for _, l := range lines {
		if !l.HasMovementCommand() {
			continue
		}
		isG0 := false
		for _, t := range l.Tokens {
			if t.IsGCommand("0") {
				isG0 = true
			}
		}
		if !isG0 {
			continue
		}
		if z, ok := l.Find("Z"); ok && z.Number.LessThan(zClamp) {
			n++
		}
	}
	return n
}

// countArcs counts G2/G3 lines in a stream, used to report how many arcs
// Phase 2's linear-to-arc fit introduced.
func countArcs(lines []gline.Line) int {
	n := 0
	for _, l := range lines {
		for _, t := range l.Tokens {
			if t.IsGCommand("2") || t.IsGCommand("3") {
				n++
				break
			}
		}
	}
	return n
}

func runSplit(args []string) int {
	parsed, err := cli.ParseSplitArgs(args)
	if err != nil {
		return diagnostics.PrintError(os.Stderr, err)
	}
	if _, statErr := os.Stat(parsed.InputFile); statErr != nil {
		diagnostics.PrintError(os.Stderr, fmt.Errorf("input file missing: %w", statErr))
		return 1
	}

	rawLines, _, err := readLines(parsed.InputFile)
	if err != nil {
		diagnostics.PrintError(os.Stderr, err)
		return 1
	}

	folder := parsed.Folder
	if folder == "" {
		ext := filepath.Ext(parsed.InputFile)
		folder = strings.TrimSuffix(parsed.InputFile, ext)
	}

	written, err := splitter.Split(rawLines, folder)
	if err != nil {
		return diagnostics.PrintError(os.Stderr, err)
	}
	fmt.Printf("Wrote %d files to %s\n", len(written), folder)
	return 0
}
