// Package cli parses command-line arguments the way the teacher's
// internal/cli/args.go does: stdlib flag, positional-plus-flags, plain text
// help/version output. No cobra, no viper.
package cli

import (
	"flag"
	"fmt"
	"runtime"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gcode-clean/gcodeclean/internal/config"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Args is the parsed command line for the "clean" subcommand.
type Args struct {
	InputFile string
	Force     bool
	Config    config.Config
}

// SplitArgs is the parsed command line for the "split" subcommand.
type SplitArgs struct {
	InputFile string
	Folder    string
	Force     bool
}

func parseDecimalFlag(fs *flag.FlagSet, name string, def decimal.Decimal, usage string) *string {
	return fs.String(name, def.String(), usage)
}

// ParseCleanArgs parses `gcodeclean clean [flags] <input-file>`.
func ParseCleanArgs(args []string) (*Args, error) {
	fs := flag.NewFlagSet("gcodeclean clean", flag.ContinueOnError)
	def := config.Default()

	force := fs.Bool("force", false, "overwrite output file without prompting")
	annotate := fs.Bool("annotate", def.Annotate, "emit trailing annotations")
	lineNumbers := fs.Bool("line-numbers", def.LineNumbers, "preserve N tokens")
	minimise := fs.String("minimise", def.Minimise, "SOFT, MEDIUM, HARD, or a letter set")
	tolerance := parseDecimalFlag(fs, "tolerance", def.Tolerance, "clipping/colinear-dedup tolerance")
	arcTolerance := parseDecimalFlag(fs, "arc-tolerance", def.ArcTolerance, "arc-fit tolerance")
	zClamp := parseDecimalFlag(fs, "z-clamp", def.ZClamp, "maximum travel Z")
	eliminateTravel := fs.Bool("eliminate-needless-travelling", false, "collapse redundant travel moves")
	tokenDefs := fs.String("token-defs", def.TokenDefs, "path to the token-definition catalogue")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	positional := fs.Args()
	if len(positional) != 1 {
		return nil, fmt.Errorf("expected 1 argument (input file), got %d", len(positional))
	}

	tolVal, err := decimal.NewFromString(*tolerance)
	if err != nil {
		return nil, fmt.Errorf("invalid tolerance %q: %w", *tolerance, err)
	}
	arcTolVal, err := decimal.NewFromString(*arcTolerance)
	if err != nil {
		return nil, fmt.Errorf("invalid arc-tolerance %q: %w", *arcTolerance, err)
	}
	zClampVal, err := decimal.NewFromString(*zClamp)
	if err != nil {
		return nil, fmt.Errorf("invalid z-clamp %q: %w", *zClamp, err)
	}

	return &Args{
		InputFile: positional[0],
		Force:     *force,
		Config: config.Config{
			Annotate:                    *annotate,
			LineNumbers:                 *lineNumbers,
			Minimise:                    *minimise,
			Tolerance:                   tolVal,
			ArcTolerance:                arcTolVal,
			ZClamp:                      zClampVal,
			EliminateNeedlessTravelling: *eliminateTravel,
			TokenDefs:                   *tokenDefs,
		},
	}, nil
}

// ParseSplitArgs parses `gcodeclean split [flags] <input-file>`.
func ParseSplitArgs(args []string) (*SplitArgs, error) {
	fs := flag.NewFlagSet("gcodeclean split", flag.ContinueOnError)
	force := fs.Bool("force", false, "accepted but has no effect: split always clears the output folder")
	folder := fs.String("folder", "", "output folder (default: input file stem)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	positional := fs.Args()
	if len(positional) != 1 {
		return nil, fmt.Errorf("expected 1 argument (input file), got %d", len(positional))
	}
	return &SplitArgs{InputFile: positional[0], Folder: *folder, Force: *force}, nil
}

// ShouldShowHelp reports whether --help/-h is present.
func ShouldShowHelp(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

// ShouldShowVersion reports whether --version/-v is present.
func ShouldShowVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			return true
		}
	}
	return false
}

// HelpText is the top-level help message.
func HelpText() string {
	var sb strings.Builder
	sb.WriteString("GCode Clean: a streaming G-code post-processor\n\n")
	sb.WriteString("Usage: gcodeclean <clean|split> [flags] <input-file>\n\n")
	sb.WriteString("Commands:\n")
	sb.WriteString("  clean   tokenise, normalise, simplify and minimise a G-code file\n")
	sb.WriteString("  split   partition an already-cleaned file into one file per cut\n\n")
	sb.WriteString("Run `gcodeclean <command> --help` for command-specific flags.\n")
	return sb.String()
}

// VersionText is the version banner.
func VersionText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("gcodeclean version %s\n", Version))
	sb.WriteString(fmt.Sprintf("Built with Go %s\n", runtime.Version()))
	sb.WriteString(fmt.Sprintf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH))
	if GitCommit != "unknown" {
		sb.WriteString(fmt.Sprintf("Git commit: %s\n", GitCommit))
	}
	if BuildDate != "unknown" {
		sb.WriteString(fmt.Sprintf("Build date: %s\n", BuildDate))
	}
	return sb.String()
}
