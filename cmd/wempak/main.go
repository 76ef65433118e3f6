package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/systemstart/wempak/pkg/api"
	"github.com/systemstart/wempak/pkg/logging"
	"github.com/systemstart/wempak/pkg/processing"
	"github.com/systemstart/wempak/pkg/report"
)

var version = "dev"

const (
	exitOK = iota
	exitPipelineFailed
	exitLoggingSetupFailed
	exitWorkingDirectoryFailed
	exitLoadLayoutFailed
	exitInvalidLayout
)

var (
	layoutFile  string
	editorGrace time.Duration
	loggingType string
	logLevel    string
	showSummary bool
	showVersion bool
)

func init() {
	flag.StringVar(
		&layoutFile,
		"layout",
		"",
		"tool layout YAML file (default: "+api.LayoutFilename+" in the working directory, if present)")
	flag.DurationVar(
		&editorGrace,
		"editor-grace",
		0,
		"how long the sound-bank editor runs before it is closed (default from layout, 4s)")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showSummary,
		"summary",
		false,
		"print a table of stage outcomes when the run ends")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [output%s]\n", filepath.Base(os.Args[0]), filepath.Ext(api.DefaultOutputName))
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(exitOK)
	}

	if err := logging.Initialize(os.Stdout, loggingType, logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitLoggingSetupFailed)
	}

	workDir, err := os.Getwd()
	if err != nil {
		slog.Error("unable to get current directory", "error", err)
		os.Exit(exitWorkingDirectoryFailed)
	}

	layout := loadLayout(workDir)

	opts := runOptions{
		workDir:    workDir,
		outputName: api.OutputName(flag.Args()),
		layout:     layout,
		summary:    showSummary,
	}
	os.Exit(run(context.Background(), opts, os.Stdout, os.Stderr))
}

type runOptions struct {
	workDir    string
	outputName string
	layout     *api.Layout
	tools      *processing.Tools // nil means the real editor and compressor
	summary    bool
}

// run executes one conversion and returns the process exit code.
func run(ctx context.Context, opts runOptions, stdout, stderr io.Writer) int {
	rep := report.New(stdout, stderr)

	pc, err := processing.NewContext(opts.workDir, opts.outputName, opts.layout)
	if err != nil {
		slog.Error("invalid layout", "error", err)
		rep.Failure(err)
		return exitInvalidLayout
	}
	slog.SetDefault(slog.Default().With("run", pc.RunID))

	tools := processing.DefaultTools(pc.Layout)
	if opts.tools != nil {
		tools = *opts.tools
	}

	slog.Info("starting conversion", "workDir", pc.WorkDir, "output", pc.OutputName)
	records, err := processing.Run(ctx, pc, tools, rep)
	if opts.summary {
		rep.Summary(records)
	}
	if err != nil {
		rep.Failure(err)
		return exitPipelineFailed
	}

	rep.Success()
	return exitOK
}

func loadLayout(workDir string) *api.Layout {
	filename := layoutFile
	if filename == "" {
		candidate := filepath.Join(workDir, api.LayoutFilename)
		if _, err := os.Stat(candidate); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Error("failed to check layout file", "filename", candidate, "error", err)
				os.Exit(exitLoadLayoutFailed)
			}
			slog.Debug("no layout file found, using defaults")
			return applyFlagOverrides(api.DefaultLayout())
		}
		filename = candidate
	}

	layout, err := api.LoadLayout(filename)
	if err != nil {
		slog.Error("failed to load layout file", "filename", filename, "error", err)
		os.Exit(exitLoadLayoutFailed)
	}
	slog.Info("using layout file", "filename", filename)
	return applyFlagOverrides(layout)
}

func applyFlagOverrides(layout *api.Layout) *api.Layout {
	if editorGrace != 0 {
		layout.Editor.Grace = editorGrace
	}
	return layout
}
