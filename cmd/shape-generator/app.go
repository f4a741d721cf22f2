package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"shape-generator/internal/analyze"
	"shape-generator/internal/config"
	"shape-generator/internal/plan"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errFailed signals a run that reported its own failure.
var errFailed = errors.New("failed")

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"analyze", "report the resolved shape of every type", runAnalyze},
	{"gen", "write the generated shape files", runGen},
	{"check", "fail when generated files are missing or stale", runCheck},
	{"tuples", "emit the tuple runtime package", runTuples},
	{"schema", "print the JSON Schema of the analyze report or of shapegen.yaml", runSchema},
	{"watch", "regenerate whenever package sources change", runWatch},
}

// app holds what every command shares.
type app struct {
	stdout, stderr io.Writer
	logger         *slog.Logger
	color          bool

	dir        string
	configPath string
	cfg        *config.File
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	fs := flag.NewFlagSet("shape-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&a.dir, "dir", ".", "directory packages are loaded from")
	fs.StringVar(&a.configPath, "config", config.DefaultFilename, "configuration file, relative to -dir")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() { a.usage(fs) }

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() == 0 {
		a.usage(fs)
		return exitUsage
	}

	env, err := config.ReadEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	a.logger = newLogger(stderr, env.LogLevel, *verbose)
	a.color = isTerminal(stdout)

	name := fs.Arg(0)

	idx := commandIndex(name)
	if idx < 0 {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		a.usage(fs)

		return exitUsage
	}

	cmd := commands[idx]
	if cmd.name != "tuples" && cmd.name != "schema" {
		if err := a.loadConfig(env); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFail
		}
	}

	err = cmd.run(ctx, a, fs.Args()[1:])

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitUsage
	case errors.Is(err, errFailed):
		return exitFail
	default:
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitFail
	}
}

func commandIndex(name string) int {
	for i, c := range commands {
		if c.name == name {
			return i
		}
	}

	return -1
}

func (a *app) usage(fs *flag.FlagSet) {
	fmt.Fprintf(a.stderr, "usage: shape-generator [flags] <command> [command flags] [packages]\n\ncommands:\n")

	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %-8s %s\n", c.name, c.summary)
	}

	fmt.Fprintf(a.stderr, "\nflags:\n")
	fs.PrintDefaults()
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil || level == "" {
		lvl = slog.LevelWarn
	}

	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig reads the configuration file and the environment overrides.
func (a *app) loadConfig(env config.Env) error {
	path := a.configPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.dir, path)
	}

	cfg, err := config.LoadOptional(path)
	if err != nil {
		return err
	}

	cfg.ApplyEnv(env)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	a.cfg = cfg

	return nil
}

// packages returns the patterns of a command, defaulting to ./...
func packages(fs *flag.FlagSet) []string {
	if fs.NArg() == 0 {
		return []string{"./..."}
	}

	return fs.Args()
}

// resolve loads the packages and resolves the plan.
func (a *app) resolve(ctx context.Context, patterns []string) (*plan.Plan, error) {
	analyzer := analyze.NewAnalyzer(
		analyze.WithLogger(a.logger),
		analyze.WithDir(a.dir),
		analyze.WithGeneratedFile(a.cfg.Output.Filename),
	)

	graph, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	return plan.NewResolver(graph, a.cfg, plan.WithLogger(a.logger)).Resolve(ctx)
}

// newFlagSet creates the flag set of a command.
func (a *app) newFlagSet(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: shape-generator %s [flags] %s\n", name, args)
		fs.PrintDefaults()
	}

	return fs
}

// paint wraps s in an ANSI colour when writing to a terminal.
func (a *app) paint(color, s string) string {
	if !a.color || color == "" {
		return s
	}

	return "\x1b[" + color + "m" + s + "\x1b[0m"
}

func severityColor(severity string) string {
	switch strings.ToLower(severity) {
	case "error":
		return "31"
	case "warning":
		return "33"
	default:
		return "36"
	}
}
