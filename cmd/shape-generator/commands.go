package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/invopop/jsonschema"

	"shape-generator/internal/config"
	"shape-generator/internal/gen"
	"shape-generator/internal/plan"
	"shape-generator/internal/watch"
	"shape-generator/tuple"
)

func runAnalyze(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("analyze", "[packages]")
	format := fs.String("format", "text", "output format: text or json")
	dump := fs.Bool("dump", false, "dump the full plan instead of the report")
	suggest := fs.String("suggest", "", "write a configuration pinning the current outcome to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *format != "text" && *format != "json" {
		return fmt.Errorf("unknown format %q", *format)
	}

	p, err := a.resolve(ctx, packages(fs))
	if err != nil {
		return err
	}

	switch {
	case *dump:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, MaxDepth: 6}
		cfg.Fdump(a.stdout, p.Report())
	case *format == "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(p.Report()); err != nil {
			return err
		}
	default:
		a.printReport(p.Report())
	}

	if *suggest != "" {
		data, err := plan.ExportConfigYAML(p, a.cfg)
		if err != nil {
			return err
		}

		if err := os.WriteFile(*suggest, data, 0o644); err != nil {
			return err
		}
	}

	if p.Diagnostics.HasErrors() {
		return errFailed
	}

	return nil
}

func (a *app) printReport(r plan.Report) {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)

	for _, pkg := range r.Packages {
		fmt.Fprintf(tw, "%s\n", a.paint("1", pkg.Path))

		for _, t := range pkg.Types {
			arity := "-"
			if t.Arity != nil {
				arity = fmt.Sprint(*t.Arity)
			}

			mark := ""
			if t.Generate {
				mark = a.paint("32", "generate")
			}

			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				t.Name, t.Kind, arity, orDash(t.Serial), orDash(t.Tuple), orDash(t.Range), mark)
		}
	}

	tw.Flush()

	a.printDiagnostics(r.Diagnostics)
}

func (a *app) printDiagnostics(diags []plan.DiagnosticReport) {
	for _, d := range diags {
		var b strings.Builder

		b.WriteString(a.paint(severityColor(d.Severity), fmt.Sprintf("%-7s", d.Severity)))
		b.WriteString(" ")

		if d.Type != "" {
			b.WriteString("[" + d.Type + "] ")
		}

		if d.Field != "" {
			b.WriteString(d.Field + ": ")
		}

		b.WriteString(d.Code + ": " + d.Message)

		for _, s := range d.Suggestions {
			b.WriteString("\n        " + s)
		}

		fmt.Fprintln(a.stdout, b.String())
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

func runGen(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("gen", "[packages]")
	dryRun := fs.Bool("dry-run", false, "print the files that would be written")
	prune := fs.Bool("prune", true, "remove generated files of packages left with nothing to generate")

	if err := fs.Parse(args); err != nil {
		return err
	}

	return a.generate(ctx, packages(fs), *dryRun, *prune)
}

func (a *app) generate(ctx context.Context, patterns []string, dryRun, prune bool) error {
	p, err := a.resolve(ctx, patterns)
	if err != nil {
		return err
	}

	if p.Diagnostics.HasErrors() {
		a.printDiagnostics(p.Report().Diagnostics)
		return errFailed
	}

	files, err := gen.NewGenerator(gen.WithLogger(a.logger)).Generate(p)
	if err != nil {
		return err
	}

	if dryRun {
		for _, f := range files {
			fmt.Fprintln(a.stdout, f.Path(""))
		}

		return nil
	}

	if err := gen.WriteFiles(files, ""); err != nil {
		return err
	}

	for _, f := range files {
		fmt.Fprintln(a.stdout, "wrote", f.Path(""))
	}

	if prune {
		removed, err := gen.RemoveOrphans(p, files)
		if err != nil {
			return err
		}

		for _, path := range removed {
			fmt.Fprintln(a.stdout, "removed", path)
		}
	}

	return nil
}

func runCheck(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("check", "[packages]")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := a.resolve(ctx, packages(fs))
	if err != nil {
		return err
	}

	if p.Diagnostics.HasErrors() {
		a.printDiagnostics(p.Report().Diagnostics)
		return errFailed
	}

	files, err := gen.NewGenerator(gen.WithLogger(a.logger)).Generate(p)
	if err != nil {
		return err
	}

	stale, err := gen.Stale(p, files)
	if err != nil {
		return err
	}

	if len(stale) == 0 {
		return nil
	}

	for _, path := range stale {
		fmt.Fprintln(a.stdout, "stale:", path)
	}

	fmt.Fprintln(a.stdout, "run shape-generator gen to update")

	return errFailed
}

func runTuples(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("tuples", "")
	out := fs.String("out", "", "output directory (stdout when empty)")
	pkg := fs.String("pkg", "tuple", "package name")
	maxArity := fs.Int("max", tuple.MaxArity, "largest arity")

	if err := fs.Parse(args); err != nil {
		return err
	}

	file, err := gen.NewGenerator(gen.WithLogger(a.logger), gen.WithDebugDir(*out)).GenerateTuples(*pkg, *maxArity)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err := a.stdout.Write(file.Content)
		return err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, *out); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "wrote", filepath.Join(*out, file.Filename))

	return nil
}

func runSchema(_ context.Context, a *app, args []string) error {
	fs := a.newFlagSet("schema", "")
	cfg := fs.Bool("config", false, "print the schema of shapegen.yaml instead of the report")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *cfg {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(a.stdout, "%s\n", data)

		return err
	}

	r := &jsonschema.Reflector{ExpandedStruct: true}
	s := r.Reflect(new(plan.Report))
	s.Title = "shape-generator analyze report"

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func runWatch(ctx context.Context, a *app, args []string) error {
	fs := a.newFlagSet("watch", "[packages]")
	debounce := fs.Duration("debounce", watch.DefaultDebounce, "quiet period before regenerating")

	if err := fs.Parse(args); err != nil {
		return err
	}

	patterns := packages(fs)

	p, err := a.resolve(ctx, patterns)
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(p.Packages))
	for _, pp := range p.Packages {
		if pp.Dir != "" {
			dirs = append(dirs, pp.Dir)
		}
	}

	regenerate := func(ctx context.Context) error {
		err := a.generate(ctx, patterns, false, true)
		if errors.Is(err, errFailed) {
			// Diagnostics were printed; keep watching.
			return nil
		}

		return err
	}

	if err := regenerate(ctx); err != nil {
		a.logger.Error("initial generation failed", "err", err)
	}

	w := watch.New(
		watch.WithLogger(a.logger),
		watch.WithDebounce(*debounce),
		watch.WithGeneratedFile(a.cfg.Output.Filename),
	)

	return w.Run(ctx, dirs, regenerate)
}
