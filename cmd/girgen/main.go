// Command girgen plans class metadata from raw introspection documents.
//
// Input is one JSON namespace document per library namespace (produced by
// an external introspection parser); output is one metadata document per
// namespace plus a run report.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gtkx-org/gtkx-sub008/girgen"
	"github.com/gtkx-org/gtkx-sub008/girgen/gir"
	"github.com/gtkx-org/gtkx-sub008/girgen/normalize"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate class metadata from raw namespace documents."`
	Check   CheckCmd   `cmd:"" help:"Normalize and validate the graph without generating metadata."`

	Verbose bool `help:"Enable debug logging." short:"v"`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	In      string `arg:"" help:"Directory of raw namespace JSON files."`
	Out     string `arg:"" help:"Output directory for metadata documents."`
	Config  string `help:"YAML config file (widget/controller roots, denylist, hidden props)." short:"c"`
	Workers int    `help:"Parallel planning workers (0 = one per CPU)."`
}

func (c *GenCmd) Run() error {
	namespaces, err := gir.LoadDir(c.In)
	if err != nil {
		return err
	}

	cfg := girgen.DefaultConfig()
	if c.Config != "" {
		cfg, err = girgen.LoadConfig(c.Config)
		if err != nil {
			return err
		}
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}

	result, err := girgen.From(namespaces...).WithConfig(*cfg).ToDir(context.Background(), c.Out)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s (%s)\n", w.Code, w.Message, w.Class)
	}
	fmt.Printf("generated %d of %d classes across %d namespaces (%d widgets, %d controllers)\n",
		result.Report.Generated, result.Report.Classes, result.Report.Namespaces,
		result.Report.Widgets, result.Report.Controllers)
	return nil
}

type CheckCmd struct {
	In string `arg:"" help:"Directory of raw namespace JSON files."`
}

func (c *CheckCmd) Run() error {
	namespaces, err := gir.LoadDir(c.In)
	if err != nil {
		return err
	}

	if _, err := girgen.Check(namespaces); err != nil {
		var resErr *normalize.ResolutionError
		if errors.As(err, &resErr) {
			return fmt.Errorf("graph is inconsistent: reference %q from %s does not resolve", resErr.Ref, resErr.From)
		}
		return err
	}

	fmt.Printf("ok: %d namespaces resolve\n", len(namespaces))
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("girgen"),
		kong.Description("Introspection-graph normalizer and class metadata planner."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
