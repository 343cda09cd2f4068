package girgen

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gtkx-org/gtkx-sub008/girgen/gir"
	"github.com/gtkx-org/gtkx-sub008/girgen/plan"
	"github.com/gtkx-org/gtkx-sub008/girgen/sink"
)

// Generator provides a fluent API for a generation run.
//
// Example:
//
//	girgen.From(gtk, gobject).
//	    WithWidgetRoot("Gtk.Widget").
//	    ToDir(ctx, "./out")
type Generator struct {
	namespaces []*gir.Namespace
	cfg        Config
}

// From creates a Generator over the given raw namespaces. This is the
// entry point for the fluent API.
func From(namespaces ...*gir.Namespace) *Generator {
	return &Generator{namespaces: namespaces}
}

// WithConfig replaces the whole run configuration.
func (g *Generator) WithConfig(cfg Config) *Generator {
	g.cfg = cfg
	return g
}

// WithWidgetRoot sets the widget base class, e.g. "Gtk.Widget".
func (g *Generator) WithWidgetRoot(qualified string) *Generator {
	g.cfg.WidgetRoot = qualified
	return g
}

// WithControllerRoot sets the event controller base class.
func (g *Generator) WithControllerRoot(qualified string) *Generator {
	g.cfg.ControllerRoot = qualified
	return g
}

// DenyController adds class names that must never classify as controllers.
func (g *Generator) DenyController(qualified ...string) *Generator {
	g.cfg.ControllerDenylist = append(g.cfg.ControllerDenylist, qualified...)
	return g
}

// HideProps marks property names as hidden on the given class.
func (g *Generator) HideProps(class string, props ...string) *Generator {
	if g.cfg.HiddenProps == nil {
		g.cfg.HiddenProps = make(map[string][]string)
	}
	g.cfg.HiddenProps[class] = append(g.cfg.HiddenProps[class], props...)
	return g
}

// WithAsyncConvention overrides the begin/finish pairing convention.
func (g *Generator) WithAsyncConvention(conv plan.Convention) *Generator {
	g.cfg.Async = conv
	return g
}

// WithWorkers bounds parallel per-class planning.
func (g *Generator) WithWorkers(n int) *Generator {
	g.cfg.Workers = n
	return g
}

// Run executes the pipeline and returns the result in memory.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	return Generate(ctx, g.namespaces, &g.cfg)
}

// ToDir executes the pipeline and writes one metadata document per
// namespace plus the run report to dir. This is a terminal operation.
func (g *Generator) ToDir(ctx context.Context, dir string) (*Result, error) {
	result, err := g.Run(ctx)
	if err != nil {
		return nil, err
	}
	if err := WriteResult(ctx, result, sink.NewFilesystemSink(dir)); err != nil {
		return nil, err
	}
	return result, nil
}

// WriteResult serializes the run output through the sink: one
// "<namespace>.metadata.json" per namespace with its class descriptors,
// plus "report.json".
func WriteResult(ctx context.Context, result *Result, out sink.OutputSink) error {
	byNamespace := make(map[string][]ClassMetadata)
	for _, md := range result.Classes {
		byNamespace[md.Namespace] = append(byNamespace[md.Namespace], md)
	}

	names := make([]string, 0, len(byNamespace))
	for name := range byNamespace {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := json.MarshalIndent(byNamespace[name], "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode metadata for %s: %w", name, err)
		}
		if err := out.WriteFile(ctx, name+".metadata.json", data); err != nil {
			return fmt.Errorf("failed to write metadata for %s: %w", name, err)
		}
	}

	report, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := out.WriteFile(ctx, "report.json", report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
