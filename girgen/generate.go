package girgen

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gtkx-org/gtkx-sub008/girgen/classify"
	"github.com/gtkx-org/gtkx-sub008/girgen/gir"
	"github.com/gtkx-org/gtkx-sub008/girgen/ir"
	"github.com/gtkx-org/gtkx-sub008/girgen/normalize"
	"github.com/gtkx-org/gtkx-sub008/girgen/plan"
)

// Result is the output of one generation run.
type Result struct {
	// Registry is the fully normalized graph the decisions were made
	// against.
	Registry *ir.Registry `json:"-"`

	// Classes holds one descriptor per generatable class, sorted by
	// qualified name.
	Classes []ClassMetadata `json:"classes"`

	// Warnings lists non-fatal conditions observed during the run.
	Warnings []ir.Warning `json:"warnings,omitempty"`

	// Report summarizes the run.
	Report Report `json:"report"`
}

// Generate runs the full pipeline over the raw namespaces: normalize
// everything, classify and plan each class, and assemble per-class
// metadata. A ResolutionError from normalization aborts the whole run;
// per-class problems become exclusions in the report instead.
func Generate(ctx context.Context, namespaces []*gir.Namespace, cfg *Config) (*Result, error) {
	cfg = applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Normalization must complete for all namespaces before any class is
	// classified or planned: cross-namespace ancestor walks need the full
	// resolved graph.
	reg, err := normalize.All(normalize.NewContext(namespaces...))
	if err != nil {
		return nil, fmt.Errorf("normalization failed: %w", err)
	}

	classifier := classify.New(reg, cfg.classifyConfig())
	planner := plan.New(reg, cfg.Async)

	classes := reg.AllClasses()
	slog.Debug("normalized graph ready",
		"namespaces", len(namespaces), "classes", len(classes))

	// Per-class work is embarrassingly parallel: the registry and the
	// classifier tables are read-only from here, and each task writes
	// only its own slot.
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	metadata := make([]ClassMetadata, len(classes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cls := range classes {
		i, cls := i, cls
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			metadata[i] = assembleClass(cls, classifier, planner.Plan(cls), cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Registry: reg, Report: newReport()}
	result.Report.Namespaces = len(namespaces)
	result.Report.Classes = len(classes)

	for _, md := range metadata {
		if !md.Plan.Generatable {
			result.Report.Excluded = append(result.Report.Excluded, Exclusion{
				Class:  md.Qualified.String(),
				Reason: "every declared constructor has an unsupported callback parameter",
			})
			result.Warnings = append(result.Warnings, ir.Warning{
				Code:    "UNSUPPORTED_CONSTRUCTORS",
				Message: "class excluded: no constructor with representable parameters",
				Class:   md.Qualified.String(),
			})
			continue
		}
		if md.Widget != nil {
			result.Report.Widgets++
		}
		if md.Controller != nil {
			result.Report.Controllers++
		}
		result.Classes = append(result.Classes, md)
	}
	result.Report.Generated = len(result.Classes)

	slog.Info("generation complete",
		"run", result.Report.RunID,
		"classes", result.Report.Generated,
		"excluded", len(result.Report.Excluded))

	return result, nil
}

// Check normalizes the raw namespaces without planning anything. It is
// the validation half of the pipeline: a nil error means the graph is
// internally consistent and every reference resolves.
func Check(namespaces []*gir.Namespace) (*ir.Registry, error) {
	reg, err := normalize.All(normalize.NewContext(namespaces...))
	if err != nil {
		return nil, fmt.Errorf("normalization failed: %w", err)
	}
	return reg, nil
}
